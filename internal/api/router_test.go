package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pocketwise/pocketwise/internal/api"
	"github.com/pocketwise/pocketwise/internal/api/cron"
	v1 "github.com/pocketwise/pocketwise/internal/api/v1"
	"github.com/pocketwise/pocketwise/internal/auth"
	"github.com/pocketwise/pocketwise/internal/cache"
	"github.com/pocketwise/pocketwise/internal/config"
	"github.com/pocketwise/pocketwise/internal/logger"
	"github.com/pocketwise/pocketwise/internal/metrics"
	"github.com/pocketwise/pocketwise/internal/service"
	"github.com/pocketwise/pocketwise/internal/testutil"
	"github.com/pocketwise/pocketwise/internal/types"
	"github.com/stretchr/testify/suite"
)

const cronKey = "scheduler-key"

type RouterSuite struct {
	suite.Suite
	router *gin.Engine
	token  string
}

func TestRouter(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func (s *RouterSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	cfg := config.GetDefaultConfig()
	cfg.Deployment.Mode = types.ModeAPI
	cfg.Billing.SweepMaxElapsed = 100 * time.Millisecond
	cfg.Auth.CronKey.Hash = auth.HashCronKey(cronKey)
	log := logger.NewNoopLogger()
	m := metrics.NewMetrics()

	params := service.ServiceParams{
		Logger:            log,
		Config:            cfg,
		DB:                testutil.NewMockPostgresClient(log),
		Cache:             cache.NewInMemoryCache(cfg, log),
		Metrics:           m,
		CreditCardRepo:    testutil.NewInMemoryCreditCardStore(),
		CreditExpenseRepo: testutil.NewInMemoryCreditExpenseStore(),
		CreditBillRepo:    testutil.NewInMemoryCreditBillStore(),
		CreditIncomeRepo:  testutil.NewInMemoryCreditIncomeStore(),
		RefundRepo:        testutil.NewInMemoryRefundStore(),
	}
	billService := service.NewCreditBillService(params)

	handlers := api.Handlers{
		Health:         v1.NewHealthHandler(log),
		CreditCard:     v1.NewCreditCardHandler(service.NewCreditCardService(params), billService, log),
		CreditExpense:  v1.NewCreditExpenseHandler(service.NewCreditExpenseService(params), service.NewRefundService(params), log),
		CreditBill:     v1.NewCreditBillHandler(billService, log),
		CronCreditBill: cron.NewCreditBillCronHandler(log, billService),
	}

	provider := auth.NewProvider(cfg)
	token, err := provider.GenerateToken("user-1", time.Hour)
	s.Require().NoError(err)
	s.token = token
	s.router = api.NewRouter(handlers, cfg, log, provider, m)
}

func (s *RouterSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var payload bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&payload).Encode(body))
	}
	req := httptest.NewRequest(method, path, &payload)
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set(types.HeaderAuthorization, "Bearer "+s.token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *RouterSuite) decode(rec *httptest.ResponseRecorder) map[string]any {
	var out map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func (s *RouterSuite) TestHealthAndMetricsArePublic() {
	s.token = ""

	rec := s.do(http.MethodGet, "/health", nil)
	s.Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/metrics", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "pocketwise_http_requests_total")
}

func (s *RouterSuite) TestRequiresToken() {
	s.token = ""
	rec := s.do(http.MethodGet, "/v1/credit-cards", nil)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(false, s.decode(rec)["success"])

	s.token = "not-a-jwt"
	rec = s.do(http.MethodGet, "/v1/credit-cards", nil)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *RouterSuite) TestRefundFlow() {
	rec := s.do(http.MethodPost, "/v1/credit-cards", map[string]any{
		"name":        "Gold",
		"closing_day": 10,
		"due_day":     20,
	})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	cardID := s.decode(rec)["id"].(string)

	rec = s.do(http.MethodPost, "/v1/credit-expenses", map[string]any{
		"credit_card_id": cardID,
		"description":    "Laptop",
		"amount":         "1200",
		"purchase_date":  time.Now().UTC().Format(time.DateOnly),
		"installments":   3,
	})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	purchase := s.decode(rec)
	purchaseID := purchase["id"].(string)
	s.Len(purchase["installment_items"], 3)

	rec = s.do(http.MethodGet, "/v1/credit-cards/"+cardID+"/bills", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Len(s.decode(rec)["items"], 3)

	rec = s.do(http.MethodPost, "/v1/credit-expenses/"+purchaseID+"/refund", map[string]any{
		"refund_type": "FULL",
		"amount":      "1200",
	})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.Equal("Refund processed successfully", s.decode(rec)["message"])

	rec = s.do(http.MethodPost, "/v1/credit-expenses/"+purchaseID+"/refund", map[string]any{
		"refund_type": "FULL",
		"amount":      "1200",
	})
	s.Equal(http.StatusConflict, rec.Code)

	rec = s.do(http.MethodGet, "/v1/credit-expenses/"+purchaseID+"/refunds", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Len(s.decode(rec)["items"], 1)
}

func (s *RouterSuite) TestErrorStatuses() {
	rec := s.do(http.MethodPost, "/v1/credit-expenses/cexp_missing/refund", map[string]any{
		"refund_type": "FULL",
		"amount":      "10",
	})
	s.Equal(http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodPost, "/v1/credit-expenses/cexp_missing/refund", map[string]any{
		"refund_type": "SOMETIMES",
	})
	s.Equal(http.StatusBadRequest, rec.Code)
	body := s.decode(rec)
	s.Equal(false, body["success"])
	s.NotEmpty(body["error"].(map[string]any)["message"])

	req := httptest.NewRequest(http.MethodPost, "/v1/credit-cards", bytes.NewBufferString("{"))
	req.Header.Set(types.HeaderAuthorization, "Bearer "+s.token)
	rec = httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *RouterSuite) cron(path, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, nil)
	req.Header.Set(types.HeaderCronKey, key)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *RouterSuite) TestCronRefresh() {
	rec := s.do(http.MethodPost, "/v1/cron/credit-bills/refresh-statuses", nil)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.Contains(s.decode(rec), "changed")

	rec = s.do(http.MethodPost, "/v1/cron/credit-bills/refresh-statuses?all_users=maybe", nil)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *RouterSuite) TestCronRefreshAllUsersRequiresCronKey() {
	rec := s.do(http.MethodPost, "/v1/cron/credit-bills/refresh-statuses?all_users=true", nil)
	s.Equal(http.StatusForbidden, rec.Code, rec.Body.String())
	s.Equal(false, s.decode(rec)["success"])

	rec = s.cron("/v1/cron/credit-bills/refresh-statuses?all_users=true", "wrong-key")
	s.Equal(http.StatusUnauthorized, rec.Code)

	rec = s.cron("/v1/cron/credit-bills/refresh-statuses?all_users=true", cronKey)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.Contains(s.decode(rec), "changed")

	// the cron key only opens the cron routes
	rec = s.cron("/v1/credit-cards", cronKey)
	s.Equal(http.StatusUnauthorized, rec.Code)
}
