package service

import (
	"context"

	"github.com/pocketwise/pocketwise/internal/api/dto"
	"github.com/pocketwise/pocketwise/internal/cache"
	"github.com/pocketwise/pocketwise/internal/domain/creditcard"
	"github.com/pocketwise/pocketwise/internal/types"
	"github.com/samber/lo"
)

type CreditCardService interface {
	CreateCreditCard(ctx context.Context, req *dto.CreateCreditCardRequest) (*dto.CreditCardResponse, error)
	GetCreditCard(ctx context.Context, id string) (*dto.CreditCardResponse, error)
	ListCreditCards(ctx context.Context, filter *types.CreditCardFilter) (*dto.ListCreditCardsResponse, error)
	UpdateCreditCard(ctx context.Context, id string, req *dto.UpdateCreditCardRequest) (*dto.CreditCardResponse, error)
	DeleteCreditCard(ctx context.Context, id string) error
}

type creditCardService struct {
	ServiceParams
}

func NewCreditCardService(params ServiceParams) CreditCardService {
	return &creditCardService{
		ServiceParams: params,
	}
}

func (s *creditCardService) CreateCreditCard(ctx context.Context, req *dto.CreateCreditCardRequest) (*dto.CreditCardResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	card := req.ToCreditCard(ctx)
	if err := s.CreditCardRepo.Create(ctx, card); err != nil {
		return nil, err
	}

	s.Logger.Infow("credit card created",
		"credit_card_id", card.ID,
		"closing_day", card.ClosingDay,
		"due_day", card.DueDay,
	)

	return &dto.CreditCardResponse{CreditCard: card}, nil
}

func (s *creditCardService) GetCreditCard(ctx context.Context, id string) (*dto.CreditCardResponse, error) {
	card, err := s.loadCreditCard(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.CreditCardResponse{CreditCard: card}, nil
}

func (s *creditCardService) ListCreditCards(ctx context.Context, filter *types.CreditCardFilter) (*dto.ListCreditCardsResponse, error) {
	if filter == nil {
		filter = types.NewCreditCardFilter()
	}
	if filter.QueryFilter == nil {
		filter.QueryFilter = types.NewDefaultQueryFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	cards, err := s.CreditCardRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	total, err := s.CreditCardRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := lo.Map(cards, func(card *creditcard.CreditCard, _ int) *dto.CreditCardResponse {
		return &dto.CreditCardResponse{CreditCard: card}
	})

	response := types.NewListResponse(items, total, filter.GetLimit(), filter.GetOffset())
	return &response, nil
}

func (s *creditCardService) UpdateCreditCard(ctx context.Context, id string, req *dto.UpdateCreditCardRequest) (*dto.CreditCardResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	card, err := s.CreditCardRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := req.Apply(ctx, card); err != nil {
		return nil, err
	}

	if err := s.CreditCardRepo.Update(ctx, card); err != nil {
		return nil, err
	}
	s.evictCreditCard(ctx, id)

	s.Logger.Infow("credit card updated",
		"credit_card_id", card.ID,
		"closing_day", card.ClosingDay,
		"due_day", card.DueDay,
	)

	return &dto.CreditCardResponse{CreditCard: card}, nil
}

func (s *creditCardService) DeleteCreditCard(ctx context.Context, id string) error {
	if err := s.CreditCardRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.evictCreditCard(ctx, id)

	s.Logger.Infow("credit card deleted", "credit_card_id", id)
	return nil
}

// loadCreditCard reads a card through the cache. Callers get their own copy.
func (p ServiceParams) loadCreditCard(ctx context.Context, id string) (*creditcard.CreditCard, error) {
	key := cache.GenerateKey(cache.PrefixCreditCard, types.GetUserID(ctx), id)
	if p.Cache != nil {
		if cached, ok := p.Cache.Get(ctx, key); ok {
			if card, ok := cached.(*creditcard.CreditCard); ok {
				copied := *card
				return &copied, nil
			}
		}
	}

	card, err := p.CreditCardRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if p.Cache != nil {
		copied := *card
		p.Cache.Set(ctx, key, &copied, 0)
	}
	return card, nil
}

func (p ServiceParams) evictCreditCard(ctx context.Context, id string) {
	if p.Cache == nil {
		return
	}
	p.Cache.Delete(ctx, cache.GenerateKey(cache.PrefixCreditCard, types.GetUserID(ctx), id))
}
