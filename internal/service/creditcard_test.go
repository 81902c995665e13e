package service

import (
	"testing"

	"github.com/pocketwise/pocketwise/internal/api/dto"
	ierr "github.com/pocketwise/pocketwise/internal/errors"
	"github.com/pocketwise/pocketwise/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type CreditCardServiceSuite struct {
	creditServiceSuite
}

func TestCreditCardService(t *testing.T) {
	suite.Run(t, new(CreditCardServiceSuite))
}

func (s *CreditCardServiceSuite) TestCreateCreditCard() {
	testCases := []struct {
		name          string
		request       dto.CreateCreditCardRequest
		expectedError bool
	}{
		{
			name: "successful_creation",
			request: dto.CreateCreditCardRequest{
				Name:        "Gold",
				ClosingDay:  31,
				DueDay:      10,
				CreditLimit: decimal.NewFromInt(1000),
			},
		},
		{
			name: "closing_day_out_of_range",
			request: dto.CreateCreditCardRequest{
				Name:       "Broken",
				ClosingDay: 32,
				DueDay:     10,
			},
			expectedError: true,
		},
		{
			name: "negative_limit",
			request: dto.CreateCreditCardRequest{
				Name:        "Broken",
				ClosingDay:  5,
				DueDay:      10,
				CreditLimit: decimal.NewFromInt(-1),
			},
			expectedError: true,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			req := tc.request
			resp, err := s.cards.CreateCreditCard(s.GetContext(), &req)
			if tc.expectedError {
				s.True(ierr.IsValidation(err), "unexpected error: %v", err)
				return
			}
			s.Require().NoError(err)
			s.NotEmpty(resp.ID)
			s.Equal(types.DefaultUserID, resp.UserID)
		})
	}
}

func (s *CreditCardServiceSuite) TestUpdateEvictsCachedCard() {
	card := s.createCard(10, 20)

	got, err := s.cards.GetCreditCard(s.GetContext(), card.ID)
	s.Require().NoError(err)
	s.Equal(10, got.ClosingDay)

	_, err = s.cards.UpdateCreditCard(s.GetContext(), card.ID, &dto.UpdateCreditCardRequest{
		ClosingDay: lo.ToPtr(25),
	})
	s.Require().NoError(err)

	got, err = s.cards.GetCreditCard(s.GetContext(), card.ID)
	s.Require().NoError(err)
	s.Equal(25, got.ClosingDay)
}

func (s *CreditCardServiceSuite) TestListAndDelete() {
	first := s.createCard(10, 20)
	s.createCard(5, 15)

	list, err := s.cards.ListCreditCards(s.GetContext(), nil)
	s.Require().NoError(err)
	s.Len(list.Items, 2)

	s.Require().NoError(s.cards.DeleteCreditCard(s.GetContext(), first.ID))

	_, err = s.cards.GetCreditCard(s.GetContext(), first.ID)
	s.True(ierr.IsNotFound(err), "unexpected error: %v", err)

	list, err = s.cards.ListCreditCards(s.GetContext(), nil)
	s.Require().NoError(err)
	s.Len(list.Items, 1)
}

func (s *CreditCardServiceSuite) TestCardsAreScopedToUser() {
	card := s.createCard(10, 20)

	other := types.SetUserID(s.GetContext(), "another-user")
	_, err := s.cards.GetCreditCard(other, card.ID)
	s.True(ierr.IsNotFound(err), "unexpected error: %v", err)
}
