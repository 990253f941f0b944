package services

import (
	"strings"

	"mojorewards/internal"
	"mojorewards/internal/models"

	"github.com/samber/do"
)

type ServiceReferral struct {
	container *do.Injector
	code      string
	claimURL  string
}

func NewServiceReferral(container *do.Injector) (*ServiceReferral, error) {
	vs, err := do.InvokeNamed[map[string]string](container, "envs")
	if err != nil {
		return nil, err
	}

	code := strings.TrimSpace(vs[ENV_REFERRAL_CODE])
	if code == "" {
		code = internal.REFERRAL_CODE
	}

	return &ServiceReferral{container, code, InviteURL(vs)}, nil
}

func (service *ServiceReferral) Program() *models.ReferralProgram {
	return &models.ReferralProgram{
		Code:      service.code,
		MaxPayout: "$2,500",
		Steps: []models.ReferralStep{
			{Number: 1, Title: "Share Your Code", Description: "Share code " + service.code + " with friends"},
			{Number: 2, Title: "They Play", Description: "After they wager for a full month, you get paid"},
			{Number: 3, Title: "Earn Rewards", Description: "The more they play, the higher your payout"},
		},
		Tiers: []models.PayoutTier{
			{Wager: "< $10,000", Payout: "$25"},
			{Wager: "$10,000 - $50,000", Payout: "$100"},
			{Wager: "$50,000 - $100,000", Payout: "$250"},
			{Wager: "$100,000 - $250,000", Payout: "$500"},
			{Wager: "$250,000 - $500,000", Payout: "$1,000"},
			{Wager: "$500,000 - $1,000,000", Payout: "$1,500"},
			{Wager: "> $1,000,000", Payout: "$2,500"},
		},
		BonusCash:  "$2.50",
		MinDeposit: "$25",
		ClaimURL:   service.claimURL,
	}
}
