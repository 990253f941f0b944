package models

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

type FreeSpinsOffer struct {
	ID              string          `json:"id"`
	Code            string          `json:"code"`
	GameName        string          `json:"gameName"`
	GameProvider    string          `json:"gameProvider"`
	GameImage       string          `json:"gameImage"`
	SpinsCount      int             `json:"spinsCount"`
	SpinValue       decimal.Decimal `json:"spinValue"`
	TotalClaims     int             `json:"totalClaims"`
	ClaimsRemaining int             `json:"claimsRemaining"`
	ExpiresAt       time.Time       `json:"expiresAt"`
	IsActive        bool            `json:"isActive"`
	Requirements    []string        `json:"requirements"`
}

// Live reports whether the offer is active and expires strictly after now.
func (o *FreeSpinsOffer) Live(now time.Time) bool {
	return o.IsActive && o.ExpiresAt.After(now)
}

// ClaimProgress is the claimed share of the offer in percent, 0 when the
// offer has no claims to give. Counts out of range are clamped to [0, 100].
func (o *FreeSpinsOffer) ClaimProgress() float64 {
	if o.TotalClaims <= 0 {
		return 0
	}

	progress := float64(o.TotalClaims-o.ClaimsRemaining) / float64(o.TotalClaims) * 100
	return math.Max(0, math.Min(100, progress))
}

func (o *FreeSpinsOffer) ClaimPercent() int {
	return int(math.Round(o.ClaimProgress()))
}
