package models

import (
	"github.com/shopspring/decimal"
)

type ClaimStatus string

const (
	CLAIM_STATUS_OPEN    ClaimStatus = "open"
	CLAIM_STATUS_CLAIMED ClaimStatus = "claimed"
)

type Challenge struct {
	ID            string          `json:"id"`
	GameName      string          `json:"gameName"`
	GameImage     string          `json:"gameImage"`
	MinMultiplier decimal.Decimal `json:"minMultiplier"`
	MinBet        decimal.Decimal `json:"minBet"`
	Prize         decimal.Decimal `json:"prize"`
	IsActive      bool            `json:"isActive"`
	ClaimStatus   ClaimStatus     `json:"claimStatus"`
}

// Available reports whether the challenge belongs to the active set.
func (c *Challenge) Available() bool {
	return c.IsActive && c.ClaimStatus != CLAIM_STATUS_CLAIMED
}

type ClaimRequest struct {
	Username        string `json:"username"`
	DiscordUsername string `json:"discordUsername"`
}
