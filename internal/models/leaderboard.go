package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type LeaderboardEntry struct {
	ID       string          `json:"id"`
	Rank     int             `json:"rank"`
	Username string          `json:"username"`
	Wagered  decimal.Decimal `json:"wagered"`
	Prize    decimal.Decimal `json:"prize"`
}

type LeaderboardSettings struct {
	EndDate        time.Time       `json:"endDate"`
	TotalPrizePool decimal.Decimal `json:"totalPrizePool"`
}

const (
	RANK_ICON_TROPHY = "trophy"
	RANK_ICON_MEDAL  = "medal"
	RANK_ICON_AWARD  = "award"

	RANK_TIER_GOLD   = "gold"
	RANK_TIER_SILVER = "silver"
	RANK_TIER_BRONZE = "bronze"
)

// LeaderboardItem is an entry decorated for display. Icon and Tier are empty
// below the podium, in which case the rank is shown as "#n".
type LeaderboardItem struct {
	Rank     int    `json:"rank"`
	Username string `json:"username"`
	Wagered  string `json:"wagered"`
	Prize    string `json:"prize"`
	Icon     string `json:"icon,omitempty"`
	Tier     string `json:"tier,omitempty"`
}

type LeaderboardResponse struct {
	Settings       *LeaderboardSettings `json:"settings"`
	TotalPrizePool string               `json:"totalPrizePool"`
	Leaderboard    []*LeaderboardItem   `json:"leaderboard"`
}
