package stub

import (
	"time"

	"mojorewards/internal/models"

	"github.com/shopspring/decimal"
)

// Fixtures is the record set served by the stub API.
type Fixtures struct {
	Settings   *models.LeaderboardSettings
	Entries    []models.LeaderboardEntry
	Milestones []models.LevelMilestone
	Challenges []models.Challenge
	FreeSpins  []models.FreeSpinsOffer
}

// DefaultFixtures is a month-long leaderboard and a handful of offers
// relative to now, good enough to click through every page locally.
func DefaultFixtures(now time.Time) *Fixtures {
	return &Fixtures{
		Settings: &models.LeaderboardSettings{
			EndDate:        now.Add(12*24*time.Hour + 5*time.Hour).Truncate(time.Second),
			TotalPrizePool: decimal.NewFromInt(5000),
		},
		Entries: []models.LeaderboardEntry{
			{ID: "e3", Rank: 3, Username: "SpinDoctor", Wagered: decimal.RequireFromString("48210.5"), Prize: decimal.NewFromInt(500)},
			{ID: "e1", Rank: 1, Username: "HighRoller", Wagered: decimal.RequireFromString("152340.75"), Prize: decimal.NewFromInt(2000)},
			{ID: "e2", Rank: 2, Username: "LuckyLuke", Wagered: decimal.NewFromInt(90500), Prize: decimal.NewFromInt(1000)},
			{ID: "e4", Rank: 4, Username: "BonusHunter", Wagered: decimal.NewFromInt(30120), Prize: decimal.NewFromInt(250)},
		},
		Milestones: []models.LevelMilestone{
			{ID: "m3", Tier: 3, Name: "Gold", ImageURL: "https://placehold.co/96?text=Gold", Rewards: []string{"$50 Bonus", "50 Free Spins", "Discord Gold role"}},
			{ID: "m1", Tier: 1, Name: "Bronze", ImageURL: "https://placehold.co/96?text=Bronze", Rewards: []string{"$10 Bonus"}},
			{ID: "m2", Tier: 2, Name: "Silver", ImageURL: "https://placehold.co/96?text=Silver", Rewards: []string{"$25 Bonus", "20 Free Spins"}},
		},
		Challenges: []models.Challenge{
			{ID: "c1", GameName: "Sweet Bonanza", GameImage: "https://placehold.co/320x180?text=Sweet+Bonanza", MinMultiplier: decimal.NewFromInt(500), MinBet: decimal.RequireFromString("0.4"), Prize: decimal.NewFromInt(100), IsActive: true, ClaimStatus: models.CLAIM_STATUS_OPEN},
			{ID: "c2", GameName: "Gates of Olympus", GameImage: "https://placehold.co/320x180?text=Gates+of+Olympus", MinMultiplier: decimal.NewFromInt(1000), MinBet: decimal.NewFromInt(1), Prize: decimal.NewFromInt(1250), IsActive: true, ClaimStatus: models.CLAIM_STATUS_OPEN},
			{ID: "c3", GameName: "Wanted Dead or a Wild", GameImage: "https://placehold.co/320x180?text=Wanted", MinMultiplier: decimal.NewFromInt(250), MinBet: decimal.RequireFromString("0.2"), Prize: decimal.NewFromInt(50), IsActive: true, ClaimStatus: models.CLAIM_STATUS_CLAIMED},
			{ID: "c4", GameName: "Big Bass Splash", GameImage: "https://placehold.co/320x180?text=Big+Bass", MinMultiplier: decimal.NewFromInt(300), MinBet: decimal.RequireFromString("0.5"), Prize: decimal.NewFromInt(75), IsActive: false, ClaimStatus: models.CLAIM_STATUS_OPEN},
		},
		FreeSpins: []models.FreeSpinsOffer{
			{
				ID: "f1", Code: "MOJOSPINS", GameName: "Sugar Rush", GameProvider: "Pragmatic Play",
				GameImage: "https://placehold.co/160?text=Sugar+Rush", SpinsCount: 50, SpinValue: decimal.RequireFromString("0.2"),
				TotalClaims: 100, ClaimsRemaining: 40, ExpiresAt: now.Add(72 * time.Hour).Truncate(time.Second), IsActive: true,
				Requirements: []string{"Use code mojokick on Gamdom", "Deposit at least $25 this week"},
			},
			{
				ID: "f2", Code: "OLDSPINS", GameName: "Book of Dead", GameProvider: "Play'n GO",
				GameImage: "https://placehold.co/160?text=Book+of+Dead", SpinsCount: 20, SpinValue: decimal.NewFromInt(1),
				TotalClaims: 50, ClaimsRemaining: 0, ExpiresAt: now.Add(-time.Hour).Truncate(time.Second), IsActive: true,
				Requirements: []string{"Use code mojokick on Gamdom"},
			},
		},
	}
}
