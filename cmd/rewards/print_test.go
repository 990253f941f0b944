package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"mojorewards/internal/models"
	"mojorewards/internal/services"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func init() {
	color.NoColor = true
}

func TestPrintLeaderboard(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	board := &models.LeaderboardResponse{
		Settings: &models.LeaderboardSettings{
			EndDate:        now.Add(49 * time.Hour),
			TotalPrizePool: decimal.NewFromInt(5000),
		},
		TotalPrizePool: "$5,000",
		Leaderboard: services.RankLeaderboard([]models.LeaderboardEntry{
			{Rank: 2, Username: "bob", Wagered: decimal.NewFromInt(10), Prize: decimal.NewFromInt(5)},
			{Rank: 1, Username: "alice", Wagered: decimal.NewFromInt(20), Prize: decimal.NewFromInt(10)},
		}),
	}

	var buf bytes.Buffer
	printLeaderboard(&buf, board, now)

	out := buf.String()
	assert.Contains(t, out, "Time remaining: 2d 01h 00m 00s")
	assert.Contains(t, out, "Total prize pool: $5,000")
	assert.Less(t, strings.Index(out, "alice"), strings.Index(out, "bob"))
}

func TestPrintEmptyStates(t *testing.T) {
	var buf bytes.Buffer
	printLeaderboard(&buf, &models.LeaderboardResponse{}, time.Now())
	printMilestones(&buf, nil)
	printChallenges(&buf, nil)
	printFreeSpins(&buf, nil, time.Now())

	out := buf.String()
	assert.Contains(t, out, "No leaderboard entries yet")
	assert.Contains(t, out, "No milestones available yet")
	assert.Contains(t, out, "No Active Challenges")
	assert.Contains(t, out, "No active free spins offers at the moment")
}

func TestPrintMilestonesPreview(t *testing.T) {
	var buf bytes.Buffer
	printMilestones(&buf, []models.LevelMilestone{
		{Tier: 1, Name: "Bronze", Rewards: []string{"a", "b", "c", "d"}},
	})

	out := buf.String()
	assert.Contains(t, out, "• b")
	assert.NotContains(t, out, "• c")
	assert.Contains(t, out, "+2 more...")
}

func TestPrintToast(t *testing.T) {
	var buf bytes.Buffer
	printToast(&buf, &models.Toast{Title: "Claim Failed", Description: "Something went wrong. Please try again.", Variant: models.TOAST_VARIANT_DESTRUCTIVE})
	assert.Equal(t, "Claim Failed\nSomething went wrong. Please try again.\n", buf.String())
}

func TestWatchWithoutScheduleRunsOnce(t *testing.T) {
	runs := 0
	err := watch(context.Background(), "", func(ctx context.Context) error {
		runs++
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, runs)
}

func TestWatchStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	runs := 0
	err := watch(ctx, "@every 1h", func(ctx context.Context) error {
		runs++
		cancel()
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, runs)
}
