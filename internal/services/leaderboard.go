package services

import (
	"context"
	"sort"

	"mojorewards/internal/datastore"
	"mojorewards/internal/models"
	"mojorewards/internal/pkg"

	"github.com/samber/do"
	"golang.org/x/sync/errgroup"
)

type ServiceLeaderboard struct {
	container *do.Injector
	client    *datastore.Client
}

func NewServiceLeaderboard(container *do.Injector) (*ServiceLeaderboard, error) {
	client, err := do.Invoke[*datastore.Client](container)
	if err != nil {
		return nil, err
	}

	return &ServiceLeaderboard{container, client}, nil
}

// GetLeaderboard loads settings and entries together. Settings may be nil
// when the API has none, in which case countdown and prize pool are omitted.
func (service *ServiceLeaderboard) GetLeaderboard(ctx context.Context) (*models.LeaderboardResponse, error) {
	var settings *models.LeaderboardSettings
	var entries []models.LeaderboardEntry

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		settings, err = service.client.GetLeaderboardSettings(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		entries, err = service.client.GetLeaderboardEntries(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	response := &models.LeaderboardResponse{
		Settings:    settings,
		Leaderboard: RankLeaderboard(entries),
	}
	if settings != nil {
		response.TotalPrizePool = pkg.FormatMoney(settings.TotalPrizePool)
	}

	return response, nil
}

// RankLeaderboard orders entries ascending by rank and decorates the podium.
func RankLeaderboard(entries []models.LeaderboardEntry) []*models.LeaderboardItem {
	sorted := make([]models.LeaderboardEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Rank < sorted[j].Rank
	})

	items := make([]*models.LeaderboardItem, 0, len(sorted))
	for _, entry := range sorted {
		item := &models.LeaderboardItem{
			Rank:     entry.Rank,
			Username: entry.Username,
			Wagered:  pkg.FormatMoney(entry.Wagered),
			Prize:    pkg.FormatMoney(entry.Prize),
		}

		switch entry.Rank {
		case 1:
			item.Icon, item.Tier = models.RANK_ICON_TROPHY, models.RANK_TIER_GOLD
		case 2:
			item.Icon, item.Tier = models.RANK_ICON_MEDAL, models.RANK_TIER_SILVER
		case 3:
			item.Icon, item.Tier = models.RANK_ICON_AWARD, models.RANK_TIER_BRONZE
		}

		items = append(items, item)
	}

	return items
}
