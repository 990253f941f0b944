package datastore

import (
	"context"

	"mojorewards/internal/api"
	"mojorewards/internal/models"
)

func (c *Client) GetLeaderboardSettings(ctx context.Context) (*models.LeaderboardSettings, error) {
	return getJSON[*models.LeaderboardSettings](ctx, c, api.PathLeaderboardSettings)
}

func (c *Client) GetLeaderboardEntries(ctx context.Context) ([]models.LeaderboardEntry, error) {
	return getJSON[[]models.LeaderboardEntry](ctx, c, api.PathLeaderboardEntries)
}
