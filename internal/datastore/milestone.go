package datastore

import (
	"context"

	"mojorewards/internal/api"
	"mojorewards/internal/models"
)

func (c *Client) GetMilestones(ctx context.Context) ([]models.LevelMilestone, error) {
	return getJSON[[]models.LevelMilestone](ctx, c, api.PathMilestones)
}
