package datastore

import (
	"context"

	"mojorewards/internal/api"
	"mojorewards/internal/models"
)

func (c *Client) GetFreeSpins(ctx context.Context) ([]models.FreeSpinsOffer, error) {
	return getJSON[[]models.FreeSpinsOffer](ctx, c, api.PathFreeSpins)
}
