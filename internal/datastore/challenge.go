package datastore

import (
	"context"
	"log"
	"net/http"

	"mojorewards/internal/api"
	"mojorewards/internal/models"
)

func (c *Client) GetChallenges(ctx context.Context) ([]models.Challenge, error) {
	return getJSON[[]models.Challenge](ctx, c, api.PathChallenges)
}

// ClaimChallenge records a prize claim with the records API. On success the
// cached challenge list is dropped so the next read reflects the new status.
func (c *Client) ClaimChallenge(ctx context.Context, id string, req models.ClaimRequest) error {
	_, err := c.do(ctx, http.MethodPost, api.PathChallengeClaim(id), req)
	if err != nil {
		return err
	}

	if err := c.Invalidate(ctx, api.PathChallenges); err != nil {
		log.Println("invalidate", api.PathChallenges, err)
	}
	return nil
}
