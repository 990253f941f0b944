package services

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"

	"mojorewards/internal/datastore"
	"mojorewards/internal/interfaces"
	"mojorewards/internal/models"
	"mojorewards/internal/pkg/locker"
	"mojorewards/internal/pkg/ratelimit"

	"github.com/go-redis/redis_rate/v10"
	"github.com/samber/do"
)

type ServiceChallenge struct {
	container *do.Injector
	client    *datastore.Client
	limiter   interfaces.Limiter
	locker    interfaces.Locker

	inviteURL  string
	claimLimit redis_rate.Limit
}

func NewServiceChallenge(container *do.Injector) (*ServiceChallenge, error) {
	client, err := do.Invoke[*datastore.Client](container)
	if err != nil {
		return nil, err
	}

	limiter, err := do.Invoke[interfaces.Limiter](container)
	if err != nil {
		return nil, err
	}

	locker, err := do.Invoke[interfaces.Locker](container)
	if err != nil {
		return nil, err
	}

	vs, err := do.InvokeNamed[map[string]string](container, "envs")
	if err != nil {
		return nil, err
	}

	inviteURL := InviteURL(vs)

	perMinute := CLAIM_RATE_LIMIT_PER_MINUTE
	if v, err := strconv.Atoi(vs[ENV_CLAIM_RATE_LIMIT_PER_MINUTE]); err == nil {
		perMinute = v
	}

	var claimLimit redis_rate.Limit
	if perMinute > 0 {
		claimLimit = redis_rate.PerMinute(perMinute)
	}

	return &ServiceChallenge{container, client, limiter, locker, inviteURL, claimLimit}, nil
}

func (service *ServiceChallenge) InviteURL() string {
	return service.inviteURL
}

func (service *ServiceChallenge) GetActiveChallenges(ctx context.Context) ([]models.Challenge, error) {
	challenges, err := service.client.GetChallenges(ctx)
	if err != nil {
		return nil, err
	}

	return ActiveChallenges(challenges), nil
}

// FindActiveChallenge resolves a selection against the current active set.
func (service *ServiceChallenge) FindActiveChallenge(ctx context.Context, id string) (*models.Challenge, error) {
	challenges, err := service.GetActiveChallenges(ctx)
	if err != nil {
		return nil, err
	}

	for i := range challenges {
		if challenges[i].ID == id {
			return &challenges[i], nil
		}
	}
	return nil, ErrNotFound
}

func ActiveChallenges(challenges []models.Challenge) []models.Challenge {
	active := make([]models.Challenge, 0, len(challenges))
	for _, challenge := range challenges {
		if challenge.Available() {
			active = append(active, challenge)
		}
	}
	return active
}

// ClaimDialog is the selection and input state of the claim form.
type ClaimDialog struct {
	Selected        *models.Challenge
	Username        string
	DiscordUsername string
	Pending         bool
}

func (d *ClaimDialog) Open(challenge *models.Challenge) {
	d.Selected = challenge
}

// Close dismisses the dialog. Entered text is kept.
func (d *ClaimDialog) Close() {
	d.Selected = nil
}

func (d *ClaimDialog) IsOpen() bool {
	return d.Selected != nil
}

func (d *ClaimDialog) reset() {
	d.Selected = nil
	d.Username = ""
	d.DiscordUsername = ""
}

type ClaimOutcome struct {
	Toast       models.Toast
	RedirectURL string
	Err         error
}

func (o *ClaimOutcome) Succeeded() bool {
	return o.Err == nil
}

func (o *ClaimOutcome) Status() string {
	switch {
	case o.Err == nil:
		return CLAIM_OUTCOME_SUCCESS
	case errors.Is(o.Err, ErrMissingInformation):
		return CLAIM_OUTCOME_INVALID
	case errors.Is(o.Err, ratelimit.ErrRateLimited):
		return CLAIM_OUTCOME_RATE_LIMITED
	case errors.Is(o.Err, ErrClaimInProgress):
		return CLAIM_OUTCOME_IN_PROGRESS
	default:
		return CLAIM_OUTCOME_FAILED
	}
}

// Submit sends the claim held by dialog. Missing input is rejected before
// any network call. On success the dialog is cleared and the outcome carries
// the invite link to navigate to; on failure the dialog is left untouched so
// the user can retry. clientKey scopes the rate limit, empty skips it.
func (service *ServiceChallenge) Submit(ctx context.Context, dialog *ClaimDialog, clientKey string) ClaimOutcome {
	username := strings.TrimSpace(dialog.Username)
	discordUsername := strings.TrimSpace(dialog.DiscordUsername)

	if dialog.Selected == nil || username == "" || discordUsername == "" {
		return ClaimOutcome{
			Toast: models.Toast{
				Title:       TOAST_MISSING_INFO_TITLE,
				Description: TOAST_MISSING_INFO_DESCRIPTION,
				Variant:     models.TOAST_VARIANT_DESTRUCTIVE,
			},
			Err: ErrMissingInformation,
		}
	}

	if clientKey != "" && !service.claimLimit.IsZero() {
		if err := service.limiter.Allow(ctx, LimitKeyClaim(clientKey), service.claimLimit); err != nil {
			return failedClaim(err, TOAST_CLAIM_FAILED_TITLE, TOAST_RATE_LIMITED_DESCRIPTION)
		}
	}

	challengeID := dialog.Selected.ID
	release, err := service.locker.TryLock(ctx, LockKeyClaim(challengeID, username))
	if err != nil {
		if errors.Is(err, locker.ErrLocked) {
			err = ErrClaimInProgress
		}
		return failedClaim(err, TOAST_IN_PROGRESS_TITLE, TOAST_IN_PROGRESS_DESCRIPTION)
	}
	defer release()

	dialog.Pending = true
	defer func() { dialog.Pending = false }()

	err = service.client.ClaimChallenge(ctx, challengeID, models.ClaimRequest{
		Username:        username,
		DiscordUsername: discordUsername,
	})
	if err != nil {
		log.Println("claim challenge", challengeID, err)
		return failedClaim(err, TOAST_CLAIM_FAILED_TITLE, TOAST_CLAIM_FAILED_DESCRIPTION)
	}

	dialog.reset()

	return ClaimOutcome{
		Toast: models.Toast{
			Title:       TOAST_CLAIM_SUCCESS_TITLE,
			Description: TOAST_CLAIM_SUCCESS_DESCRIPTION,
			Variant:     models.TOAST_VARIANT_DEFAULT,
		},
		RedirectURL: service.inviteURL,
	}
}

func failedClaim(err error, title string, description string) ClaimOutcome {
	return ClaimOutcome{
		Toast: models.Toast{
			Title:       title,
			Description: description,
			Variant:     models.TOAST_VARIANT_DESTRUCTIVE,
		},
		Err: err,
	}
}
