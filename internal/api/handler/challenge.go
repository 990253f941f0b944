package handler

import (
	"errors"
	"net/http"

	"mojorewards/internal/models"
	"mojorewards/internal/services"

	"github.com/hiendaovinh/toolkit/pkg/errorx"
	"github.com/hiendaovinh/toolkit/pkg/httpx-echo"
	"github.com/labstack/echo/v4"
	"github.com/samber/do"
)

type groupChallenge struct {
	container *do.Injector
	metrics   *metrics
}

type challengesView struct {
	Challenges []models.Challenge
	Dialog     *services.ClaimDialog
}

type claimResponse struct {
	Toast       models.Toast `json:"toast"`
	RedirectURL string       `json:"redirectUrl"`
}

func (gr *groupChallenge) Index(c echo.Context) error {
	serviceChallenge, err := do.Invoke[*services.ServiceChallenge](gr.container)
	if err != nil {
		return err
	}

	challenges, err := serviceChallenge.GetActiveChallenges(c.Request().Context())
	if err != nil {
		return renderUpstreamError(c, "Challenges", err)
	}

	dialog := &services.ClaimDialog{}
	if id := c.QueryParam("claim"); id != "" {
		if selected := findChallenge(challenges, id); selected != nil {
			dialog.Open(selected)
		}
	}

	return render(c, http.StatusOK, VIEW_CHALLENGES, "Challenges", &challengesView{challenges, dialog})
}

// Claim handles the claim dialog form. Success navigates to the invite link,
// anything else re-renders the open dialog with the entered text.
func (gr *groupChallenge) Claim(c echo.Context) error {
	serviceChallenge, err := do.Invoke[*services.ServiceChallenge](gr.container)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	challenges, err := serviceChallenge.GetActiveChallenges(ctx)
	if err != nil {
		return renderUpstreamError(c, "Challenges", err)
	}

	selected := findChallenge(challenges, c.Param("id"))
	if selected == nil {
		return echo.ErrNotFound
	}

	dialog := &services.ClaimDialog{
		Username:        c.FormValue("username"),
		DiscordUsername: c.FormValue("discordUsername"),
	}
	dialog.Open(selected)

	outcome := serviceChallenge.Submit(ctx, dialog, clientKey(c))
	gr.metrics.claims.WithLabelValues(outcome.Status()).Inc()

	view := &challengesView{challenges, dialog}
	if outcome.Succeeded() {
		// the claimed challenge drops out once the list is fetched again
		if fresh, err := serviceChallenge.GetActiveChallenges(ctx); err == nil {
			view.Challenges = fresh
		}
	}

	p := newPage(c, "Challenges", view)
	p.Toast = &outcome.Toast
	p.RedirectURL = outcome.RedirectURL
	return renderPage(c, claimStatusCode(&outcome), VIEW_CHALLENGES, p)
}

func (gr *groupChallenge) Get(c echo.Context) error {
	serviceChallenge, err := do.Invoke[*services.ServiceChallenge](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	challenges, err := serviceChallenge.GetActiveChallenges(c.Request().Context())
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	return httpx.RestAbort(c, challenges, nil)
}

func (gr *groupChallenge) ClaimJSON(c echo.Context) error {
	serviceChallenge, err := do.Invoke[*services.ServiceChallenge](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	var req models.ClaimRequest
	if err := c.Bind(&req); err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(errors.New("invalid claim body"), errorx.Invalid))
	}

	ctx := c.Request().Context()
	selected, err := serviceChallenge.FindActiveChallenge(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return httpx.RestAbort(c, nil, errorx.Wrap(errors.New("challenge not found"), errorx.NotExist))
		}
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	dialog := &services.ClaimDialog{
		Username:        req.Username,
		DiscordUsername: req.DiscordUsername,
	}
	dialog.Open(selected)

	outcome := serviceChallenge.Submit(ctx, dialog, clientKey(c))
	gr.metrics.claims.WithLabelValues(outcome.Status()).Inc()

	if !outcome.Succeeded() {
		return httpx.RestAbort(c, nil, claimError(&outcome))
	}

	return httpx.RestAbort(c, &claimResponse{outcome.Toast, outcome.RedirectURL}, nil)
}

func findChallenge(challenges []models.Challenge, id string) *models.Challenge {
	for i := range challenges {
		if challenges[i].ID == id {
			return &challenges[i]
		}
	}
	return nil
}

func claimStatusCode(outcome *services.ClaimOutcome) int {
	switch outcome.Status() {
	case services.CLAIM_OUTCOME_SUCCESS:
		return http.StatusOK
	case services.CLAIM_OUTCOME_INVALID:
		return http.StatusUnprocessableEntity
	case services.CLAIM_OUTCOME_RATE_LIMITED:
		return http.StatusTooManyRequests
	case services.CLAIM_OUTCOME_IN_PROGRESS:
		return http.StatusConflict
	default:
		return http.StatusBadGateway
	}
}

func claimError(outcome *services.ClaimOutcome) error {
	switch outcome.Status() {
	case services.CLAIM_OUTCOME_INVALID:
		return errorx.Wrap(outcome.Err, errorx.Validation)
	case services.CLAIM_OUTCOME_RATE_LIMITED:
		return errorx.Wrap(outcome.Err, errorx.RateLimiting)
	case services.CLAIM_OUTCOME_IN_PROGRESS:
		return errorx.Wrap(outcome.Err, errorx.Invalid)
	default:
		return errorx.Wrap(outcome.Err, errorx.Service)
	}
}
