package handler

import (
	"net/http"
	"time"

	"mojorewards/internal"
	"mojorewards/internal/models"
	"mojorewards/internal/pkg/countdown"
	"mojorewards/internal/services"

	"github.com/hiendaovinh/toolkit/pkg/errorx"
	"github.com/hiendaovinh/toolkit/pkg/httpx-echo"
	"github.com/labstack/echo/v4"
	"github.com/samber/do"
)

type groupLeaderboard struct {
	container *do.Injector
	now       func() time.Time
}

type leaderboardView struct {
	Board     *models.LeaderboardResponse
	Remaining *countdown.Remaining
	Until     string
	Contacts  []internal.ContactLink
}

func (gr *groupLeaderboard) Show(c echo.Context) error {
	serviceLeaderboard, err := do.Invoke[*services.ServiceLeaderboard](gr.container)
	if err != nil {
		return err
	}

	board, err := serviceLeaderboard.GetLeaderboard(c.Request().Context())
	if err != nil {
		return renderUpstreamError(c, "Monthly Leaderboard", err)
	}

	view := &leaderboardView{Board: board, Contacts: internal.ContactLinks()}
	if board.Settings != nil {
		remaining := countdown.Until(board.Settings.EndDate, gr.now())
		view.Remaining = &remaining
		view.Until = board.Settings.EndDate.UTC().Format(time.RFC3339)
	}

	return render(c, http.StatusOK, VIEW_LEADERBOARD, "Monthly Leaderboard", view)
}

func (gr *groupLeaderboard) Get(c echo.Context) error {
	serviceLeaderboard, err := do.Invoke[*services.ServiceLeaderboard](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	board, err := serviceLeaderboard.GetLeaderboard(c.Request().Context())
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	return httpx.RestAbort(c, board, nil)
}
