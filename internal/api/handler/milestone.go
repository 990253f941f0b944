package handler

import (
	"net/http"
	"strconv"

	"mojorewards/internal/models"
	"mojorewards/internal/services"

	"github.com/hiendaovinh/toolkit/pkg/errorx"
	"github.com/hiendaovinh/toolkit/pkg/httpx-echo"
	"github.com/labstack/echo/v4"
	"github.com/samber/do"
)

type groupMilestone struct {
	container *do.Injector
}

type milestonesView struct {
	Milestones []models.LevelMilestone
	// Selected backs the details dialog, nil when closed.
	Selected   *models.LevelMilestone
	ClaimURL   string
}

func (gr *groupMilestone) Index(c echo.Context) error {
	serviceMilestone, err := do.Invoke[*services.ServiceMilestone](gr.container)
	if err != nil {
		return err
	}

	milestones, err := serviceMilestone.GetMilestones(c.Request().Context())
	if err != nil {
		return renderUpstreamError(c, "Level Milestones", err)
	}

	view := &milestonesView{Milestones: milestones, ClaimURL: inviteURL(c)}
	if tier, err := strconv.Atoi(c.QueryParam("tier")); err == nil {
		// an unknown tier leaves the dialog closed
		view.Selected, _ = services.FindMilestone(milestones, tier)
	}

	return render(c, http.StatusOK, VIEW_MILESTONES, "Level Milestones", view)
}

func (gr *groupMilestone) Get(c echo.Context) error {
	serviceMilestone, err := do.Invoke[*services.ServiceMilestone](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	milestones, err := serviceMilestone.GetMilestones(c.Request().Context())
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	return httpx.RestAbort(c, milestones, nil)
}
