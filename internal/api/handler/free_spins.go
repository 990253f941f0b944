package handler

import (
	"net/http"
	"time"

	"mojorewards/internal/models"
	"mojorewards/internal/services"

	"github.com/hiendaovinh/toolkit/pkg/errorx"
	"github.com/hiendaovinh/toolkit/pkg/httpx-echo"
	"github.com/labstack/echo/v4"
	"github.com/samber/do"
)

type groupFreeSpins struct {
	container *do.Injector
	now       func() time.Time
}

type freeSpinsView struct {
	Offers []models.FreeSpinsOffer
	Now    time.Time
}

func (gr *groupFreeSpins) Index(c echo.Context) error {
	serviceFreeSpins, err := do.Invoke[*services.ServiceFreeSpins](gr.container)
	if err != nil {
		return err
	}

	now := gr.now()
	offers, err := serviceFreeSpins.GetActiveOffers(c.Request().Context(), now)
	if err != nil {
		return renderUpstreamError(c, "Free Spins", err)
	}

	return render(c, http.StatusOK, VIEW_FREE_SPINS, "Free Spins", &freeSpinsView{offers, now})
}

func (gr *groupFreeSpins) Get(c echo.Context) error {
	serviceFreeSpins, err := do.Invoke[*services.ServiceFreeSpins](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	offers, err := serviceFreeSpins.GetActiveOffers(c.Request().Context(), gr.now())
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	return httpx.RestAbort(c, offers, nil)
}
