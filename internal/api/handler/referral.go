package handler

import (
	"net/http"

	"mojorewards/internal/services"

	"github.com/hiendaovinh/toolkit/pkg/errorx"
	"github.com/hiendaovinh/toolkit/pkg/httpx-echo"
	"github.com/labstack/echo/v4"
	"github.com/samber/do"
)

type groupReferral struct {
	container *do.Injector
}

func (gr *groupReferral) Show(c echo.Context) error {
	serviceReferral, err := do.Invoke[*services.ServiceReferral](gr.container)
	if err != nil {
		return err
	}

	return render(c, http.StatusOK, VIEW_REFERRAL, "Referral Program", serviceReferral.Program())
}

func (gr *groupReferral) Get(c echo.Context) error {
	serviceReferral, err := do.Invoke[*services.ServiceReferral](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	return httpx.RestAbort(c, serviceReferral.Program(), nil)
}
