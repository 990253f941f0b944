package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"mojorewards/internal/pkg/countdown"

	"github.com/hiendaovinh/toolkit/pkg/errorx"
	"github.com/hiendaovinh/toolkit/pkg/httpx-echo"
	"github.com/labstack/echo/v4"
)

type groupCountdown struct {
	now func() time.Time
}

type countdownFrame struct {
	countdown.Remaining
	Label string `json:"label"`
}

func newCountdownFrame(r countdown.Remaining) countdownFrame {
	return countdownFrame{r, r.String()}
}

func parseUntil(c echo.Context) (time.Time, error) {
	raw := c.QueryParam("until")
	if raw == "" {
		return time.Time{}, errors.New("missing until")
	}
	until, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid until: %w", err)
	}
	return until, nil
}

func (gr *groupCountdown) Frame(c echo.Context) error {
	until, err := parseUntil(c)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Invalid))
	}

	return httpx.RestAbort(c, newCountdownFrame(countdown.Until(until, gr.now())), nil)
}

// Stream pushes one server-sent event per second until the deadline passes.
// The timer lives as long as the request.
func (gr *groupCountdown) Stream(c echo.Context) error {
	until, err := parseUntil(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.WriteHeader(http.StatusOK)

	timer := countdown.New(until)
	timer.Now = gr.now

	ctx, cancel := context.WithCancel(c.Request().Context())
	defer cancel()

	err = timer.Run(ctx, func(r countdown.Remaining) {
		payload, err := json.Marshal(newCountdownFrame(r))
		if err != nil {
			cancel()
			return
		}
		if _, err := fmt.Fprintf(res, "data: %s\n\n", payload); err != nil {
			cancel()
			return
		}
		res.Flush()
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
