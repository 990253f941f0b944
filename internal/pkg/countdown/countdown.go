// Package countdown turns an absolute deadline into a live remaining-time display.
package countdown

import (
	"context"
	"fmt"
	"time"
)

const DEFAULT_INTERVAL = time.Second

type Remaining struct {
	Days    int  `json:"days"`
	Hours   int  `json:"hours"`
	Minutes int  `json:"minutes"`
	Seconds int  `json:"seconds"`
	Expired bool `json:"expired"`
}

// Until splits the time left before target. Once now reaches target the
// result is the zero duration marked Expired.
func Until(target, now time.Time) Remaining {
	left := target.Sub(now)
	if left <= 0 {
		return Remaining{Expired: true}
	}

	total := int64(left / time.Second)
	return Remaining{
		Days:    int(total / 86400),
		Hours:   int(total % 86400 / 3600),
		Minutes: int(total % 3600 / 60),
		Seconds: int(total % 60),
	}
}

func (r Remaining) String() string {
	if r.Expired {
		return "Expired"
	}
	return fmt.Sprintf("%dd %02dh %02dm %02ds", r.Days, r.Hours, r.Minutes, r.Seconds)
}

type Timer struct {
	Target   time.Time
	Interval time.Duration
	Now      func() time.Time
}

func New(target time.Time) *Timer {
	return &Timer{
		Target:   target,
		Interval: DEFAULT_INTERVAL,
		Now:      time.Now,
	}
}

// Run calls fn with the current frame right away and then once per interval
// until the expired frame has been delivered or ctx is done. The ticker is
// released before Run returns.
func (t *Timer) Run(ctx context.Context, fn func(Remaining)) error {
	interval := t.Interval
	if interval <= 0 {
		interval = DEFAULT_INTERVAL
	}
	now := t.Now
	if now == nil {
		now = time.Now
	}

	frame := Until(t.Target, now())
	fn(frame)
	if frame.Expired {
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			frame = Until(t.Target, now())
			fn(frame)
			if frame.Expired {
				return nil
			}
		}
	}
}
