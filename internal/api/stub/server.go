// Package stub serves the rewards records API from memory. It backs local
// development and acts as the upstream double in tests.
package stub

import (
	"net/http"
	"strings"
	"sync"

	"mojorewards/internal/api"
	"mojorewards/internal/models"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Claim struct {
	ChallengeID string
	models.ClaimRequest
}

type Server struct {
	mu         sync.Mutex
	fixtures   *Fixtures
	claims     []Claim
	failClaims bool
	hits       map[string]int
}

func New(fixtures *Fixtures) *Server {
	if fixtures == nil {
		fixtures = &Fixtures{}
	}
	return &Server{fixtures: fixtures, hits: map[string]int{}}
}

// Handler builds the echo router. quiet drops the access log.
func (s *Server) Handler(quiet bool) http.Handler {
	r := echo.New()
	r.HideBanner = true
	if !quiet {
		r.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
			Format: "${time_rfc3339}\t${method}\t${uri}\t${status}\t${latency_human}\n",
		}))
	}
	r.Use(middleware.Recover())
	r.Use(s.count)

	r.GET(api.PathLeaderboardSettings, s.leaderboardSettings)
	r.GET(api.PathLeaderboardEntries, s.leaderboardEntries)
	r.GET(api.PathMilestones, s.milestones)
	r.GET(api.PathChallenges, s.challenges)
	r.POST(api.PathChallenges+"/:id/claim", s.claim)
	r.GET(api.PathFreeSpins, s.freeSpins)

	return r
}

func (s *Server) count(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		s.mu.Lock()
		s.hits[c.Request().Method+" "+c.Request().URL.Path]++
		s.mu.Unlock()
		return next(c)
	}
}

// Hits reports how many requests reached method and path, e.g. "GET /api/challenges".
func (s *Server) Hits(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[key]
}

// SetFailClaims makes every claim answer with a server error.
func (s *Server) SetFailClaims(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failClaims = fail
}

func (s *Server) Claims() []Claim {
	s.mu.Lock()
	defer s.mu.Unlock()
	claims := make([]Claim, len(s.claims))
	copy(claims, s.claims)
	return claims
}

func (s *Server) leaderboardSettings(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.JSON(http.StatusOK, s.fixtures.Settings)
}

func (s *Server) leaderboardEntries(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.JSON(http.StatusOK, nonNil(s.fixtures.Entries))
}

func (s *Server) milestones(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.JSON(http.StatusOK, nonNil(s.fixtures.Milestones))
}

func (s *Server) challenges(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.JSON(http.StatusOK, nonNil(s.fixtures.Challenges))
}

func (s *Server) freeSpins(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.JSON(http.StatusOK, nonNil(s.fixtures.FreeSpins))
}

func (s *Server) claim(c echo.Context) error {
	var req models.ClaimRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.DiscordUsername) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "username and discordUsername are required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failClaims {
		return echo.NewHTTPError(http.StatusInternalServerError, "claim rejected")
	}

	id := c.Param("id")
	for i := range s.fixtures.Challenges {
		challenge := &s.fixtures.Challenges[i]
		if challenge.ID != id {
			continue
		}
		challenge.ClaimStatus = models.CLAIM_STATUS_CLAIMED
		s.claims = append(s.claims, Claim{id, req})
		return c.JSON(http.StatusOK, map[string]any{"success": true})
	}

	return echo.NewHTTPError(http.StatusNotFound, "challenge not found")
}

func nonNil[T any](list []T) []T {
	if list == nil {
		return []T{}
	}
	return list
}
