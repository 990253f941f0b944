package handler

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"log"
	"net/http"
	"time"

	"mojorewards/internal"
	"mojorewards/internal/models"
	"mojorewards/internal/pkg"
	"mojorewards/internal/pkg/countdown"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

const (
	VIEW_LEADERBOARD = "leaderboard"
	VIEW_MILESTONES  = "milestones"
	VIEW_CHALLENGES  = "challenges"
	VIEW_FREE_SPINS  = "free_spins"
	VIEW_REFERRAL    = "referral"
	VIEW_NOT_FOUND   = "not_found"
	VIEW_ERROR       = "error"
)

//go:embed templates/*.html
var templatesFS embed.FS

type renderer struct {
	views map[string]*template.Template
}

var templateFuncs = template.FuncMap{
	"money":   func(d decimal.Decimal) string { return pkg.FormatMoney(d) },
	"number":  func(d decimal.Decimal) string { return pkg.FormatNumber(d) },
	"plain":   func(d decimal.Decimal) string { return pkg.FormatPlain(d) },
	"percent": pkg.FormatPercent,
	"slug":    pkg.Slugify,
	"rfc3339": func(t time.Time) string { return t.UTC().Format(time.RFC3339) },
	"remaining": func(target time.Time, now time.Time) countdown.Remaining {
		return countdown.Until(target, now)
	},
	"isLast": func(i int, n int) bool { return i == n-1 },
}

func newRenderer() (*renderer, error) {
	layout, err := template.New("layout.html").Funcs(templateFuncs).ParseFS(templatesFS, "templates/layout.html")
	if err != nil {
		return nil, err
	}

	views := map[string]*template.Template{}
	for _, name := range []string{
		VIEW_LEADERBOARD,
		VIEW_MILESTONES,
		VIEW_CHALLENGES,
		VIEW_FREE_SPINS,
		VIEW_REFERRAL,
		VIEW_NOT_FOUND,
		VIEW_ERROR,
	} {
		base, err := layout.Clone()
		if err != nil {
			return nil, err
		}
		view, err := base.ParseFS(templatesFS, "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("view %s: %w", name, err)
		}
		views[name] = view
	}

	return &renderer{views}, nil
}

func (r *renderer) Render(w io.Writer, name string, data any, c echo.Context) error {
	view, ok := r.views[name]
	if !ok {
		return fmt.Errorf("unknown view %q", name)
	}
	return view.ExecuteTemplate(w, "layout", data)
}

type shell struct {
	Title   string
	Name    string
	Tagline string
	LogoURL string
	Signup  string
	Nav     []internal.NavGroup
	Socials []internal.SocialLink
}

type page struct {
	Title       string
	Shell       shell
	Toast       *models.Toast
	RedirectURL string
	Data        any
}

func newPage(c echo.Context, title string, data any) *page {
	return &page{
		Title: title,
		Shell: shell{
			Title:   internal.SITE_TITLE,
			Name:    internal.SITE_NAME,
			Tagline: internal.SITE_TAGLINE,
			LogoURL: internal.SITE_LOGO_URL,
			Signup:  internal.GAMDOM_SIGNUP_URL,
			Nav:     internal.Navigation(c.Request().URL.Path, inviteURL(c)),
			Socials: internal.SocialLinks(inviteURL(c)),
		},
		Data: data,
	}
}

func render(c echo.Context, code int, view string, title string, data any) error {
	return renderPage(c, code, view, newPage(c, title, data))
}

func renderPage(c echo.Context, code int, view string, p *page) error {
	return c.Render(code, view, p)
}

type errorView struct {
	Message string
}

// renderUpstreamError shows a failed fetch inside the view that triggered it.
func renderUpstreamError(c echo.Context, title string, err error) error {
	log.Println(c.Request().URL.Path, err)
	return render(c, http.StatusBadGateway, VIEW_ERROR, title, &errorView{
		Message: "We couldn't load this page right now. Please try again in a moment.",
	})
}
