// Package web serves the small server-rendered pages for browsing
// posts and developer profiles. It is a thin read-only layer over the
// same services the API uses.
package web

import (
	"bytes"
	"embed"
	"html/template"

	"devconnect/internal/middleware"
	"devconnect/internal/service"

	"github.com/gofiber/fiber/v2"
)

//go:embed templates/*.html
var templateFS embed.FS

// Handler renders the HTML pages.
type Handler struct {
	profiles  *service.ProfileService
	posts     *service.PostService
	templates *template.Template
}

// NewHandler parses the embedded templates and returns a Handler.
func NewHandler(profiles *service.ProfileService, posts *service.PostService) (*Handler, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Handler{profiles: profiles, posts: posts, templates: tmpl}, nil
}

// Register mounts the page routes on the app.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/", h.Landing)
	app.Get("/developers", h.Developers)
	app.Get("/feed", h.Feed)
}

func (h *Handler) render(c *fiber.Ctx, name string, data any) error {
	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, name, data); err != nil {
		middleware.Logger.ErrorContext(c.UserContext(), "template render failed",
			"template", name, "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).
			Type("html").SendString("<p>Something went wrong.</p>")
	}
	return c.Type("html").Send(buf.Bytes())
}

// Landing renders the landing page.
func (h *Handler) Landing(c *fiber.Ctx) error {
	return h.render(c, "landing.html", nil)
}

// Developers renders the list of profiles.
func (h *Handler) Developers(c *fiber.Ctx) error {
	profiles, err := h.profiles.ListProfiles(c.Context())
	if err != nil {
		return h.render(c, "developers.html", map[string]any{
			"Error": "Profiles are unavailable right now.",
		})
	}
	return h.render(c, "developers.html", map[string]any{"Profiles": profiles})
}

// Feed renders the list of posts, newest first.
func (h *Handler) Feed(c *fiber.Ctx) error {
	posts, err := h.posts.ListPosts(c.Context())
	if err != nil {
		return h.render(c, "feed.html", map[string]any{
			"Error": "Posts are unavailable right now.",
		})
	}
	return h.render(c, "feed.html", map[string]any{"Posts": posts})
}
