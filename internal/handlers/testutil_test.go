package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/stretchr/testify/require"

	"github.com/dymun-conference/portal-backend/internal/config"
	"github.com/dymun-conference/portal-backend/internal/handlers"
	"github.com/dymun-conference/portal-backend/internal/middleware"
	"github.com/dymun-conference/portal-backend/internal/models"
	"github.com/dymun-conference/portal-backend/internal/repository"
	"github.com/dymun-conference/portal-backend/internal/routes"
	"github.com/dymun-conference/portal-backend/internal/seed"
	"github.com/dymun-conference/portal-backend/internal/store"
)

// newTestApp wires the app the same way cmd/server does, against a temp
// data dir with the default seeded roster.
func newTestApp(t *testing.T, mutate func(*config.Config)) (*fiber.App, routes.Deps) {
	t.Helper()

	dir := t.TempDir()
	cfg := config.Config{
		Port:       "0",
		DataDir:    dir,
		AuthMode:   config.AuthModeCookie,
		SessionTTL: time.Hour,
	}
	if mutate != nil {
		mutate(&cfg)
	}

	usersDoc, err := store.Open[models.User](filepath.Join(dir, "users.json"))
	require.NoError(t, err)
	doubtsDoc, err := store.Open[models.ForumDoubt](filepath.Join(dir, "forum_doubts.json"))
	require.NoError(t, err)

	d := routes.Deps{
		Cfg:    cfg,
		Users:  repository.NewUserRepository(usersDoc),
		Doubts: repository.NewDoubtRepository(doubtsDoc),
	}
	require.NoError(t, seed.Run(d.Users, ""))

	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler})
	if cfg.AuthMode == config.AuthModeToken {
		app.Use(middleware.JWTUid([]byte(cfg.JWTSecret)))
	} else {
		d.Sessions = session.New(session.Config{Expiration: cfg.SessionTTL})
		app.Use(middleware.SessionUID(d.Sessions))
	}
	routes.Register(app, d)
	return app, d
}

type header struct{ key, value string }

func doRequest(t *testing.T, app *fiber.App, method, path, body string, hdrs ...header) *http.Response {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range hdrs {
		req.Header.Set(h.key, h.value)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func bodyMap(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	out := map[string]any{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func bodyList(t *testing.T, resp *http.Response) []map[string]any {
	t.Helper()
	out := []map[string]any{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func bodyString(t *testing.T, resp *http.Response) string {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(raw)
}

// loginAs authenticates via the login endpoint and returns the session
// cookie to replay on subsequent requests.
func loginAs(t *testing.T, app *fiber.App, gmail, password string) header {
	t.Helper()

	resp := doRequest(t, app, "POST", "/api/auth/login",
		`{"gmail":"`+gmail+`","password":"`+password+`"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	setCookie := resp.Header.Get("Set-Cookie")
	require.NotEmpty(t, setCookie)
	cookie, _, _ := strings.Cut(setCookie, ";")
	return header{"Cookie", cookie}
}
