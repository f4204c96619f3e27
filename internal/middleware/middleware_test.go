package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

func echoPlayer(c *fiber.Ctx) error {
	return c.SendString(c.Locals(PlayerIDKey).(string))
}

func TestEnsurePlayerID(t *testing.T) {
	app := fiber.New()
	app.Get("/who", EnsurePlayerID(), echoPlayer)

	tests := []struct {
		name       string
		target     string
		header     string
		wantStatus int
		wantBody   string
	}{
		{"header", "/who", "p1", fiber.StatusOK, "p1"},
		{"query", "/who?playerId=p2", "", fiber.StatusOK, "p2"},
		{"header wins", "/who?playerId=p2", "p1", fiber.StatusOK, "p1"},
		{"missing", "/who", "", fiber.StatusUnauthorized, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.header != "" {
				req.Header.Set("X-Player-ID", tt.header)
			}
			resp, err := app.Test(req, -1)
			if err != nil {
				t.Fatalf("app.Test error: %v", err)
			}
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			body, _ := io.ReadAll(resp.Body)
			if tt.wantBody != "" && string(body) != tt.wantBody {
				t.Errorf("body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}

func TestWebSocketUpgrade_RequiresUpgrade(t *testing.T) {
	app := fiber.New()
	app.Get("/ws/match/:matchId", EnsurePlayerID(), WebSocketUpgrade(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/ws/match/m1", nil)
	req.Header.Set("X-Player-ID", "p1")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != fiber.StatusUpgradeRequired {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusUpgradeRequired)
	}
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New()
	app.Use(RequestLogger(zerolog.New(&buf)))
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })
	app.Get("/boom", func(c *fiber.Ctx) error { return fiber.ErrBadGateway })

	for _, target := range []string{"/ok", "/boom"} {
		if _, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil), -1); err != nil {
			t.Fatalf("app.Test(%s) error: %v", target, err)
		}
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d log lines, want 2: %q", len(lines), buf.String())
	}
	want := []struct {
		path   string
		status float64
		level  string
	}{
		{"/ok", fiber.StatusNoContent, "info"},
		{"/boom", fiber.StatusBadGateway, "error"},
	}
	for i, line := range lines {
		var entry map[string]any
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("line %d not JSON: %v", i, err)
		}
		if entry["path"] != want[i].path || entry["status"] != want[i].status || entry["level"] != want[i].level {
			t.Errorf("line %d = %v, want %+v", i, entry, want[i])
		}
	}
}
