package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/benbeisheim/chessmaster-backend/internal/config"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(config.LogConfig{Level: "info"}, &buf)

	log.Debug().Msg("hidden")
	log.Info().Str("match_id", "m1").Msg("move accepted")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d log lines, want 1: %q", len(lines), buf.String())
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["match_id"] != "m1" || entry["message"] != "move accepted" || entry["level"] != "info" {
		t.Errorf("unexpected entry %v", entry)
	}
}

func TestNew_BadLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := New(config.LogConfig{Level: "nonsense"}, &buf)
	log.Debug().Msg("hidden")
	log.Info().Msg("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestNew_Pretty(t *testing.T) {
	var buf bytes.Buffer
	log := New(config.LogConfig{Level: "debug", Pretty: true}, &buf)
	log.Debug().Msg("reset")
	if !strings.Contains(buf.String(), "reset") || strings.HasPrefix(buf.String(), "{") {
		t.Errorf("unexpected pretty output %q", buf.String())
	}
}
