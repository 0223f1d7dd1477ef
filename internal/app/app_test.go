package app

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/heartmarshall/morse-resistance/internal/config"
	"github.com/heartmarshall/morse-resistance/internal/transport/middleware"
)

func testAppConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:            "127.0.0.1",
			Port:            0,
			ShutdownTimeout: time.Second,
			MaxBodyBytes:    1 << 20,
		},
		Decoder: config.DecoderConfig{
			Separator:      " ",
			Timeout:        5 * time.Second,
			MaxMorseLength: 1000,
			MaxWords:       1000,
		},
		Log: config.LogConfig{Level: "info", Format: "json"},
	}
}

func TestRouter_DecodeWithoutDatabase(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	rl := middleware.NewRateLimiter(time.Minute)
	defer rl.Stop()

	h := newRouter(testAppConfig(), logger, nil, rl)

	body := `{"morse":"--.----.......-.---.--......-..","words":["GOD","IS","NOW","HERE","NO","WHERE","HER","E"],"mode":"list"}`
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/decode", strings.NewReader(body)))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body)
	}

	var resp struct {
		Count    int      `json:"count"`
		Messages []string `json:"messages"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	want := []string{
		"GOD E E E E E NO WHERE",
		"GOD E E E E E NOW HER E",
		"GOD E E E E E NOW HERE",
		"GOD IS NO WHERE",
		"GOD IS NOW HER E",
		"GOD IS NOW HERE",
	}
	if resp.Count != len(want) || len(resp.Messages) != len(want) {
		t.Fatalf("unexpected response %+v", resp)
	}
	for i := range want {
		if resp.Messages[i] != want[i] {
			t.Errorf("messages[%d] = %q, want %q", i, resp.Messages[i], want[i])
		}
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/decode", strings.NewReader(`{"morse":"...","word_list":"x"}`)))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("word list without database: expected 503, got %d", rec.Code)
	}
}

func TestRun_StopsOnCancel(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- Run(ctx, testAppConfig(), logger) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}
