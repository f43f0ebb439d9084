package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	app := fiber.New()
	app.Use(requestid.New(requestid.Config{
		Generator:  func() string { return "req-1" },
		ContextKey: RequestIDKey,
	}))
	app.Use(RequestLogger(zap.New(core)))
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/bad", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusBadRequest) })
	app.Get("/boom", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusBadGateway, "upstream") })

	tests := []struct {
		path   string
		status int
		level  zapcore.Level
	}{
		{"/ok", fiber.StatusOK, zapcore.InfoLevel},
		{"/bad", fiber.StatusBadRequest, zapcore.WarnLevel},
		{"/boom", fiber.StatusBadGateway, zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil))
			if err != nil {
				t.Fatal(err)
			}
			if resp.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.status)
			}

			entries := logs.TakeAll()
			if len(entries) != 1 {
				t.Fatalf("got %d log entries, want 1", len(entries))
			}
			entry := entries[0]
			if entry.Level != tt.level {
				t.Errorf("level = %s, want %s", entry.Level, tt.level)
			}
			fields := entry.ContextMap()
			if fields["path"] != tt.path || fields["request_id"] != "req-1" {
				t.Errorf("fields = %v", fields)
			}
			if fields["status"] != int64(tt.status) {
				t.Errorf("logged status = %v, want %d", fields["status"], tt.status)
			}
		})
	}
}
