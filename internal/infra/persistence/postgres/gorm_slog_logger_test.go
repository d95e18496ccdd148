package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"tracker/config"
	deliverycontext "tracker/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestGormLogger(buf *bytes.Buffer, debug bool) logger.Interface {
	base := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return newGormSlogLogger(base, cfg)
}

func insertPing() (string, int64) {
	return `INSERT INTO "location_pings" ("delivery_id") VALUES ('d-1')`, 1
}

func TestGormSlogLogger_Trace(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		begin   time.Time
		err     error
		want    string
		wantNot string
	}{
		{name: "quiet fast query outside debug", begin: time.Now(), wantNot: "GORM"},
		{name: "fast query in debug", debug: true, begin: time.Now(), want: "GORM query"},
		{name: "slow query", begin: time.Now().Add(-time.Second), want: "GORM slow query"},
		{name: "failure", begin: time.Now(), err: errors.New("deadlock detected"), want: "level=ERROR"},
		{name: "record not found", begin: time.Now(), err: gorm.ErrRecordNotFound, wantNot: "GORM"},
		{name: "canceled caller", begin: time.Now(), err: context.Canceled, want: "level=DEBUG"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			newTestGormLogger(&buf, tt.debug).Trace(context.Background(), tt.begin, insertPing, tt.err)

			if tt.want != "" {
				assert.Contains(t, buf.String(), tt.want)
			}
			if tt.wantNot != "" {
				assert.NotContains(t, buf.String(), tt.wantNot)
			}
		})
	}
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))
	l := newTestGormLogger(&bytes.Buffer{}, false)

	ctx := deliverycontext.WithTrace(context.Background(), "req-5", base)
	l.Trace(ctx, time.Now(), insertPing, errors.New("unique violation"))

	assert.Contains(t, buf.String(), "request_id=req-5")
}

func TestGormSlogLogger_Silent(t *testing.T) {
	var buf bytes.Buffer
	l := newTestGormLogger(&buf, true).LogMode(logger.Silent)

	l.Trace(context.Background(), time.Now(), insertPing, errors.New("boom"))
	l.Error(context.Background(), "boom %d", 1)
	assert.Empty(t, buf.String())
}
