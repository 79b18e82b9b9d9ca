package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tatianab/detective-quest/internal/logging"
)

func TestContextHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, slog.LevelDebug)

	ctx := logging.WithAttrs(context.Background(), slog.String("session", "abc"))
	ctx = logging.WithAttrs(ctx, slog.String("room", "Kitchen"))
	logger.InfoContext(ctx, "arrived")

	out := buf.String()
	require.Contains(t, out, "msg=arrived")
	require.Contains(t, out, "session=abc")
	require.Contains(t, out, "room=Kitchen")
}

func TestWithAttrsDoesNotLeakBetweenBranches(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, slog.LevelDebug)

	base := logging.WithAttrs(context.Background(), slog.String("session", "abc"))
	_ = logging.WithAttrs(base, slog.String("room", "Kitchen"))
	logger.InfoContext(base, "base only")

	require.NotContains(t, buf.String(), "room=Kitchen")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "", want: slog.LevelInfo},
		{in: "INFO", want: slog.LevelInfo},
		{in: "warn", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "loud", want: slog.LevelInfo, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := logging.ParseLevel(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, logging.ErrUnknownLevel)
			} else {
				require.NoError(t, err)
			}
			require.Equal(t, tt.want, got)
		})
	}
}
