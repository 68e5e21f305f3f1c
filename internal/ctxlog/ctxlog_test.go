package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromContext(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	ctx := WithLogger(context.Background(), logger)

	require.Same(t, logger, FromContext(ctx))
	require.NotNil(t, FromContext(context.Background()))
}

func TestNew(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		level     string
		format    string
		wantDebug bool
		wantJSON  bool
	}{
		{name: "debug text", level: "debug", format: "text", wantDebug: true},
		{name: "info json", level: "info", format: "json", wantJSON: true},
		{name: "unknown level falls back to info", level: "verbose", format: "text"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			buf := &bytes.Buffer{}
			logger := New(tc.level, tc.format, buf)

			logger.Debug("debug line")
			logger.Info("info line", "stage", "vertex")

			out := buf.String()
			require.Equal(t, tc.wantDebug, bytes.Contains(buf.Bytes(), []byte("debug line")))
			require.Contains(t, out, "info line")
			if tc.wantJSON {
				require.Contains(t, out, `"stage":"vertex"`)
			} else {
				require.Contains(t, out, "stage=vertex")
			}
		})
	}
}
