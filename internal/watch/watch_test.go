package watch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/require"
)

func TestWatcher_Relevant(t *testing.T) {
	t.Parallel()

	w := New("shaders", ".hlsl")
	w.Skip = func(path string) bool { return strings.Contains(path, "vendor") }

	testCases := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"write to source", fsnotify.Event{Name: "shaders/sprite.hlsl", Op: fsnotify.Write}, true},
		{"create source", fsnotify.Event{Name: "shaders/new.hlsl", Op: fsnotify.Create}, true},
		{"chmod only", fsnotify.Event{Name: "shaders/sprite.hlsl", Op: fsnotify.Chmod}, false},
		{"removed source", fsnotify.Event{Name: "shaders/sprite.hlsl", Op: fsnotify.Remove}, false},
		{"compiled artifact", fsnotify.Event{Name: "shaders/sprite_v.spv", Op: fsnotify.Write}, false},
		{"skipped path", fsnotify.Event{Name: "shaders/vendor/imgui.hlsl", Op: fsnotify.Write}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, w.Relevant(tc.event))
		})
	}
}

func TestWatcher_Run(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	root := t.TempDir()
	sub := filepath.Join(root, "post")
	require.NoError(t, os.Mkdir(sub, 0o755))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	changed := make(chan string, 16)
	w := New(root, ".hlsl")
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(_ context.Context, path string) error {
			changed <- path
			return nil
		})
	}()

	// --- Act ---
	// The watch registers asynchronously; keep touching the file until the
	// first change is observed.
	target := filepath.Join(sub, "bloom.hlsl")
	var got string
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()
loop:
	for {
		select {
		case got = <-changed:
			break loop
		case <-ticker.C:
			require.NoError(t, os.WriteFile(target, []byte("#pragma pixel PS\n"), 0o644))
		case <-ctx.Done():
			t.Fatal("timed out waiting for a change notification")
		}
	}

	// --- Assert ---
	require.Equal(t, target, got)
	cancel()
	require.NoError(t, <-done)
}

func TestWatcher_RunWaitsForQuietFile(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	root := t.TempDir()
	target := filepath.Join(root, "fog.hlsl")
	require.NoError(t, os.WriteFile(target, []byte("// empty\n"), 0o644))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	seen := make(chan string, 16)
	w := New(root, ".hlsl")
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(_ context.Context, path string) error {
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			seen <- string(data)
			return nil
		})
	}()

	// The watch registers asynchronously; touch the file until it reports.
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()
warmup:
	for {
		select {
		case <-seen:
			break warmup
		case <-ticker.C:
			require.NoError(t, os.WriteFile(target, []byte("// empty\n"), 0o644))
		case <-ctx.Done():
			t.Fatal("timed out waiting for the watch to start")
		}
	}
	ticker.Stop()
	time.Sleep(3 * w.Settle)
	for len(seen) > 0 {
		<-seen
	}

	// --- Act ---
	// Save the way editors do: truncate, write part, pause, write the rest.
	f, err := os.OpenFile(target, os.O_WRONLY|os.O_TRUNC, 0o644)
	require.NoError(t, err)
	_, err = f.WriteString("#pragma")
	require.NoError(t, err)
	time.Sleep(30 * time.Millisecond)
	_, err = f.WriteString(" vertex VSMain\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	// --- Assert ---
	select {
	case got := <-seen:
		require.Equal(t, "#pragma vertex VSMain\n", got)
	case <-ctx.Done():
		t.Fatal("timed out waiting for the rebuild")
	}

	select {
	case extra := <-seen:
		t.Fatalf("expected a single rebuild for one save, got another with %q", extra)
	case <-time.After(3 * w.Settle):
	}

	cancel()
	require.NoError(t, <-done)
}
