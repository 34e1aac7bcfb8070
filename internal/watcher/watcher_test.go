package watcher

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shadmazumder/jsonscrub/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewLogger(&logging.LoggerConfig{
		Level:  logging.LevelError,
		Output: io.Discard,
	})
}

func TestWatchFiresOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	fired := make(chan struct{}, 1)
	w := New(path, 50*time.Millisecond, testLogger())

	done := make(chan error, 1)
	go func() {
		done <- w.Watch(ctx, func(context.Context) error {
			select {
			case fired <- struct{}{}:
			default:
			}
			return nil
		})
	}()

	// Give the watcher a moment to register before writing.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte(`{"changed": true}`), 0o644))

	select {
	case <-fired:
	case <-ctx.Done():
		t.Fatal("handler never fired after file write")
	}

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestWatchIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.json")
	other := filepath.Join(dir, "other.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fired := make(chan struct{}, 1)
	w := New(path, 20*time.Millisecond, testLogger())

	done := make(chan error, 1)
	go func() {
		done <- w.Watch(ctx, func(context.Context) error {
			fired <- struct{}{}
			return nil
		})
	}()

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(other, []byte(`{}`), 0o644))

	select {
	case <-fired:
		t.Fatal("handler fired for an unrelated file")
	case <-time.After(300 * time.Millisecond):
	}

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestDebounceCollapsesBursts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runs := make(chan struct{}, 16)
	w := New(path, 200*time.Millisecond, testLogger())

	done := make(chan error, 1)
	go func() {
		done <- w.Watch(ctx, func(context.Context) error {
			runs <- struct{}{}
			return nil
		})
	}()

	time.Sleep(100 * time.Millisecond)
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte(`{"i": 1}`), 0o644))
		time.Sleep(20 * time.Millisecond)
	}

	// One debounced run for the whole burst.
	select {
	case <-runs:
	case <-time.After(2 * time.Second):
		t.Fatal("debounced handler never fired")
	}

	select {
	case <-runs:
		t.Fatal("burst produced more than one run")
	case <-time.After(400 * time.Millisecond):
	}

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestDefaultDebounce(t *testing.T) {
	w := New("x.json", 0, testLogger())
	assert.Equal(t, 300*time.Millisecond, w.debounce)
}
