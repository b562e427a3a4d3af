package content

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/folio/internal/db"
)

func TestWatcherDebouncesChanges(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "blog"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	var calls atomic.Int32
	fired := make(chan struct{}, 4)
	w := NewWatcher(root, 50*time.Millisecond, func(context.Context) {
		calls.Add(1)
		fired <- struct{}{}
	}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// 等待监听建立
	time.Sleep(100 * time.Millisecond)
	for i := 0; i < 3; i++ {
		path := filepath.Join(root, "blog", "post.md")
		if err := os.WriteFile(path, []byte("---\ntitle: x\n---\n"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	select {
	case <-fired:
	case <-time.After(5 * time.Second):
		t.Fatalf("watcher did not fire")
	}
	time.Sleep(150 * time.Millisecond)
	if got := calls.Load(); got != 1 {
		t.Fatalf("expected a single debounced call, got %d", got)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("watcher did not stop")
	}
}

func TestReimportOnChangeImportsContent(t *testing.T) {
	root := t.TempDir()
	writeContentFile(t, root, "blog/hello.md", "---\ntitle: Hello\ndate: 2024-01-02\n---\nbody")

	store := NewStore(setupStoreTestDB(t), nil, nil)
	loader := NewLoader(store, "", false, nil)
	ReimportOnChange(loader, root, loader.logger)(context.Background())

	entry, err := store.GetEntry(context.Background(), db.CollectionBlog, "hello")
	if err != nil || entry == nil || entry.Title != "Hello" {
		t.Fatalf("expected imported entry, got %#v (%v)", entry, err)
	}
}

func TestWatcherMissingRoot(t *testing.T) {
	w := NewWatcher(filepath.Join(t.TempDir(), "missing"), 0, func(context.Context) {}, nil)
	if err := w.Run(context.Background()); err == nil {
		t.Fatalf("expected error for missing root")
	}
}

func TestWatcherRunWaitsForInFlightCallback(t *testing.T) {
	root := t.TempDir()

	started := make(chan struct{})
	release := make(chan struct{})
	var (
		finished atomic.Bool
		once     sync.Once
	)
	w := NewWatcher(root, 10*time.Millisecond, func(context.Context) {
		once.Do(func() { close(started) })
		<-release
		finished.Store(true)
	}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(filepath.Join(root, "post.md"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	select {
	case <-started:
	case <-time.After(5 * time.Second):
		t.Fatalf("watcher did not fire")
	}

	cancel()
	select {
	case <-done:
		t.Fatalf("Run returned while the callback was still running")
	case <-time.After(100 * time.Millisecond):
	}

	close(release)
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("watcher did not stop")
	}
	if !finished.Load() {
		t.Fatalf("expected callback to complete before Run returned")
	}
}
