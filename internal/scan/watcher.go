package scan

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/telbill/invoice-pipeline/constants"
)

type WatchConfig struct {
	Root        string
	InitialScan bool          // walk the root and emit existing files first
	Debounce    time.Duration // coalesce rapid update/rename bursts
}

// StartWatcher watches the invoice tree recursively and emits the path of
// every new or rewritten invoice file. New subdirectories (a fresh month
// directory, say) are picked up automatically.
func StartWatcher(ctx context.Context, cfg WatchConfig) (<-chan string, <-chan error, error) {
	if cfg.Root == "" {
		return nil, nil, errors.New("no root provided")
	}
	evCh := make(chan string, 256)
	errCh := make(chan error, 1)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		slog.Error("failed to create fsnotify watcher", "error", err)
		return nil, nil, err
	}

	err = filepath.WalkDir(cfg.Root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return w.Add(path)
		}
		if cfg.InitialScan && allowedFile(path) {
			select {
			case evCh <- path:
			default:
			}
		}
		return nil
	})
	if err != nil {
		slog.Error("failed to add watch root", "root", cfg.Root, "error", err)
		_ = w.Close()
		return nil, nil, err
	}

	go func() {
		defer close(evCh)
		defer close(errCh)
		defer func() { _ = w.Close() }()

		// pending and the timer are only touched from this goroutine;
		// the flush fires through the timer channel in the select below.
		var timer *time.Timer
		var flush <-chan time.Time
		pending := map[string]struct{}{}

		sendPending := func() {
			for p := range pending {
				select {
				case evCh <- p:
				default:
				}
				delete(pending, p)
			}
		}

		for {
			select {
			case <-ctx.Done():
				return
			case e := <-w.Events:
				if e.Op&fsnotify.Create == fsnotify.Create {
					// A new directory needs its own watch; for files the
					// add fails and is ignored.
					tryAddDir(w, e.Name)
				}
				if allowedFile(e.Name) && (e.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename)) != 0 {
					pending[e.Name] = struct{}{}
					if cfg.Debounce > 0 {
						if timer != nil {
							timer.Stop()
						}
						timer = time.NewTimer(cfg.Debounce)
						flush = timer.C
					} else {
						sendPending()
					}
				}
			case <-flush:
				flush = nil
				sendPending()
			case err := <-w.Errors:
				slog.Error("watcher error", "error", err)
				select {
				case errCh <- err:
				default:
				}
			}
		}
	}()

	return evCh, errCh, nil
}

func allowedFile(path string) bool {
	_, ok := constants.AllowedExtensions[constants.NormalizeExt(filepath.Ext(path))]
	return ok
}

func tryAddDir(w *fsnotify.Watcher, path string) {
	_ = w.Add(path)
}
