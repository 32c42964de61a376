package app

import (
	"context"
	"os"

	"go.trai.ch/base47/internal/adapters/watcher" //nolint:depguard // Watch mode debounces raw file events
	"go.trai.ch/base47/internal/core/domain"
	"go.trai.ch/zerr"
)

// Watch refreshes the caches whenever a set folder, template, theme.json or
// manifest.json changes below the themes root. It blocks until ctx is done.
// notify, when set, receives the changed paths after each refresh.
func (a *App) Watch(ctx context.Context, notify func(paths []string)) error {
	if a.watchers == nil {
		return domain.ErrWatcherStartFailed
	}

	root := a.discovery.Root()
	if err := os.MkdirAll(root, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWatcherStartFailed.Error()), "path", root)
	}

	w, err := a.watchers()
	if err != nil {
		return err
	}
	if err := w.Start(ctx, root); err != nil {
		_ = w.Stop()
		return err
	}
	defer func() { _ = w.Stop() }()

	refreshCtx := context.WithoutCancel(ctx)
	debouncer := watcher.NewDebouncer(watcher.DefaultDebounceWindow, func(paths []string) {
		if err := a.Refresh(refreshCtx); err != nil {
			a.logger.Error(err)
			return
		}
		if notify != nil {
			notify(paths)
		}
	})

	a.logger.Info("watching " + root)
	for event := range w.Events() {
		if watcher.AffectsDiscovery(root, event.Path) {
			debouncer.Add(event.Path)
		}
	}
	debouncer.Flush()
	return nil
}
