package artstub

import (
	"context"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/k1LoW/errors"
)

// Editors save in bursts; wait for them to settle before regenerating.
const watchDebounce = 500 * time.Millisecond

// Watch runs fn once for every settled change of path until ctx is
// canceled. fn errors stop the watch.
func Watch(ctx context.Context, path string, fn func(context.Context) error) (err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	if err := w.Add(path); err != nil {
		return err
	}
	timer := time.NewTimer(watchDebounce)
	if !timer.Stop() {
		<-timer.C
	}
	pending := false
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) && !ev.Op.Has(fsnotify.Rename) {
				continue
			}
			// Editors often replace the file, which drops the watch
			_ = w.Add(path)
			timer.Reset(watchDebounce)
			pending = true
		case werr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return werr
		case <-timer.C:
			if !pending {
				continue
			}
			pending = false
			if err := fn(ctx); err != nil {
				return err
			}
		}
	}
}
