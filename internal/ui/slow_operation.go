package ui

import (
	"context"
	"sync"
	"time"
)

// Shows a "loading" state for operations which take noticeable time.
// Nothing changes in UI if the operation finishes before showAfter
// period; once shown, the loading state stays for at least minShown
// to avoid widgets "blinking".
//
// Begin() and End() are expected to be called in pairs, not recursively.
type slowOperation struct {
	showAfter time.Duration
	minShown  time.Duration
	show      func()
	hide      func()

	locker  sync.Mutex
	timer   *time.Timer
	shown   bool
	shownAt time.Time
}

// show and hide are called from other goroutines: they should
// pass their work to UI goroutine themselves.
func newSlowOperation(showAfter, minShown time.Duration, show, hide func()) *slowOperation {
	return &slowOperation{
		showAfter: showAfter,
		minShown:  minShown,
		show:      show,
		hide:      hide,
	}
}

func (o *slowOperation) Begin() {
	o.locker.Lock()
	defer o.locker.Unlock()

	var timer *time.Timer

	timer = time.AfterFunc(
		o.showAfter,
		func() {
			o.locker.Lock()
			defer o.locker.Unlock()

			//End() has been called while this func was waiting for the lock.
			if o.timer != timer {
				return
			}

			o.show()

			o.shown = true
			o.shownAt = time.Now()
		},
	)

	o.timer = timer
}

// Blocks until the loading state was shown for minShown period (or ctx is done).
func (o *slowOperation) End(ctx context.Context) {
	o.locker.Lock()

	if o.timer != nil {
		o.timer.Stop()
		o.timer = nil
	}

	shown, shownAt := o.shown, o.shownAt

	o.shown = false

	o.locker.Unlock()

	if !shown {
		return
	}

	wait := o.minShown - time.Since(shownAt)

	if wait > 0 {
		select {
		case <-ctx.Done():
		case <-time.After(wait):
		}
	}

	o.hide()
}
