package app

import (
	"time"

	"github.com/lulu73211/ia-quizz-arena/internal/domain"
)

const defaultTimePerQuestion = 30

// countdown is the handle for one running question timer. A room holds at
// most one; cancelling closes stop so the tick goroutine exits without
// firing the reveal.
type countdown struct {
	stop chan struct{}
}

// startCountdownLocked arms a fresh countdown for the current question,
// replacing any previous one.
func (r *Room) startCountdownLocked() {
	r.cancelCountdownLocked()
	r.secondsRemaining = r.timePerQuestion
	c := &countdown{stop: make(chan struct{})}
	r.timer = c
	go r.runCountdown(c)
}

// cancelCountdownLocked stops the active countdown. Safe to call when none
// is running.
func (r *Room) cancelCountdownLocked() {
	if r.timer != nil {
		close(r.timer.stop)
		r.timer = nil
	}
}

func (r *Room) runCountdown(c *countdown) {
	ticker := r.clock.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-c.stop:
			return
		case <-ticker.Chan():
			if r.tick(c) {
				return
			}
		}
	}
}

// tick applies one countdown step under the room lock. It reports whether
// the goroutine should exit, either because this countdown was superseded or
// because it expired and triggered the reveal.
func (r *Room) tick(c *countdown) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.timer != c {
		// Cancelled between the ticker firing and acquiring the lock; the
		// reveal (early or via next) already happened elsewhere.
		return true
	}
	r.secondsRemaining--
	r.bc.ToRoom(r.code, domain.EventTimerTick, domain.TimerTickPayload{Seconds: r.secondsRemaining})
	if r.secondsRemaining <= 0 {
		r.timer = nil
		r.revealLocked()
		return true
	}
	return false
}
