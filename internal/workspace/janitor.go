package workspace

import (
	"time"

	"github.com/rs/zerolog"
)

// Janitor periodically evicts idle workspaces from a Registry
type Janitor struct {
	Registry *Registry
	IdleTTL  time.Duration
	Interval time.Duration

	log      zerolog.Logger
	done     chan bool
	stopChan chan bool
}

// NewJanitor creates a janitor for r
func NewJanitor(r *Registry, idleTTL, interval time.Duration, log zerolog.Logger) *Janitor {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &Janitor{
		Registry: r,
		IdleTTL:  idleTTL,
		Interval: interval,
		log:      log,
		done:     make(chan bool, 1),
		stopChan: make(chan bool, 1),
	}
}

// Start runs the sweep loop in a goroutine. The returned channel receives
// a value once the loop has stopped.
func (j *Janitor) Start() chan bool {
	go func() {
		ticker := time.NewTicker(j.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-j.stopChan:
				j.done <- true
				return
			case <-ticker.C:
				j.Sweep()
			}
		}
	}()

	return j.done
}

// Sweep evicts idle workspaces once
func (j *Janitor) Sweep() int {
	n := j.Registry.Evict(j.IdleTTL)
	if n > 0 {
		j.log.Info().Int("evicted", n).Int("live", j.Registry.Len()).Msg("evicted idle workspaces")
	}
	return n
}

// Stop stops the sweep loop
func (j *Janitor) Stop() {
	select {
	case j.stopChan <- true:
	default:
	}
}
