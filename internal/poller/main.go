package poller

import (
	"log"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// SyncFunc runs one fetch-and-store cycle against the remote backend.
type SyncFunc func() error

// Poller drives the background refresh. A gocron job runs the sync on a
// fixed interval; RefreshNow serves the app's pull-to-refresh and is
// debounced against the automatic poll so at most one sync runs within the
// configured min gap.
type Poller struct {
	scheduler gocron.Scheduler
	sync      SyncFunc
	minGap    time.Duration

	mu      sync.Mutex
	lastRun time.Time

	now func() time.Time
}

func New(sync SyncFunc, interval time.Duration, minGap time.Duration) (*Poller, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	p := &Poller{
		scheduler: s,
		sync:      sync,
		minGap:    minGap,
		now:       time.Now,
	}

	_, err = s.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(p.run),
	)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// Start begins the poll loop and runs one sync immediately, since a
// duration job does not fire on startup.
func (p *Poller) Start() {
	p.scheduler.Start()
	p.run()
}

// Stop halts the poll loop. A stopped poller can be started again, which is
// how a foreground/background pause maps onto this service.
func (p *Poller) Stop() {
	if err := p.scheduler.StopJobs(); err != nil {
		log.Printf("WARN: Failed to stop poll jobs: %s\n", err)
	}
}

// Shutdown stops the poller for good.
func (p *Poller) Shutdown() {
	if err := p.scheduler.Shutdown(); err != nil {
		log.Printf("WARN: Failed to shut down scheduler: %s\n", err)
	}
}

// RefreshNow runs an out-of-band sync unless one completed within the min
// gap. Returns whether the sync actually ran. The mutex is held across the
// gap check and the sync itself, so a refresh that arrives while another
// sync is in flight waits for it and is then debounced against it; there is
// never more than one fetch in flight.
func (p *Poller) RefreshNow() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.now().Sub(p.lastRun) < p.minGap {
		return false
	}

	p.runLocked()
	return true
}

func (p *Poller) run() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.runLocked()
}

func (p *Poller) runLocked() {
	if err := p.sync(); err != nil {
		log.Println(err)
		return
	}

	p.lastRun = p.now()
}
