package matches

import (
	"context"
	"log"
	"sync"
	"time"

	apifootball "github.com/nabdalmalaeb/score-sync/repos/apifootball"
)

// liveRefresher re-polls the football API on a fixed interval for fixtures
// that can still change, limited to dates clients requested recently. A tick
// is skipped when the previous one is still in flight so slow upstream
// responses never stack requests.
type liveRefresher struct {
	cache          *dateCache
	apiFootball    *apifootball.Service
	interval       time.Duration
	activityWindow time.Duration

	tickMu sync.Mutex
	cancel context.CancelFunc
}

func newLiveRefresher(cache *dateCache, apiFootball *apifootball.Service, interval, activityWindow time.Duration) *liveRefresher {
	return &liveRefresher{
		cache:          cache,
		apiFootball:    apiFootball,
		interval:       interval,
		activityWindow: activityWindow,
	}
}

// Start launches the polling loop. Stop tears it down and aborts the
// in-flight request, if any.
func (r *liveRefresher) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel

	go func() {
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				r.tick(ctx)
			}
		}
	}()
}

func (r *liveRefresher) Stop() {
	if r.cancel != nil {
		r.cancel()
	}
}

func (r *liveRefresher) tick(ctx context.Context) {
	if !r.tickMu.TryLock() {
		// Previous tick still running; skip rather than overlap.
		return
	}
	defer r.tickMu.Unlock()

	for _, dateKey := range r.cache.ActiveDates(r.activityWindow) {
		r.refreshDate(ctx, dateKey)
	}
}

func (r *liveRefresher) refreshDate(ctx context.Context, dateKey string) {
	fixtures, ok := r.cache.Peek(dateKey)
	if !ok {
		return
	}

	var liveIDs []int
	for _, fixture := range fixtures {
		if !apifootball.IsSettled(fixture.Fixture.Status.Short) {
			liveIDs = append(liveIDs, fixture.Fixture.ID)
		}
	}
	if len(liveIDs) == 0 {
		return
	}

	updated, err := r.apiFootball.FixturesByIDs(ctx, liveIDs)
	if err != nil {
		log.Printf("Live refresh for %s failed: %v\n", dateKey, err)
		return
	}
	r.cache.Merge(dateKey, updated)
}
