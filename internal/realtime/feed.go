package realtime

import (
	"sync"

	"github.com/google/uuid"

	"constructax/internal/models"
)

// Feed fans material-log snapshots out to per-project subscribers.
//
// Every publish carries the FULL current result set, never a diff, so
// consumers replace their copy wholesale. Channels are buffered with a
// single slot and the latest snapshot wins: a slow consumer never blocks
// a writer, it just skips intermediate states.
type Feed struct {
	mu   sync.RWMutex
	subs map[uuid.UUID]map[chan []models.MaterialLog]struct{}
}

func NewFeed() *Feed {
	return &Feed{
		subs: make(map[uuid.UUID]map[chan []models.MaterialLog]struct{}),
	}
}

// Subscribe registers a listener for one project's material logs. The
// returned cancel func must be called on teardown; it is safe to call
// more than once.
func (f *Feed) Subscribe(projectID uuid.UUID) (<-chan []models.MaterialLog, func()) {
	ch := make(chan []models.MaterialLog, 1)

	f.mu.Lock()
	if f.subs[projectID] == nil {
		f.subs[projectID] = make(map[chan []models.MaterialLog]struct{})
	}
	f.subs[projectID][ch] = struct{}{}
	f.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			f.mu.Lock()
			delete(f.subs[projectID], ch)
			if len(f.subs[projectID]) == 0 {
				delete(f.subs, projectID)
			}
			f.mu.Unlock()
			close(ch)
		})
	}

	return ch, cancel
}

// Publish delivers the snapshot to every subscriber of the project.
func (f *Feed) Publish(projectID uuid.UUID, logs []models.MaterialLog) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	for ch := range f.subs[projectID] {
		select {
		case ch <- logs:
		default:
			// Stale snapshot still queued; replace it.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- logs:
			default:
			}
		}
	}
}

// SubscriberCount reports how many listeners a project currently has.
func (f *Feed) SubscriberCount(projectID uuid.UUID) int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.subs[projectID])
}
