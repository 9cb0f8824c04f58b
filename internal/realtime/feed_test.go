package realtime

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"constructax/internal/models"
)

func TestFeedPublishReachesSubscriber(t *testing.T) {
	feed := NewFeed()
	projectID := uuid.New()

	ch, cancel := feed.Subscribe(projectID)
	defer cancel()

	snapshot := []models.MaterialLog{{ID: uuid.New(), Material: models.MaterialSand, Amount: 100}}
	feed.Publish(projectID, snapshot)

	select {
	case got := <-ch:
		assert.Equal(t, snapshot, got)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for snapshot")
	}
}

func TestFeedProjectIsolation(t *testing.T) {
	feed := NewFeed()
	mine := uuid.New()
	other := uuid.New()

	ch, cancel := feed.Subscribe(mine)
	defer cancel()

	feed.Publish(other, []models.MaterialLog{{ID: uuid.New()}})

	select {
	case <-ch:
		t.Fatal("received a snapshot for a different project")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestFeedLatestSnapshotWins(t *testing.T) {
	feed := NewFeed()
	projectID := uuid.New()

	ch, cancel := feed.Subscribe(projectID)
	defer cancel()

	stale := []models.MaterialLog{{Material: models.MaterialSand, Amount: 1}}
	fresh := []models.MaterialLog{{Material: models.MaterialSand, Amount: 2}}

	// Nobody is draining the channel, so the second publish must replace
	// the queued first one.
	feed.Publish(projectID, stale)
	feed.Publish(projectID, fresh)

	require.Len(t, ch, 1)
	assert.Equal(t, fresh, <-ch)
}

func TestFeedCancelRemovesSubscriber(t *testing.T) {
	feed := NewFeed()
	projectID := uuid.New()

	ch, cancel := feed.Subscribe(projectID)
	assert.Equal(t, 1, feed.SubscriberCount(projectID))

	cancel()
	assert.Equal(t, 0, feed.SubscriberCount(projectID))

	// Channel is closed after cancellation.
	_, open := <-ch
	assert.False(t, open)

	// Cancel is idempotent.
	assert.NotPanics(t, cancel)

	// Publishing after cancellation must not panic on the closed channel.
	assert.NotPanics(t, func() {
		feed.Publish(projectID, []models.MaterialLog{{ID: uuid.New()}})
	})
}

func TestFeedConcurrentPublishAndCancel(t *testing.T) {
	feed := NewFeed()
	projectID := uuid.New()

	var cancels []func()
	for i := 0; i < 32; i++ {
		_, cancel := feed.Subscribe(projectID)
		cancels = append(cancels, cancel)
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			feed.Publish(projectID, []models.MaterialLog{{Amount: float64(i)}})
		}
	}()
	go func() {
		defer wg.Done()
		for _, cancel := range cancels {
			cancel()
		}
	}()
	wg.Wait()

	assert.Equal(t, 0, feed.SubscriberCount(projectID))
}
