package service

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"shiksha/internal/domain"
	"shiksha/internal/port"
)

// Autosaver persists topic edits after a quiet period. Each edit reschedules
// the topic's timer, so a burst of keystrokes produces one write. At most one
// save is pending per topic; a newer edit replaces the pending snapshot.
type Autosaver struct {
	topicRepo port.TopicRepository
	debounce  time.Duration

	mu      sync.Mutex
	pending map[uuid.UUID]*pendingSave
	closed  bool
}

type pendingSave struct {
	timer *time.Timer
	topic domain.Topic // latest snapshot, saved when the timer fires
}

// NewAutosaver creates an Autosaver. A zero debounce falls back to 2s.
func NewAutosaver(topicRepo port.TopicRepository, debounce time.Duration) *Autosaver {
	if debounce <= 0 {
		debounce = 2 * time.Second
	}
	return &Autosaver{
		topicRepo: topicRepo,
		debounce:  debounce,
		pending:   make(map[uuid.UUID]*pendingSave),
	}
}

// Schedule records the topic's latest state and (re)starts its debounce
// timer. The snapshot is copied, so the caller may keep mutating its value.
func (a *Autosaver) Schedule(topic domain.Topic) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return
	}

	if p, ok := a.pending[topic.ID]; ok {
		p.topic = topic
		p.timer.Reset(a.debounce)
		return
	}

	p := &pendingSave{topic: topic}
	topicID := topic.ID
	p.timer = time.AfterFunc(a.debounce, func() { a.fire(topicID) })
	a.pending[topicID] = p
}

// Cancel drops any pending save for the topic without persisting it.
func (a *Autosaver) Cancel(topicID uuid.UUID) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if p, ok := a.pending[topicID]; ok {
		p.timer.Stop()
		delete(a.pending, topicID)
	}
}

// Flush immediately persists every pending save. Used on shutdown so a timer
// that has not fired yet does not lose the last edit.
func (a *Autosaver) Flush(ctx context.Context) {
	a.mu.Lock()
	topics := make([]domain.Topic, 0, len(a.pending))
	for id, p := range a.pending {
		p.timer.Stop()
		topics = append(topics, p.topic)
		delete(a.pending, id)
	}
	a.mu.Unlock()

	for i := range topics {
		if err := a.topicRepo.Update(ctx, &topics[i]); err != nil {
			log.Printf("Autosaver.Flush: saving topic %s: %v", topics[i].ID, err)
		}
	}
}

// Close flushes pending saves and rejects further scheduling.
func (a *Autosaver) Close(ctx context.Context) {
	a.mu.Lock()
	a.closed = true
	a.mu.Unlock()
	a.Flush(ctx)
}

func (a *Autosaver) fire(topicID uuid.UUID) {
	a.mu.Lock()
	p, ok := a.pending[topicID]
	if !ok {
		a.mu.Unlock()
		return
	}
	topic := p.topic
	delete(a.pending, topicID)
	a.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.topicRepo.Update(ctx, &topic); err != nil {
		log.Printf("Autosaver: saving topic %s: %v", topicID, err)
	}
}

// Pending reports how many topics currently have an unsaved edit.
func (a *Autosaver) Pending() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.pending)
}
