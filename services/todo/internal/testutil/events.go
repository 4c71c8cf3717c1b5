package testutil

import (
	"context"
	"errors"
	"sync"
)

type PublishedEvent struct {
	Topic string
	Key   string
	Event any
}

// RecordingPublisher keeps every published event in memory. Set Fail to make PublishEvent return an error.
type RecordingPublisher struct {
	mu     sync.Mutex
	events []PublishedEvent
	Fail   bool
}

func (p *RecordingPublisher) PublishEvent(_ context.Context, topic, key string, event any) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.Fail {
		return errors.New("broker unavailable")
	}
	p.events = append(p.events, PublishedEvent{Topic: topic, Key: key, Event: event})
	return nil
}

func (p *RecordingPublisher) Close() error { return nil }

func (p *RecordingPublisher) Events() []PublishedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]PublishedEvent, len(p.events))
	copy(out, p.events)
	return out
}
