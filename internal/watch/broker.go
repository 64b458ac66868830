// Package watch fans report summary events out to in-process subscribers.
package watch

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"shotdiff/internal/reportv1"
)

type Kind string

const (
	KindPut    Kind = "put"
	KindDelete Kind = "delete"
)

// Event announces a stored or deleted report. Summary is nil for deletes.
type Event struct {
	Kind     Kind                    `json:"kind"`
	ReportID string                  `json:"reportId"`
	Project  string                  `json:"project,omitempty"`
	Summary  *reportv1.ReportSummary `json:"summary,omitempty"`
	At       time.Time               `json:"at"`
}

var ErrClosed = errors.New("broker closed")

const defaultBuffer = 16

type subscription struct {
	project string
	ch      chan Event
}

// Broker delivers events without ever blocking the publisher. A subscriber
// whose buffer is full loses its oldest pending event.
type Broker struct {
	buffer int

	mu     sync.RWMutex
	subs   map[*subscription]struct{}
	closed bool
	done   chan struct{}
	wg     sync.WaitGroup

	dropped atomic.Uint64
}

func NewBroker(buffer int) *Broker {
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	return &Broker{
		buffer: buffer,
		subs:   make(map[*subscription]struct{}),
		done:   make(chan struct{}),
	}
}

// Subscribe returns a channel of events for project, or for every project
// when project is empty. The channel is closed when ctx ends or the broker
// is closed.
func (b *Broker) Subscribe(ctx context.Context, project string) (<-chan Event, error) {
	sub := &subscription{
		project: strings.TrimSpace(project),
		ch:      make(chan Event, b.buffer),
	}
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil, ErrClosed
	}
	b.subs[sub] = struct{}{}
	b.wg.Add(1)
	b.mu.Unlock()

	go func() {
		defer b.wg.Done()
		select {
		case <-ctx.Done():
		case <-b.done:
		}
		b.mu.Lock()
		delete(b.subs, sub)
		close(sub.ch)
		b.mu.Unlock()
	}()
	return sub.ch, nil
}

func (b *Broker) Publish(ev Event) {
	if ev.At.IsZero() {
		ev.At = time.Now()
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	for sub := range b.subs {
		if sub.project != "" && sub.project != ev.Project {
			continue
		}
		if !push(sub.ch, ev) {
			b.dropped.Add(1)
		}
	}
}

// push reports false when an event had to be dropped to make room.
func push(out chan Event, ev Event) bool {
	select {
	case out <- ev:
		return true
	default:
	}
	select {
	case <-out:
	default:
	}
	select {
	case out <- ev:
	default:
	}
	return false
}

// Dropped counts events discarded for slow subscribers.
func (b *Broker) Dropped() uint64 {
	return b.dropped.Load()
}

func (b *Broker) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Close ends every subscription and waits for their channels to close.
func (b *Broker) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	close(b.done)
	b.mu.Unlock()
	b.wg.Wait()
}
