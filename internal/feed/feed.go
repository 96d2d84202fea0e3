// Package feed implements the change feed: the real-time propagation
// mechanism that keeps every connected observer's view of the order set
// consistent without polling.
//
// The Feed is an explicit service object constructed once per process. It
// owns its subscriber table and has a clear Start/Stop lifecycle; there is no
// package-level state. Command handlers publish every aggregate committed by
// a unit of work; a single dispatch goroutine fans each event out to all
// subscriptions, which keeps deltas to the same order in publication order.
//
// A subscription starts from a consistent point-in-time snapshot of the
// matching orders and then receives added/modified/removed deltas. No
// delivery guarantee spans a disconnect: a subscriber that falls behind is
// dropped with ErrSubscriptionLost and must resubscribe for a fresh snapshot.
package feed

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"gasline/internal/core/domain/model/order"
)

// ErrSubscriptionLost reports a dropped subscription: the delta channel is
// closed and the subscriber must resubscribe to obtain a fresh snapshot.
// State is never corrupted by a lost subscription.
var ErrSubscriptionLost = errors.New("subscription lost, resubscribe for a fresh snapshot")

// ErrFeedStopped is returned by Subscribe after Stop.
var ErrFeedStopped = errors.New("feed is stopped")

// DeltaKind classifies a change relative to a subscription's predicate.
type DeltaKind int

const (
	// Added reports an order newly matching the predicate.
	Added DeltaKind = iota + 1

	// Modified reports a mutation of an order already matching.
	Modified

	// Removed reports an order that stopped matching the predicate.
	Removed
)

// String returns the wire form used by the SSE transport.
func (k DeltaKind) String() string {
	switch k {
	case Added:
		return "added"
	case Modified:
		return "modified"
	case Removed:
		return "removed"
	default:
		return "unknown"
	}
}

// Delta is one change event delivered to a subscription.
type Delta struct {
	Kind  DeltaKind
	Order *order.Order
}

// SnapshotLoader materializes the current order set, newest first.
// The feed calls it under its subscription lock so that the snapshot and the
// subsequent delta stream do not miss a committed change.
type SnapshotLoader func(ctx context.Context) ([]*order.Order, error)

// subscriberBuffer is the per-subscription delta backlog. A subscriber that
// falls further behind is dropped rather than blocking the dispatch loop.
const subscriberBuffer = 64

// Feed is the change-feed service object.
type Feed struct {
	loader SnapshotLoader
	logger *slog.Logger

	events chan *order.Order
	done   chan struct{}

	mu      sync.Mutex
	subs    map[uint64]*Subscription
	nextID  uint64
	stopped bool
}

// New creates a Feed that snapshots through loader. Call Start before
// publishing.
func New(loader SnapshotLoader, logger *slog.Logger) *Feed {
	return &Feed{
		loader: loader,
		logger: logger.With("component", "change_feed"),
		events: make(chan *order.Order, 256),
		done:   make(chan struct{}),
		subs:   make(map[uint64]*Subscription),
	}
}

// Start launches the dispatch loop.
func (f *Feed) Start() {
	go f.dispatchLoop()
	f.logger.InfoContext(context.Background(), "Change feed started")
}

// Stop terminates the dispatch loop and drops every subscription.
// All subscriber channels are closed; further Subscribe calls fail with
// ErrFeedStopped.
func (f *Feed) Stop() {
	f.mu.Lock()
	if f.stopped {
		f.mu.Unlock()
		return
	}
	f.stopped = true
	for id, sub := range f.subs {
		close(sub.deltas)
		delete(f.subs, id)
	}
	f.mu.Unlock()

	close(f.done)
	f.logger.InfoContext(context.Background(), "Change feed stopped")
}

// Publish enqueues a committed order mutation for fan-out.
// Safe to call from any goroutine; a stopped feed drops the event.
func (f *Feed) Publish(o *order.Order) {
	select {
	case f.events <- o:
	case <-f.done:
	}
}

// Subscribe registers a new subscription for the orders matching predicate.
// The returned subscription carries a consistent snapshot taken at
// registration time; deltas delivered afterwards may re-report snapshot
// content but never run behind it.
func (f *Feed) Subscribe(ctx context.Context, predicate Predicate) (*Subscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.stopped {
		return nil, ErrFeedStopped
	}

	all, err := f.loader(ctx)
	if err != nil {
		return nil, err
	}

	snapshot := make([]*order.Order, 0, len(all))
	matched := make(map[string]bool, len(all))
	for _, o := range all {
		if predicate(o) {
			snapshot = append(snapshot, o)
			matched[o.ID().String()] = true
		}
	}

	f.nextID++
	sub := &Subscription{
		id:        f.nextID,
		feed:      f,
		predicate: predicate,
		snapshot:  snapshot,
		matched:   matched,
		deltas:    make(chan Delta, subscriberBuffer),
	}
	f.subs[sub.id] = sub

	f.logger.InfoContext(ctx, "Subscriber registered",
		"subscription_id", sub.id, "snapshot_size", len(snapshot))
	return sub, nil
}

func (f *Feed) dispatchLoop() {
	for {
		select {
		case o := <-f.events:
			f.fanOut(o)
		case <-f.done:
			return
		}
	}
}

// fanOut delivers one order mutation to every subscription, classifying it
// against each predicate and the subscription's matched set.
func (f *Feed) fanOut(o *order.Order) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := o.ID().String()
	for subID, sub := range f.subs {
		matches := sub.predicate(o)
		was := sub.matched[id]

		var kind DeltaKind
		switch {
		case matches && !was:
			kind = Added
		case matches && was:
			kind = Modified
		case !matches && was:
			kind = Removed
		default:
			continue
		}

		select {
		case sub.deltas <- Delta{Kind: kind, Order: o}:
			if matches {
				sub.matched[id] = true
			} else {
				delete(sub.matched, id)
			}
		default:
			// Subscriber backlog full: drop it rather than stall the feed.
			sub.lost = true
			close(sub.deltas)
			delete(f.subs, subID)
			f.logger.Warn("Subscriber dropped for falling behind", "subscription_id", subID)
		}
	}
}

// unsubscribe releases all resources of a subscription synchronously.
func (f *Feed) unsubscribe(sub *Subscription) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.subs[sub.id]; !ok {
		return
	}
	close(sub.deltas)
	delete(f.subs, sub.id)
}

// Subscription is one registered observer of the order set.
type Subscription struct {
	id        uint64
	feed      *Feed
	predicate Predicate
	snapshot  []*order.Order

	// matched tracks the order ids currently inside the predicate; guarded
	// by the feed mutex.
	matched map[string]bool
	deltas  chan Delta
	lost    bool
}

// Snapshot returns the consistent point-in-time materialization taken at
// subscribe time, ordered as loaded (created_at descending).
func (s *Subscription) Snapshot() []*order.Order {
	return s.snapshot
}

// Deltas returns the stream of change events. The channel closes on
// Unsubscribe, feed Stop, or when the subscription is dropped; check Err
// afterwards to distinguish the latter.
func (s *Subscription) Deltas() <-chan Delta {
	return s.deltas
}

// Err returns ErrSubscriptionLost if the feed dropped this subscription, nil
// otherwise.
func (s *Subscription) Err() error {
	s.feed.mu.Lock()
	defer s.feed.mu.Unlock()
	if s.lost {
		return ErrSubscriptionLost
	}
	return nil
}

// Unsubscribe deregisters the subscription and releases its resources.
// Safe to call more than once.
func (s *Subscription) Unsubscribe() {
	s.feed.unsubscribe(s)
}
