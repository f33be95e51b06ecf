// Package state holds client-side reactive stores that mirror server data.
// Each store publishes immutable snapshots to its subscribers and mutates
// its snapshot only after the API confirmed the change.
package state

import "sync"

// Observable holds a current value and notifies subscribers on every Set.
type Observable[T any] struct {
	mu     sync.Mutex
	value  T
	subs   map[int]func(T)
	nextID int
}

// NewObservable creates an Observable holding initial
func NewObservable[T any](initial T) *Observable[T] {
	return &Observable[T]{
		value: initial,
		subs:  make(map[int]func(T)),
	}
}

// Get returns the current snapshot
func (o *Observable[T]) Get() T {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.value
}

// Set replaces the snapshot and calls every subscriber with it
func (o *Observable[T]) Set(value T) {
	o.mu.Lock()
	o.value = value
	subs := o.snapshotSubs()
	o.mu.Unlock()

	for _, fn := range subs {
		fn(value)
	}
}

// Update replaces the snapshot with fn applied to the current one
func (o *Observable[T]) Update(fn func(T) T) {
	o.mu.Lock()
	o.value = fn(o.value)
	value := o.value
	subs := o.snapshotSubs()
	o.mu.Unlock()

	for _, sub := range subs {
		sub(value)
	}
}

// Subscribe registers fn and calls it once with the current snapshot.
// The returned func removes the subscription.
func (o *Observable[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	o.mu.Lock()
	id := o.nextID
	o.nextID++
	o.subs[id] = fn
	value := o.value
	o.mu.Unlock()

	fn(value)

	var once sync.Once
	return func() {
		once.Do(func() {
			o.mu.Lock()
			delete(o.subs, id)
			o.mu.Unlock()
		})
	}
}

// subscribers run in registration order
func (o *Observable[T]) snapshotSubs() []func(T) {
	subs := make([]func(T), 0, len(o.subs))
	for id := 0; id < o.nextID; id++ {
		if fn, ok := o.subs[id]; ok {
			subs = append(subs, fn)
		}
	}
	return subs
}
