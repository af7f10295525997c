package event

import (
	"sync"

	"github.com/philipp01105/conlog/core"
)

// Listener receives the message and system tag of a notification. The
// system tag is "" when the log call had none.
type Listener func(message, system string)

// Subscription identifies one registered listener. The zero value
// identifies nothing.
type Subscription struct {
	level core.Level
	id    uint64
}

// Level returns the level the subscription listens on
func (s Subscription) Level() core.Level {
	return s.level
}

// Valid reports whether s refers to a registration (it may have been
// removed since)
func (s Subscription) Valid() bool {
	return s.id != 0
}

type registration struct {
	id uint64
	fn Listener
}

// Bus fans notifications out to the listeners of each level
type Bus struct {
	mu        sync.RWMutex
	nextID    uint64
	listeners [core.NumLevels][]registration
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers fn for level and returns its handle. A nil
// listener or an undefined level registers nothing and returns the zero
// Subscription.
func (b *Bus) Subscribe(level core.Level, fn Listener) Subscription {
	if fn == nil || !level.Valid() {
		return Subscription{}
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	b.listeners[level] = append(b.listeners[level], registration{id: b.nextID, fn: fn})
	return Subscription{level: level, id: b.nextID}
}

// SubscribeAll registers fn for every level. fn receives the level of
// each notification.
func (b *Bus) SubscribeAll(fn func(level core.Level, message, system string)) []Subscription {
	if fn == nil {
		return nil
	}
	subs := make([]Subscription, 0, core.NumLevels)
	for _, level := range core.AllLevels() {
		level := level
		subs = append(subs, b.Subscribe(level, func(message, system string) {
			fn(level, message, system)
		}))
	}
	return subs
}

// Unsubscribe removes the listener identified by s. It reports whether
// a listener was removed.
func (b *Bus) Unsubscribe(s Subscription) bool {
	if !s.Valid() || !s.level.Valid() {
		return false
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	regs := b.listeners[s.level]
	for i, r := range regs {
		if r.id != s.id {
			continue
		}
		// Copy so that a Publish iterating the old slice is unaffected
		next := make([]registration, 0, len(regs)-1)
		next = append(next, regs[:i]...)
		next = append(next, regs[i+1:]...)
		b.listeners[s.level] = next
		return true
	}
	return false
}

// Publish invokes the listeners of level in registration order
func (b *Bus) Publish(level core.Level, message, system string) {
	if !level.Valid() {
		return
	}
	b.mu.RLock()
	regs := b.listeners[level]
	b.mu.RUnlock()

	for _, r := range regs {
		r.fn(message, system)
	}
}

// Len returns the number of listeners registered for level
func (b *Bus) Len(level core.Level) int {
	if !level.Valid() {
		return 0
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.listeners[level])
}
