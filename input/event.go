package input

import (
	"fmt"
	"slices"
)

// EventKind identifies an action notification.
type EventKind uint8

const (
	EventStarted EventKind = iota + 1
	EventContinuing
	EventFinished
	EventActive
)

func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "Started"
	case EventContinuing:
		return "Continuing"
	case EventFinished:
		return "Finished"
	case EventActive:
		return "Active"
	default:
		return fmt.Sprintf("EventKind(%d)", uint8(k))
	}
}

// eventForPhase maps an edge phase to its notification kind.
func eventForPhase(p Phase) (EventKind, bool) {
	switch p {
	case PhaseStarted:
		return EventStarted, true
	case PhaseContinuing:
		return EventContinuing, true
	case PhaseFinished:
		return EventFinished, true
	default:
		return 0, false
	}
}

// Event is one action notification. Finished carries the value the action
// held before it dropped to zero.
type Event struct {
	Kind   EventKind
	Action string
	Value  float32
}

func (e Event) String() string {
	return fmt.Sprintf("%s(%q, %g)", e.Kind, e.Action, e.Value)
}

// Publisher receives the notifications produced by a frame.
type Publisher interface {
	Publish(evt Event)
}

type PublisherFunc func(evt Event)

func (f PublisherFunc) Publish(evt Event) {
	f(evt)
}

// Fanout returns a Publisher that forwards to each non-nil publisher in order.
func Fanout(pubs ...Publisher) Publisher {
	out := make(fanout, 0, len(pubs))
	for _, p := range pubs {
		if p != nil {
			out = append(out, p)
		}
	}
	return out
}

type fanout []Publisher

func (f fanout) Publish(evt Event) {
	for _, p := range f {
		p.Publish(evt)
	}
}

// Queue is a simple FIFO of events.
type Queue struct {
	items []Event
}

// Publish appends an event.
func (q *Queue) Publish(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Events returns the queued events without removing them.
func (q *Queue) Events() []Event {
	if q == nil {
		return nil
	}
	return q.items
}

// Drain returns all events and clears the queue.
func (q *Queue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Reset drops queued events, keeping capacity.
func (q *Queue) Reset() {
	if q == nil {
		return
	}
	q.items = q.items[:0]
}

func (q *Queue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Bus dispatches events to subscribed handlers synchronously, in
// subscription order.
type Bus struct {
	subs []*Subscription
}

// Subscription is a handle returned by Bus.On.
type Subscription struct {
	bus    *Bus
	kind   EventKind
	action string
	fn     func(Event)
}

// On subscribes fn to events of kind for action. An empty action matches
// every action.
func (b *Bus) On(kind EventKind, action string, fn func(Event)) *Subscription {
	if b == nil || fn == nil {
		return nil
	}
	sub := &Subscription{bus: b, kind: kind, action: action, fn: fn}
	b.subs = append(b.subs, sub)
	return sub
}

// Cancel removes the subscription. It is safe to call from inside a handler.
func (s *Subscription) Cancel() {
	if s == nil || s.bus == nil {
		return
	}
	s.fn = nil
	s.bus.subs = slices.DeleteFunc(s.bus.subs, func(o *Subscription) bool { return o == s })
	s.bus = nil
}

func (b *Bus) Publish(evt Event) {
	if b == nil || len(b.subs) == 0 {
		return
	}
	for _, sub := range slices.Clone(b.subs) {
		if sub.fn == nil || sub.kind != evt.Kind {
			continue
		}
		if sub.action != "" && sub.action != evt.Action {
			continue
		}
		sub.fn(evt)
	}
}

// Len reports the number of live subscriptions.
func (b *Bus) Len() int {
	if b == nil {
		return 0
	}
	return len(b.subs)
}
