// Package engine owns the simulation state and the loop that advances it.
//
// Event System
//
// The simulation announces state transitions as Events rather than letting
// collaborators poll for them. Every event is produced on the simulation
// goroutine and handed synchronously to registered listeners, in registration
// order, before the call that caused it returns.
//
// Listeners run on the simulation goroutine and must not block. A listener
// that needs to hand work to another goroutine pushes into an EventQueue,
// which is a bounded ring that overwrites its oldest entry when full.
//
// Event Flow:
//  1. Dispatch / Tick / TrackProximity detect a transition
//  2. Simulation.emit stamps the frame number and calls each listener
//  3. The terminal host drains its EventQueue once per redraw
package engine

import (
	"sync"
	"time"
)

// EventType represents the type of simulation event
type EventType int

const (
	// EventOverlayOpened: a landmark overlay became active, ID carries the landmark
	EventOverlayOpened EventType = iota

	// EventOverlayClosed: the active overlay was dismissed, ID carries the landmark
	EventOverlayClosed

	// EventModeChanged: Exploration <-> Professional, Mode carries the new mode
	EventModeChanged

	// EventNearbyChanged: the nearest landmark in activation range changed
	// ID is the new landmark or "" when none, Previous the old one
	EventNearbyChanged

	// EventLevelUp: progression crossed a level boundary, Level carries the new level
	EventLevelUp
)

func (e EventType) String() string {
	switch e {
	case EventOverlayOpened:
		return "OverlayOpened"
	case EventOverlayClosed:
		return "OverlayClosed"
	case EventModeChanged:
		return "ModeChanged"
	case EventNearbyChanged:
		return "NearbyChanged"
	case EventLevelUp:
		return "LevelUp"
	default:
		return "Unknown"
	}
}

// Event is one simulation transition
type Event struct {
	Type     EventType
	ID       string
	Previous string
	Mode     Mode
	Level    int
	Frame    uint64    // frame counter when emitted
	Time     time.Time // real time when emitted
}

// Listener receives events on the simulation goroutine
type Listener func(Event)

const eventQueueSize = 256

// EventQueue hands events from the simulation goroutine to a single consumer
type EventQueue struct {
	mu     sync.Mutex
	events [eventQueueSize]Event
	head   uint64 // next read
	tail   uint64 // next write
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event, dropping the oldest when the ring is full
func (eq *EventQueue) Push(ev Event) {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	eq.events[eq.tail%eventQueueSize] = ev
	eq.tail++
	if eq.tail-eq.head > eventQueueSize {
		eq.head = eq.tail - eventQueueSize
	}
}

// Listener adapts the queue for Simulation.Subscribe
func (eq *EventQueue) Listener() Listener {
	return eq.Push
}

// Consume removes and returns all pending events in order
func (eq *EventQueue) Consume() []Event {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	n := eq.tail - eq.head
	if n == 0 {
		return nil
	}
	out := make([]Event, 0, n)
	for i := eq.head; i < eq.tail; i++ {
		out = append(out, eq.events[i%eventQueueSize])
	}
	eq.head = eq.tail
	return out
}

// Len returns the number of pending events
func (eq *EventQueue) Len() int {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return int(eq.tail - eq.head)
}
