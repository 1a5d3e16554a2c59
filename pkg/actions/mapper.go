// Package actions wires gesture topics to application-defined action
// topics. A mapping rule is just a bus subscription that re-publishes the
// triggering payload under a new name, optionally filtered by handedness or
// an arbitrary predicate.
package actions

import (
	"strings"

	"github.com/Harpita-P/Kiro-InteractionKit/pkg/events"
)

// Predicate filters a mapping rule by payload. It must be pure: rules may
// run on every frame.
type Predicate func(data events.Payload) bool

type mapRule struct {
	hand      string
	predicate Predicate
}

// MapOption configures one mapping rule.
type MapOption func(*mapRule)

// WithHand restricts the rule to events whose payload carries a matching
// "hand" value. The comparison is case-insensitive; events without a hand
// value never match.
func WithHand(hand string) MapOption {
	return func(r *mapRule) { r.hand = hand }
}

// WithPredicate adds a payload filter, checked after any hand filter.
func WithPredicate(p Predicate) MapOption {
	return func(r *mapRule) { r.predicate = p }
}

// Mapper compiles mapping rules into bus subscriptions.
type Mapper struct {
	bus *events.Bus
}

// NewMapper creates a mapper registering rules on bus.
func NewMapper(bus *events.Bus) *Mapper {
	return &Mapper{bus: bus}
}

// MapAction registers a rule re-publishing gestureEvent as action. The
// payload is forwarded as-is, so action subscribers see the full gesture
// state. The returned subscription removes the rule when passed to the
// bus's Unsubscribe.
func (m *Mapper) MapAction(action, gestureEvent string, opts ...MapOption) *events.Subscription {
	rule := &mapRule{}
	for _, opt := range opts {
		opt(rule)
	}

	return m.bus.Subscribe(gestureEvent, func(data events.Payload) {
		if rule.hand != "" {
			eventHand, _ := data["hand"].(string)
			if eventHand == "" || !strings.EqualFold(eventHand, rule.hand) {
				return
			}
		}
		if rule.predicate != nil && !rule.predicate(data) {
			return
		}
		m.bus.Publish(action, data)
	})
}
