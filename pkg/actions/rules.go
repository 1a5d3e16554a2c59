package actions

import (
	"fmt"

	"github.com/Harpita-P/Kiro-InteractionKit/pkg/events"
)

// Rule is the declarative form of one mapping, as it appears in a config
// file. Hand is optional; Action and Event are not.
type Rule struct {
	Action string `koanf:"action" json:"action"`
	Event  string `koanf:"event" json:"event"`
	Hand   string `koanf:"hand" json:"hand,omitempty"`
}

// Validate checks that the rule names both topics.
func (r Rule) Validate() error {
	if r.Action == "" {
		return fmt.Errorf("action cannot be empty")
	}
	if r.Event == "" {
		return fmt.Errorf("event cannot be empty")
	}
	return nil
}

// Apply validates every rule and then registers them all, returning the
// subscriptions in rule order. On a validation error nothing is registered.
func (m *Mapper) Apply(rules []Rule) ([]*events.Subscription, error) {
	for i, rule := range rules {
		if err := rule.Validate(); err != nil {
			return nil, fmt.Errorf("mapping rule %d: %w", i, err)
		}
	}

	subs := make([]*events.Subscription, 0, len(rules))
	for _, rule := range rules {
		var opts []MapOption
		if rule.Hand != "" {
			opts = append(opts, WithHand(rule.Hand))
		}
		subs = append(subs, m.MapAction(rule.Action, rule.Event, opts...))
	}
	return subs, nil
}
