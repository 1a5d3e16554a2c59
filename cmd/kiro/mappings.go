package main

import (
	"github.com/Harpita-P/Kiro-InteractionKit/pkg/actions"
	"github.com/Harpita-P/Kiro-InteractionKit/pkg/events"
)

// cursorDemoRules drives a circle-cursor game: the circle grows while the
// hand is closed and turns green while the rock sign is held.
func cursorDemoRules() []actions.Rule {
	return []actions.Rule{
		{Action: "game.circle.grow.start", Event: events.StartTopic(events.GestureClosed)},
		{Action: "game.circle.grow.end", Event: events.EndTopic(events.GestureClosed)},
		{Action: "game.circle.color.green", Event: events.StartTopic(events.GestureRockSign)},
		{Action: "game.circle.color.red", Event: events.EndTopic(events.GestureRockSign)},
	}
}

// keyboardDemoRules fires a generic key-press action on each pinch; which
// key that presses is the consuming game's decision.
func keyboardDemoRules() []actions.Rule {
	return []actions.Rule{
		{Action: "game.key.type", Event: events.StartTopic(events.GesturePinch)},
	}
}
