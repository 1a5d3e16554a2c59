package events

import (
	"testing"

	"github.com/Harpita-P/Kiro-InteractionKit/pkg/input"
)

type publishRecord struct {
	Topic string
	Data  Payload
}

// recordAll subscribes one recording handler to every gesture topic and
// returns the publishes in order.
func recordAll(bus *Bus) *[]publishRecord {
	record := &[]publishRecord{}
	for _, topic := range GestureTopics() {
		topic := topic
		bus.Subscribe(topic, func(data Payload) {
			*record = append(*record, publishRecord{Topic: topic, Data: data})
		})
	}
	return record
}

func TestDispatchHandPinchStart(t *testing.T) {
	bus := NewBus()
	record := recordAll(bus)
	dispatcher := NewDispatcher(bus)

	dispatcher.DispatchHand(input.HandSnapshot{
		Present:      true,
		IsPinch:      true,
		PinchPressed: true,
		Handedness:   "Right",
		CursorX:      0.4,
		CursorY:      0.6,
	})

	if len(*record) != 1 {
		t.Fatalf("got %d publishes, want 1", len(*record))
	}
	got := (*record)[0]
	if got.Topic != "gesture.pinch.start" {
		t.Errorf("topic = %q, want %q", got.Topic, "gesture.pinch.start")
	}
	if got.Data["is_pinch"] != true {
		t.Errorf(`payload["is_pinch"] = %v, want true`, got.Data["is_pinch"])
	}
	if got.Data["hand"] != "Right" {
		t.Errorf(`payload["hand"] = %v, want "Right"`, got.Data["hand"])
	}
	if got.Data["cursor_x"] != 0.4 || got.Data["cursor_y"] != 0.6 {
		t.Errorf("cursor payload = (%v, %v), want (0.4, 0.6)",
			got.Data["cursor_x"], got.Data["cursor_y"])
	}
}

func TestDispatchHandRelease(t *testing.T) {
	bus := NewBus()
	record := recordAll(bus)
	dispatcher := NewDispatcher(bus)

	dispatcher.DispatchHand(input.HandSnapshot{PinchReleased: true})

	if len(*record) != 1 {
		t.Fatalf("got %d publishes, want 1", len(*record))
	}
	if got := (*record)[0].Topic; got != "gesture.pinch.end" {
		t.Errorf("topic = %q, want %q", got, "gesture.pinch.end")
	}
	if data := (*record)[0].Data; data["is_pinch"] != false {
		t.Errorf(`payload["is_pinch"] = %v, want false after release`, data["is_pinch"])
	}
}

func TestDispatchHandMultipleEdges(t *testing.T) {
	bus := NewBus()
	record := recordAll(bus)
	dispatcher := NewDispatcher(bus)

	// Pinch starts while peace ends in the same frame. Dispatch order
	// follows the HandGestures order, so pinch fires first.
	dispatcher.DispatchHand(input.HandSnapshot{
		Present:       true,
		IsPinch:       true,
		PinchPressed:  true,
		PeaceReleased: true,
	})

	if len(*record) != 2 {
		t.Fatalf("got %d publishes, want 2", len(*record))
	}
	if got := (*record)[0].Topic; got != "gesture.pinch.start" {
		t.Errorf("first topic = %q, want %q", got, "gesture.pinch.start")
	}
	if got := (*record)[1].Topic; got != "gesture.peace.end" {
		t.Errorf("second topic = %q, want %q", got, "gesture.peace.end")
	}
}

func TestDispatchHandNoEdges(t *testing.T) {
	bus := NewBus()
	record := recordAll(bus)
	dispatcher := NewDispatcher(bus)

	// Continuous flags without pulses publish nothing.
	dispatcher.DispatchHand(input.HandSnapshot{Present: true, IsPinch: true, IsClosed: true})

	if len(*record) != 0 {
		t.Errorf("got %d publishes, want 0", len(*record))
	}
}

func TestDispatchFace(t *testing.T) {
	bus := NewBus()
	record := recordAll(bus)
	dispatcher := NewDispatcher(bus)

	dispatcher.DispatchFace(input.FaceSnapshot{
		Present:      true,
		IsBlink:      true,
		BlinkPressed: true,
	})

	if len(*record) != 1 {
		t.Fatalf("got %d publishes, want 1", len(*record))
	}
	got := (*record)[0]
	if got.Topic != "gesture.blink.start" {
		t.Errorf("topic = %q, want %q", got.Topic, "gesture.blink.start")
	}
	if got.Data["is_blink"] != true {
		t.Errorf(`payload["is_blink"] = %v, want true`, got.Data["is_blink"])
	}
	if _, ok := got.Data["hand"]; ok {
		t.Error("face payload carries a hand key")
	}
	if len(got.Data) != 3 {
		t.Errorf("face payload has %d keys, want 3", len(got.Data))
	}
}

func TestDispatchSharesPayloadAcrossEvents(t *testing.T) {
	bus := NewBus()
	record := recordAll(bus)
	dispatcher := NewDispatcher(bus)

	dispatcher.DispatchHand(input.HandSnapshot{
		ClosedReleased: true,
		PinchPressed:   true,
		IsPinch:        true,
	})

	if len(*record) != 2 {
		t.Fatalf("got %d publishes, want 2", len(*record))
	}
	first, second := (*record)[0].Data, (*record)[1].Data
	if first["is_pinch"] != second["is_pinch"] || first["is_closed"] != second["is_closed"] {
		t.Error("events of one snapshot carry different payloads")
	}
}
