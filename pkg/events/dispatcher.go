package events

import "github.com/Harpita-P/Kiro-InteractionKit/pkg/input"

// Dispatcher translates snapshot edge pulses into bus events. It holds no
// state of its own: one snapshot in, zero or more publishes out.
type Dispatcher struct {
	bus *Bus
}

// NewDispatcher creates a dispatcher publishing on bus.
func NewDispatcher(bus *Bus) *Dispatcher {
	return &Dispatcher{bus: bus}
}

type gestureEdge struct {
	name     string
	pressed  bool
	released bool
}

// DispatchHand publishes gesture.<name>.start for every pressed pulse and
// gesture.<name>.end for every released pulse in the snapshot, in the fixed
// HandGestures order. All events of one snapshot share a single payload
// built from the continuous fields, so a mapped rule forwards the full hand
// state to its action topic.
func (d *Dispatcher) DispatchHand(snap input.HandSnapshot) {
	data := Payload{
		"hand":           snap.Handedness,
		"cursor_x":       snap.CursorX,
		"cursor_y":       snap.CursorY,
		"is_closed":      snap.IsClosed,
		"is_pinch":       snap.IsPinch,
		"is_peace":       snap.IsPeace,
		"is_thumbs_up":   snap.IsThumbsUp,
		"is_thumbs_down": snap.IsThumbsDown,
		"is_rock_sign":   snap.IsRockSign,
		"is_open_hand":   snap.IsOpenHand,
		"is_pointing":    snap.IsPointing,
		"is_ok_sign":     snap.IsOKSign,
	}

	d.fire(data, []gestureEdge{
		{GestureClosed, snap.ClosedPressed, snap.ClosedReleased},
		{GesturePinch, snap.PinchPressed, snap.PinchReleased},
		{GesturePeace, snap.PeacePressed, snap.PeaceReleased},
		{GestureThumbsUp, snap.ThumbsUpPressed, snap.ThumbsUpReleased},
		{GestureThumbsDown, snap.ThumbsDownPressed, snap.ThumbsDownReleased},
		{GestureRockSign, snap.RockSignPressed, snap.RockSignReleased},
		{GestureOpenHand, snap.OpenHandPressed, snap.OpenHandReleased},
		{GesturePointing, snap.PointingPressed, snap.PointingReleased},
		{GestureOKSign, snap.OKSignPressed, snap.OKSignReleased},
	})
}

// DispatchFace publishes start and end events for the face expression
// pulses, in the fixed FaceGestures order, sharing one payload per
// snapshot.
func (d *Dispatcher) DispatchFace(snap input.FaceSnapshot) {
	data := Payload{
		"is_blink":      snap.IsBlink,
		"is_mouth_open": snap.IsMouthOpen,
		"is_smiling":    snap.IsSmiling,
	}

	d.fire(data, []gestureEdge{
		{GestureBlink, snap.BlinkPressed, snap.BlinkReleased},
		{GestureMouthOpen, snap.MouthOpenPressed, snap.MouthOpenReleased},
		{GestureSmiling, snap.SmilingPressed, snap.SmilingReleased},
	})
}

func (d *Dispatcher) fire(data Payload, edges []gestureEdge) {
	for _, edge := range edges {
		if edge.pressed {
			d.bus.Publish(StartTopic(edge.name), data)
		}
		if edge.released {
			d.bus.Publish(EndTopic(edge.name), data)
		}
	}
}
