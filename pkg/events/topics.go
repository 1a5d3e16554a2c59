package events

// Gesture names as they appear inside topic strings. The set is fixed:
// application code subscribes to these, so renaming one is a breaking
// change.
const (
	GestureClosed     = "closed"
	GesturePinch      = "pinch"
	GesturePeace      = "peace"
	GestureThumbsUp   = "thumbs_up"
	GestureThumbsDown = "thumbs_down"
	GestureRockSign   = "rock_sign"
	GestureOpenHand   = "open_hand"
	GesturePointing   = "pointing"
	GestureOKSign     = "ok_sign"
	GestureBlink      = "blink"
	GestureMouthOpen  = "mouth_open"
	GestureSmiling    = "smiling"
)

// HandGestures lists the hand gesture names in dispatch order.
var HandGestures = []string{
	GestureClosed,
	GesturePinch,
	GesturePeace,
	GestureThumbsUp,
	GestureThumbsDown,
	GestureRockSign,
	GestureOpenHand,
	GesturePointing,
	GestureOKSign,
}

// FaceGestures lists the face gesture names in dispatch order.
var FaceGestures = []string{
	GestureBlink,
	GestureMouthOpen,
	GestureSmiling,
}

// StartTopic returns the topic published when the named gesture begins.
func StartTopic(gesture string) string {
	return "gesture." + gesture + ".start"
}

// EndTopic returns the topic published when the named gesture ends.
func EndTopic(gesture string) string {
	return "gesture." + gesture + ".end"
}

// GestureTopics returns the start and end topics of every known gesture,
// hand gestures first.
func GestureTopics() []string {
	names := make([]string, 0, len(HandGestures)+len(FaceGestures))
	names = append(names, HandGestures...)
	names = append(names, FaceGestures...)

	topics := make([]string, 0, 2*len(names))
	for _, name := range names {
		topics = append(topics, StartTopic(name), EndTopic(name))
	}
	return topics
}
