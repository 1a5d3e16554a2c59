package app

import (
	"time"

	"gocv.io/x/gocv"

	"github.com/Harpita-P/Kiro-InteractionKit/internal/log"
	"github.com/Harpita-P/Kiro-InteractionKit/pkg/events"
	"github.com/Harpita-P/Kiro-InteractionKit/pkg/gesture"
	"github.com/Harpita-P/Kiro-InteractionKit/pkg/input"
	"github.com/Harpita-P/Kiro-InteractionKit/pkg/tracker"
)

// runPipeline is the frame loop. It reads at the idle rate until the motion
// gate opens, tracks at the active rate while the scene moves, and drops
// back to idle after the configured quiet period. Exactly one frame is in
// flight at a time; trackers, managers, dispatcher and every subscriber run
// to completion before the next tick is honored.
func (a *App) runPipeline(stopCh, done chan struct{}) {
	defer close(done)

	activeMode := false
	lastMotionTime := time.Now()

	idleInterval := time.Second / time.Duration(a.cfg.Pipeline.IdleFPS)
	activeInterval := time.Second / time.Duration(a.cfg.Pipeline.ActiveFPS)
	idleTimeout := time.Duration(a.cfg.Pipeline.IdleTimeoutMs) * time.Millisecond

	ticker := time.NewTicker(idleInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			if !a.IsEnabled() {
				continue
			}

			frame, err := a.camera.ReadFrame()
			if err != nil {
				log.Error("reading frame", "error", err)
				continue
			}

			motionDetected, changePercent := a.motion.Detect(frame)

			if motionDetected {
				lastMotionTime = time.Now()

				if !activeMode {
					activeMode = true
					a.camera.SetFPS(a.cfg.Pipeline.ActiveFPS)
					ticker.Reset(activeInterval)
					log.Debug("switched to active mode", "change_percent", changePercent)
				}
			} else if activeMode && time.Since(lastMotionTime) > idleTimeout {
				activeMode = false
				a.camera.SetFPS(a.cfg.Pipeline.IdleFPS)
				ticker.Reset(idleInterval)
				log.Debug("switched to idle mode")
			}

			if activeMode {
				a.processFrame(frame)
			}
			frame.Close()
		}
	}
}

// processFrame runs every enabled domain over one frame and dispatches the
// resulting edge pulses. Each domain works on its own clone: the hand and
// face trackers mirror in place, and the head solve needs the unmirrored
// geometry, so they cannot share a Mat. Detector failures are logged and
// treated as absence; the managers still advance their edge state.
func (a *App) processFrame(frame *gocv.Mat) {
	if a.hands != nil {
		domainFrame := frame.Clone()
		snap, err := a.hands.UpdateFromFrame(&domainFrame)
		domainFrame.Close()
		if err != nil {
			log.Error("hand tracking", "error", err)
		}
		a.dispatcher.DispatchHand(snap)
		a.logActiveGesture(snap)
	}

	if a.faces != nil {
		domainFrame := frame.Clone()
		snap, err := a.faces.UpdateFromFrame(&domainFrame)
		domainFrame.Close()
		if err != nil {
			log.Error("face tracking", "error", err)
		}
		a.dispatcher.DispatchFace(snap)
	}

	if a.head != nil {
		domainFrame := frame.Clone()
		state, err := a.head.Process(&domainFrame)
		domainFrame.Close()
		if err != nil {
			log.Error("head tracking", "error", err)
		}
		a.logHeadPose(state)
	}
}

// handGesturePriority ranks co-firing hand flags for the activity log,
// strongest pose first. Classifiers are independent, so an open hand with
// two raised fingers can satisfy several of them at once.
var handGesturePriority = []string{
	events.GestureRockSign,
	events.GestureThumbsUp,
	events.GesturePointing,
	events.GestureOpenHand,
}

// activeHandGesture returns the highest-priority ranked gesture held in
// snap, or "" when none is.
func activeHandGesture(snap input.HandSnapshot) string {
	held := map[string]bool{
		events.GestureRockSign: snap.IsRockSign,
		events.GestureThumbsUp: snap.IsThumbsUp,
		events.GesturePointing: snap.IsPointing,
		events.GestureOpenHand: snap.IsOpenHand,
	}
	for _, name := range handGesturePriority {
		if held[name] {
			return name
		}
	}
	return ""
}

// logActiveGesture logs the priority-selected gesture whenever it changes.
// Only the pipeline goroutine calls this.
func (a *App) logActiveGesture(snap input.HandSnapshot) {
	current := activeHandGesture(snap)
	if current == a.lastGesture {
		return
	}
	if current != "" {
		log.Debug("active gesture", "gesture", current, "hand", snap.Handedness)
	}
	a.lastGesture = current
}

// logHeadPose logs the head orientation predicates that currently hold.
func (a *App) logHeadPose(state tracker.HeadState) {
	if !state.Present {
		return
	}

	th := a.cfg.Head.Thresholds
	switch {
	case gesture.IsNodUp(state.Pitch, th.NodUp):
		log.Debug("head pose", "gesture", "nod_up", "pitch", state.Pitch)
	case gesture.IsNodDown(state.Pitch, th.NodDown):
		log.Debug("head pose", "gesture", "nod_down", "pitch", state.Pitch)
	case gesture.IsTurnLeft(state.Yaw, th.Turn):
		log.Debug("head pose", "gesture", "turn_left", "yaw", state.Yaw)
	case gesture.IsTurnRight(state.Yaw, th.Turn):
		log.Debug("head pose", "gesture", "turn_right", "yaw", state.Yaw)
	case gesture.IsTiltLeft(state.Roll, th.Tilt):
		log.Debug("head pose", "gesture", "tilt_left", "roll", state.Roll)
	case gesture.IsTiltRight(state.Roll, th.Tilt):
		log.Debug("head pose", "gesture", "tilt_right", "roll", state.Roll)
	}
}
