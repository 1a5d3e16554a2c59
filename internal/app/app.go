// Package app assembles the full pipeline: camera, motion gate, trackers,
// input managers, dispatcher, bus and mapping rules. One instance owns one
// camera and one frame loop.
package app

import (
	"fmt"
	"sync"

	"github.com/Harpita-P/Kiro-InteractionKit/internal/capture"
	"github.com/Harpita-P/Kiro-InteractionKit/internal/config"
	"github.com/Harpita-P/Kiro-InteractionKit/internal/log"
	"github.com/Harpita-P/Kiro-InteractionKit/pkg/actions"
	"github.com/Harpita-P/Kiro-InteractionKit/pkg/events"
	"github.com/Harpita-P/Kiro-InteractionKit/pkg/input"
	"github.com/Harpita-P/Kiro-InteractionKit/pkg/tracker"
)

// App orchestrates capture, tracking and event dispatch.
type App struct {
	cfg    config.Config
	camera capture.Camera
	motion *capture.MotionDetector

	hands *input.HandManager
	faces *input.FaceManager
	head  *tracker.HeadTracker

	bus        *events.Bus
	dispatcher *events.Dispatcher
	mapper     *actions.Mapper

	enabled bool
	mu      sync.RWMutex
	stopCh  chan struct{}
	doneCh  chan struct{}

	// lastGesture is the most recent priority-selected hand gesture, kept
	// to log only changes.
	lastGesture string
}

// New builds an App from the configuration. Each enabled domain gets a
// MediaPipe detector when the service is available and a mock detector
// otherwise, so the pipeline runs (inertly) on machines without the Python
// side installed. Mapping rules from the config are registered before New
// returns.
func New(cfg config.Config) (*App, error) {
	a := &App{
		cfg:    cfg,
		camera: capture.NewWebcam(cfg.Camera.DeviceID, cfg.Camera.Width, cfg.Camera.Height),
		motion: capture.NewMotionDetector(cfg.Pipeline.MotionThreshold),
		bus:    events.NewBus(),
	}
	a.dispatcher = events.NewDispatcher(a.bus)
	a.mapper = actions.NewMapper(a.bus)

	if cfg.Hand.Enabled {
		a.hands = input.NewHandManager(tracker.NewHandTracker(newHandDetector(), tracker.HandTrackerConfig{
			Thresholds: cfg.Hand.Thresholds,
			Mirror:     cfg.Hand.Mirror,
			Annotate:   cfg.Hand.Annotate,
		}))
	}

	if cfg.Face.Enabled {
		a.faces = input.NewFaceManager(tracker.NewFaceTracker(newFaceDetector(), tracker.FaceTrackerConfig{
			Thresholds: cfg.Face.Thresholds,
			Mirror:     cfg.Face.Mirror,
			Annotate:   cfg.Face.Annotate,
		}))
	}

	if cfg.Head.Enabled {
		a.head = tracker.NewHeadTracker(newFaceDetector(), tracker.HeadTrackerConfig{
			Annotate: cfg.Head.Annotate,
		})
	}

	if len(cfg.Rules) > 0 {
		if _, err := a.mapper.Apply(cfg.Rules); err != nil {
			return nil, fmt.Errorf("apply mapping rules: %w", err)
		}
		log.Info("mapping rules registered", "count", len(cfg.Rules))
	}

	return a, nil
}

// newHandDetector prefers the MediaPipe service and falls back to a mock.
func newHandDetector() tracker.HandDetector {
	mp, err := tracker.NewMediaPipeHands(tracker.DefaultHandDetectorConfig())
	if err != nil {
		log.Warn("MediaPipe hands unavailable, using mock detector", "error", err)
		return tracker.NewMockHandDetector()
	}
	log.Info("using MediaPipe hand detection")
	return mp
}

// newFaceDetector prefers the MediaPipe face mesh and falls back to a mock.
func newFaceDetector() tracker.FaceDetector {
	mp, err := tracker.NewMediaPipeFaceMesh(tracker.DefaultFaceDetectorConfig())
	if err != nil {
		log.Warn("MediaPipe face mesh unavailable, using mock detector", "error", err)
		return tracker.NewMockFaceDetector()
	}
	log.Info("using MediaPipe face detection")
	return mp
}

// SetEnabled turns frame processing on or off without stopping the loop.
func (a *App) SetEnabled(enabled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.enabled = enabled
}

// IsEnabled reports whether frames are currently processed.
func (a *App) IsEnabled() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.enabled
}

// SetCamera replaces the frame source. Tests install a MockCamera here.
// Must be called before Start.
func (a *App) SetCamera(camera capture.Camera) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.camera = camera
}

// SetHandDetector rebuilds the hand manager around the given detector,
// keeping the configured thresholds. Tests install mock detectors here.
// Must be called before Start.
func (a *App) SetHandDetector(d tracker.HandDetector) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.hands != nil {
		a.hands.Close()
	}
	a.hands = input.NewHandManager(tracker.NewHandTracker(d, tracker.HandTrackerConfig{
		Thresholds: a.cfg.Hand.Thresholds,
		Mirror:     a.cfg.Hand.Mirror,
		Annotate:   a.cfg.Hand.Annotate,
	}))
}

// SetFaceDetector rebuilds the face manager around the given detector.
// Must be called before Start.
func (a *App) SetFaceDetector(d tracker.FaceDetector) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.faces != nil {
		a.faces.Close()
	}
	a.faces = input.NewFaceManager(tracker.NewFaceTracker(d, tracker.FaceTrackerConfig{
		Thresholds: a.cfg.Face.Thresholds,
		Mirror:     a.cfg.Face.Mirror,
		Annotate:   a.cfg.Face.Annotate,
	}))
}

// Start opens the camera and launches the frame loop. Starting a running
// app is a no-op.
func (a *App) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh != nil {
		return nil
	}

	if err := a.camera.Open(); err != nil {
		return fmt.Errorf("open camera: %w", err)
	}

	a.camera.SetFPS(a.cfg.Pipeline.IdleFPS)

	a.stopCh = make(chan struct{})
	a.doneCh = make(chan struct{})
	go a.runPipeline(a.stopCh, a.doneCh)

	log.Info("pipeline started",
		"idle_fps", a.cfg.Pipeline.IdleFPS,
		"active_fps", a.cfg.Pipeline.ActiveFPS)
	return nil
}

// Stop halts the frame loop, waits for the in-flight frame to finish, and
// releases the camera, the motion detector and every tracker.
func (a *App) Stop() {
	a.mu.Lock()
	stopCh, doneCh := a.stopCh, a.doneCh
	a.stopCh, a.doneCh = nil, nil
	a.mu.Unlock()

	// Join the loop goroutine before touching anything it may still be
	// using. The lock must be released here: the loop takes a read lock
	// on every tick.
	if stopCh != nil {
		close(stopCh)
		<-doneCh
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.camera.Close(); err != nil {
		log.Error("closing camera", "error", err)
	}

	a.motion.Close()

	if a.hands != nil {
		if err := a.hands.Close(); err != nil {
			log.Error("closing hand manager", "error", err)
		}
	}
	if a.faces != nil {
		if err := a.faces.Close(); err != nil {
			log.Error("closing face manager", "error", err)
		}
	}
	if a.head != nil {
		if err := a.head.Close(); err != nil {
			log.Error("closing head tracker", "error", err)
		}
	}

	log.Info("pipeline stopped")
}

// Bus returns the event bus shared by the dispatcher and the mapping
// rules. Applications subscribe to gesture and action topics here.
func (a *App) Bus() *events.Bus {
	return a.bus
}

// Mapper returns the action mapper, for registering rules with predicates.
func (a *App) Mapper() *actions.Mapper {
	return a.mapper
}

// Camera returns the frame source.
func (a *App) Camera() capture.Camera {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.camera
}

// MotionDetector returns the motion gate.
func (a *App) MotionDetector() *capture.MotionDetector {
	return a.motion
}
