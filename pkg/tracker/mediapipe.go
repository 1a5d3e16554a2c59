package tracker

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"gocv.io/x/gocv"

	"github.com/Harpita-P/Kiro-InteractionKit/pkg/landmark"
)

// serviceIdleTimeout is how long a landmark service may sit unused before
// its Python process is stopped. It restarts lazily on the next Detect.
const serviceIdleTimeout = 30 * time.Second

// landmarkService drives one Python MediaPipe process. Frames go out as
// 4-byte big-endian JPEG length plus payload; each detection comes back as
// a single JSON line.
type landmarkService struct {
	args      []string
	cmd       *exec.Cmd
	stdin     io.WriteCloser
	stdout    *bufio.Reader
	mu        sync.Mutex
	started   bool
	idleTimer *time.Timer
}

func newLandmarkService(mode string, config DetectorConfig) (*landmarkService, error) {
	if findServiceScript() == "" {
		return nil, fmt.Errorf("landmark_service.py not found")
	}

	args := []string{
		"--mode", mode,
		"--max-results", strconv.Itoa(config.MaxResults),
		"--min-detection-confidence", strconv.FormatFloat(config.MinDetectionConfidence, 'f', -1, 64),
		"--min-tracking-confidence", strconv.FormatFloat(config.MinTrackingConfidence, 'f', -1, 64),
	}
	if config.RefineLandmarks {
		args = append(args, "--refine-landmarks")
	}
	return &landmarkService{args: args}, nil
}

// roundTrip sends one frame and returns the service's JSON response line.
func (s *landmarkService) roundTrip(frame *gocv.Mat) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureStarted(); err != nil {
		return nil, err
	}

	buf, err := gocv.IMEncode(".jpg", *frame)
	if err != nil {
		return nil, fmt.Errorf("encode frame: %w", err)
	}
	defer buf.Close()
	data := buf.GetBytes()

	length := make([]byte, 4)
	binary.BigEndian.PutUint32(length, uint32(len(data)))

	if _, err := s.stdin.Write(length); err != nil {
		return nil, fmt.Errorf("write length: %w", err)
	}
	if _, err := s.stdin.Write(data); err != nil {
		return nil, fmt.Errorf("write frame: %w", err)
	}

	line, err := s.stdout.ReadBytes('\n')
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	s.resetIdleTimer()
	return line, nil
}

func (s *landmarkService) ensureStarted() error {
	if s.started {
		return nil
	}

	scriptPath := findServiceScript()
	if scriptPath == "" {
		return fmt.Errorf("landmark_service.py not found")
	}

	pythonPath := findVenvPython()
	if pythonPath == "" {
		pythonPath = "python3"
	}

	s.cmd = exec.Command(pythonPath, append([]string{scriptPath}, s.args...)...)

	stdin, err := s.cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("create stdin pipe: %w", err)
	}
	stdout, err := s.cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("create stdout pipe: %w", err)
	}
	s.cmd.Stderr = os.Stderr

	if err := s.cmd.Start(); err != nil {
		return fmt.Errorf("start landmark service: %w", err)
	}

	s.stdin = stdin
	s.stdout = bufio.NewReader(stdout)
	s.started = true
	return nil
}

func (s *landmarkService) close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shutdown()
}

func (s *landmarkService) shutdown() error {
	if !s.started {
		return nil
	}

	if s.idleTimer != nil {
		s.idleTimer.Stop()
		s.idleTimer = nil
	}
	if s.stdin != nil {
		s.stdin.Close()
	}

	err := s.cmd.Wait()
	s.started = false
	s.cmd = nil
	s.stdin = nil
	s.stdout = nil
	return err
}

func (s *landmarkService) resetIdleTimer() {
	if s.idleTimer != nil {
		s.idleTimer.Stop()
	}
	s.idleTimer = time.AfterFunc(serviceIdleTimeout, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.shutdown()
	})
}

func findServiceScript() string {
	execPath, err := os.Executable()
	var execDir string
	if err == nil {
		execDir = filepath.Dir(execPath)
	}

	candidates := []string{
		"scripts/landmark_service.py",
		"../scripts/landmark_service.py",
		filepath.Join(execDir, "scripts/landmark_service.py"),
		filepath.Join(os.Getenv("HOME"), ".kiro/scripts/landmark_service.py"),
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			if absPath, err := filepath.Abs(path); err == nil {
				return absPath
			}
			return path
		}
	}
	return ""
}

// findVenvPython looks for a Python interpreter in a virtual environment
// near the working directory, the executable or the user's data directory.
func findVenvPython() string {
	execPath, err := os.Executable()
	if err != nil {
		return ""
	}
	execDir := filepath.Dir(execPath)

	candidates := []string{
		"venv/bin/python",
		"../venv/bin/python",
		filepath.Join(execDir, "venv/bin/python"),
		filepath.Join(os.Getenv("HOME"), ".kiro/venv/bin/python"),
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			if absPath, err := filepath.Abs(path); err == nil {
				return absPath
			}
			return path
		}
	}
	return ""
}

// MediaPipeHands implements HandDetector using a Python MediaPipe
// subprocess. The process starts lazily on first detection and stops after
// sitting idle.
type MediaPipeHands struct {
	service *landmarkService
}

// NewMediaPipeHands creates a hand detector backed by the landmark service.
func NewMediaPipeHands(config DetectorConfig) (*MediaPipeHands, error) {
	service, err := newLandmarkService("hands", config)
	if err != nil {
		return nil, err
	}
	return &MediaPipeHands{service: service}, nil
}

// Detect analyzes a frame and returns the detected hands.
func (d *MediaPipeHands) Detect(frame *gocv.Mat) ([]HandDetection, error) {
	line, err := d.service.roundTrip(frame)
	if err != nil {
		return nil, err
	}

	var response struct {
		Hands []jsonHand `json:"hands"`
	}
	if err := json.Unmarshal(line, &response); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	result := make([]HandDetection, len(response.Hands))
	for i, h := range response.Hands {
		result[i] = h.toHandDetection()
	}
	return result, nil
}

// Close shuts down the Python process.
func (d *MediaPipeHands) Close() error {
	return d.service.close()
}

// MediaPipeFaceMesh implements FaceDetector using a Python MediaPipe
// subprocess.
type MediaPipeFaceMesh struct {
	service *landmarkService
}

// NewMediaPipeFaceMesh creates a face mesh detector backed by the landmark
// service.
func NewMediaPipeFaceMesh(config DetectorConfig) (*MediaPipeFaceMesh, error) {
	service, err := newLandmarkService("face_mesh", config)
	if err != nil {
		return nil, err
	}
	return &MediaPipeFaceMesh{service: service}, nil
}

// Detect analyzes a frame and returns the detected face meshes.
func (d *MediaPipeFaceMesh) Detect(frame *gocv.Mat) ([]FaceDetection, error) {
	line, err := d.service.roundTrip(frame)
	if err != nil {
		return nil, err
	}

	var response struct {
		Faces []jsonFace `json:"faces"`
	}
	if err := json.Unmarshal(line, &response); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	result := make([]FaceDetection, len(response.Faces))
	for i, f := range response.Faces {
		result[i] = f.toFaceDetection()
	}
	return result, nil
}

// Close shuts down the Python process.
func (d *MediaPipeFaceMesh) Close() error {
	return d.service.close()
}

// jsonHand mirrors the JSON structure emitted by the Python service.
type jsonHand struct {
	Points     []jsonPoint `json:"points"`
	Handedness string      `json:"handedness"`
	Score      float64     `json:"score"`
}

type jsonFace struct {
	Points []jsonPoint `json:"points"`
	Score  float64     `json:"score"`
}

type jsonPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func convertPoints(points []jsonPoint) []landmark.Point {
	out := make([]landmark.Point, len(points))
	for i, p := range points {
		out[i] = landmark.Point{X: p.X, Y: p.Y, Z: p.Z}
	}
	return out
}

func (h jsonHand) toHandDetection() HandDetection {
	return HandDetection{
		Points:     convertPoints(h.Points),
		Handedness: h.Handedness,
		Score:      h.Score,
	}
}

func (f jsonFace) toFaceDetection() FaceDetection {
	return FaceDetection{
		Points: convertPoints(f.Points),
		Score:  f.Score,
	}
}
