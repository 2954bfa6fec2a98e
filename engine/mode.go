package engine

import (
	"errors"
	"fmt"
)

// Mode is the top-level presentation mode
type Mode uint8

const (
	ModeExploration Mode = iota
	ModeProfessional
)

func (m Mode) String() string {
	switch m {
	case ModeExploration:
		return "exploration"
	case ModeProfessional:
		return "professional"
	default:
		return "unknown"
	}
}

var (
	ErrNotExploring = errors.New("overlay requires exploration mode")
	ErrOverlayOpen  = errors.New("an overlay is already open")
	ErrNoOverlay    = errors.New("no overlay is open")
)

// ModeController gates flight and overlays
// An open overlay always implies paused; Professional mode is always paused
type ModeController struct {
	mode    Mode
	paused  bool
	overlay string
}

// NewModeController starts in Exploration, running, with no overlay
func NewModeController() *ModeController {
	return &ModeController{mode: ModeExploration}
}

// Toggle flips the mode and returns the overlay it closed, if any
// Entering Professional closes any overlay so leaving it can safely unpause
func (mc *ModeController) Toggle() (closed string) {
	switch mc.mode {
	case ModeExploration:
		closed = mc.overlay
		mc.overlay = ""
		mc.mode = ModeProfessional
		mc.paused = true
	default:
		mc.mode = ModeExploration
		mc.paused = false
	}
	return closed
}

// OpenOverlay activates the overlay for id and pauses the simulation
func (mc *ModeController) OpenOverlay(id string) error {
	if mc.mode != ModeExploration {
		return fmt.Errorf("open %q: %w", id, ErrNotExploring)
	}
	if mc.overlay != "" {
		return fmt.Errorf("open %q while %q: %w", id, mc.overlay, ErrOverlayOpen)
	}
	mc.overlay = id
	mc.paused = true
	return nil
}

// CloseOverlay clears the overlay and resumes, returning the closed id
func (mc *ModeController) CloseOverlay() (string, error) {
	if mc.overlay == "" {
		return "", ErrNoOverlay
	}
	id := mc.overlay
	mc.overlay = ""
	mc.paused = mc.mode == ModeProfessional
	return id, nil
}

func (mc *ModeController) Mode() Mode {
	return mc.mode
}

func (mc *ModeController) Paused() bool {
	return mc.paused
}

// ActiveOverlay returns the open overlay id, "" for none
func (mc *ModeController) ActiveOverlay() string {
	return mc.overlay
}

// Running reports whether flight and proximity may advance
func (mc *ModeController) Running() bool {
	return mc.mode == ModeExploration && !mc.paused
}
