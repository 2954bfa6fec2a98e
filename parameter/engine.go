package parameter

import "time"

// Simulation loop cadences
const (
	// FrameUpdateInterval is the simulation frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// ProximityUpdateInterval drives the decoupled nearest-landmark check
	ProximityUpdateInterval = 16 * time.Millisecond

	// FuelRegenInterval drives idle fuel regeneration
	FuelRegenInterval = 1 * time.Second

	// InboxSize is the buffered capacity of the scheduler input/command inbox
	InboxSize = 256
)

// Telemetry
const (
	// TelemetryLogInterval throttles HUD snapshots written to the log
	TelemetryLogInterval = 1 * time.Second
)
