package parameter

import "time"

// Audio output
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines output latency
	AudioBufferDuration = 50 * time.Millisecond

	// AudioMasterVolume is the default linear gain, 0 mutes
	AudioMasterVolume = 0.6

	// AudioMinCueGap drops repeats of the same cue closer than this
	AudioMinCueGap = 80 * time.Millisecond
)

// Thruster hum, a continuous low tone gated by thrust
const (
	HumFrequency      = 55.0
	HumBoostFrequency = 82.5
	HumVolume         = 0.25
)

// Cue envelopes
const (
	ChimeDuration = 400 * time.Millisecond
	ChimeAttack   = 5 * time.Millisecond
	ChimeRelease  = 300 * time.Millisecond

	BlipDuration = 90 * time.Millisecond
	BlipAttack   = 3 * time.Millisecond
	BlipRelease  = 60 * time.Millisecond

	SweepDuration = 250 * time.Millisecond
	SweepAttack   = 10 * time.Millisecond
	SweepRelease  = 120 * time.Millisecond
)
