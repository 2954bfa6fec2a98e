package audio

import (
	"github.com/gopxl/beep"

	"github.com/lixenwraith/spacefolio/parameter"
)

// Cue is a one-shot sound tied to a simulation transition
type Cue int

const (
	CueOverlayOpen Cue = iota
	CueOverlayClose
	CueLevelUp
	CueModeChange
	CueNearby

	cueCount
)

func (c Cue) String() string {
	switch c {
	case CueOverlayOpen:
		return "overlay_open"
	case CueOverlayClose:
		return "overlay_close"
	case CueLevelUp:
		return "level_up"
	case CueModeChange:
		return "mode_change"
	case CueNearby:
		return "nearby"
	default:
		return "unknown"
	}
}

// Synthesize builds a fresh streamer for cue
func Synthesize(cue Cue, rate beep.SampleRate) beep.Streamer {
	switch cue {
	case CueOverlayOpen:
		return chime(rate, 660, 990)
	case CueOverlayClose:
		return blip(rate, 440)
	case CueLevelUp:
		// Rising arpeggio
		return beep.Seq(
			blip(rate, 523.25),
			blip(rate, 659.25),
			chime(rate, 783.99, 1567.98),
		)
	case CueModeChange:
		return sweep(rate, 220, 660)
	case CueNearby:
		return blip(rate, 880)
	default:
		return beep.Silence(0)
	}
}

// chime is a bell-like fundamental plus overtone
func chime(rate beep.SampleRate, fund, over float64) beep.Streamer {
	d := parameter.ChimeDuration
	return beep.Mix(
		newVolume(NewEnvelope(NewOscillator(fund, d, WaveSine, rate), d, parameter.ChimeAttack, parameter.ChimeRelease, rate), 0.7),
		newVolume(NewEnvelope(NewOscillator(over, d, WaveSine, rate), d, parameter.ChimeAttack, parameter.ChimeRelease/2, rate), 0.3),
	)
}

func blip(rate beep.SampleRate, freq float64) beep.Streamer {
	d := parameter.BlipDuration
	return NewEnvelope(NewOscillator(freq, d, WaveSquare, rate), d, parameter.BlipAttack, parameter.BlipRelease, rate)
}

func sweep(rate beep.SampleRate, from, to float64) beep.Streamer {
	d := parameter.SweepDuration
	return newVolume(NewEnvelope(NewSweep(from, to, d, WaveSaw, rate), d, parameter.SweepAttack, parameter.SweepRelease, rate), 0.5)
}
