package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundCollect
	SoundStep
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
	// Cues farther than this from the camera are not played
	MaxCueDistance float64
}

// CueDef describes a synthesized sound cue: a short sequence of tones with
// a linear attack and exponential decay envelope.
type CueDef struct {
	Notes    []float64 // Hz, played back to back
	NoteSecs float64
	Decay    float64 // envelope decay rate per second
}

// SoundConfig maps sound IDs to cue definitions
type SoundConfig struct {
	Cues              map[SoundID]CueDef
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:     44100,
		DefaultSFXVol:  0.8,
		MaxCueDistance: 40,
	}

	Sound = SoundConfig{
		Cues: map[SoundID]CueDef{
			SoundCollect: {Notes: []float64{880, 1318.5}, NoteSecs: 0.08, Decay: 9},
			SoundStep:    {Notes: []float64{140}, NoteSecs: 0.04, Decay: 30},
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundStep: 0.25,
		},
	}
}
