package components

import (
	cfg "github.com/automoto/donut-gather/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// CueRequest is one queued fire-and-forget sound cue
type CueRequest struct {
	Sound cfg.SoundID
	At    mgl64.Vec3
}

// CuePlayer plays sound cues. Implementations must not block.
type CuePlayer interface {
	Play(sound cfg.SoundID, at mgl64.Vec3, volume float64)
}

// AudioData stores the per-world cue queue (singleton component)
type AudioData struct {
	SFXVolume  float64 // 0.0 - 1.0
	PendingSFX []CueRequest
	Player     CuePlayer // nil drops cues
}

var Audio = donburi.NewComponentType[AudioData]()
