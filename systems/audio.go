package systems

import (
	"github.com/automoto/donut-gather/components"
	cfg "github.com/automoto/donut-gather/config"
	"github.com/automoto/donut-gather/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAudio hands this frame's queued cues to the cue player
func UpdateAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)

	listener, hasListener := listenerPosition(e)
	for _, req := range audioData.PendingSFX {
		if hasListener && req.At.Sub(listener).Len() > cfg.Audio.MaxCueDistance {
			continue
		}
		playSFX(audioData, req)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(audioData *components.AudioData, req components.CueRequest) {
	if audioData.Player == nil || audioData.SFXVolume <= 0 {
		return
	}
	if _, ok := cfg.Sound.Cues[req.Sound]; !ok {
		return
	}

	volume := audioData.SFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[req.Sound]; ok {
		volume *= mult
	}
	audioData.Player.Play(req.Sound, req.At, volume)
}

func listenerPosition(e *ecs.ECS) (mgl64.Vec3, bool) {
	cameraEntry, ok := tags.Camera.First(e.World)
	if !ok {
		return mgl64.Vec3{}, false
	}
	return components.Transform.Get(cameraEntry).Position, true
}

// PlaySFX queues a sound effect to be played at a world position
func PlaySFX(e *ecs.ECS, soundID cfg.SoundID, at mgl64.Vec3) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, components.CueRequest{Sound: soundID, At: at})
}

// SetCuePlayer installs the audio backend for this world.
func SetCuePlayer(e *ecs.ECS, p components.CuePlayer) {
	GetOrCreateAudio(e).Player = p
}

// SetSFXVolume sets the sound effects volume (0.0 - 1.0)
func SetSFXVolume(e *ecs.ECS, vol float64) {
	GetOrCreateAudio(e).SFXVolume = mgl64.Clamp(vol, 0, 1)
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			SFXVolume: cfg.Audio.DefaultSFXVol,
		})
	}
	return components.Audio.Get(entry)
}
