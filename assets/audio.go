package assets

import (
	"encoding/binary"
	"fmt"
	"math"

	cfg "github.com/automoto/donut-gather/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// CueSynth plays synthesized sound cues. Cues are rendered to PCM once and
// cached, so every Play only creates a player.
type CueSynth struct {
	pcmCache map[cfg.SoundID][]byte
	context  *audio.Context
}

// NewCueSynth creates a cue synth bound to the given audio context
func NewCueSynth(ctx *audio.Context) *CueSynth {
	return &CueSynth{
		pcmCache: make(map[cfg.SoundID][]byte),
		context:  ctx,
	}
}

// Preload renders every configured cue. Call at startup to avoid the
// synthesis cost on first play.
func (s *CueSynth) Preload() error {
	for id := range cfg.Sound.Cues {
		if _, err := s.pcm(id); err != nil {
			return err
		}
	}
	return nil
}

// Play starts a cue and returns immediately. Unknown cues are ignored.
func (s *CueSynth) Play(sound cfg.SoundID, _ mgl64.Vec3, volume float64) {
	data, err := s.pcm(sound)
	if err != nil {
		return
	}
	player := s.context.NewPlayerFromBytes(data)
	player.SetVolume(volume)
	player.Play()
}

func (s *CueSynth) pcm(sound cfg.SoundID) ([]byte, error) {
	if data, ok := s.pcmCache[sound]; ok {
		return data, nil
	}
	def, ok := cfg.Sound.Cues[sound]
	if !ok {
		return nil, fmt.Errorf("no cue for sound %d", sound)
	}
	data, err := Synthesize(def, s.context.SampleRate())
	if err != nil {
		return nil, fmt.Errorf("failed to synthesize sound %d: %w", sound, err)
	}
	s.pcmCache[sound] = data
	return data, nil
}

// attackSecs is the linear fade-in at the start of each note
const attackSecs = 0.004

// Synthesize renders a cue as 16-bit little-endian stereo PCM, the format
// ebiten's audio players consume.
func Synthesize(def cfg.CueDef, sampleRate int) ([]byte, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("invalid sample rate %d", sampleRate)
	}
	if len(def.Notes) == 0 || def.NoteSecs <= 0 {
		return nil, fmt.Errorf("empty cue")
	}

	perNote := int(def.NoteSecs * float64(sampleRate))
	out := make([]byte, 0, perNote*len(def.Notes)*4)

	for _, freq := range def.Notes {
		for i := 0; i < perNote; i++ {
			t := float64(i) / float64(sampleRate)
			env := math.Exp(-def.Decay * t)
			if t < attackSecs {
				env *= t / attackSecs
			}
			v := int16(math.Sin(2*math.Pi*freq*t) * env * math.MaxInt16 * 0.5)
			out = binary.LittleEndian.AppendUint16(out, uint16(v))
			out = binary.LittleEndian.AppendUint16(out, uint16(v))
		}
	}
	return out, nil
}
