package assets

import (
	"encoding/binary"
	"testing"

	cfg "github.com/automoto/donut-gather/config"
)

func TestSynthesize(t *testing.T) {
	for id, def := range cfg.Sound.Cues {
		data, err := Synthesize(def, 44100)
		if err != nil {
			t.Fatalf("sound %d: %v", id, err)
		}
		wantLen := int(def.NoteSecs*44100) * len(def.Notes) * 4
		if len(data) != wantLen {
			t.Errorf("sound %d: %d bytes, want %d", id, len(data), wantLen)
		}

		if first := int16(binary.LittleEndian.Uint16(data)); first != 0 {
			t.Errorf("sound %d: first sample %d, want silence", id, first)
		}
		var peak int16
		for i := 0; i+1 < len(data); i += 2 {
			if v := int16(binary.LittleEndian.Uint16(data[i:])); v > peak {
				peak = v
			}
		}
		if peak == 0 {
			t.Errorf("sound %d is silent", id)
		}
	}
}

func TestSynthesizeRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		def  cfg.CueDef
		rate int
	}{
		{"no notes", cfg.CueDef{NoteSecs: 0.1}, 44100},
		{"zero length", cfg.CueDef{Notes: []float64{440}}, 44100},
		{"bad rate", cfg.CueDef{Notes: []float64{440}, NoteSecs: 0.1}, 0},
	}
	for _, tt := range tests {
		if _, err := Synthesize(tt.def, tt.rate); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}
