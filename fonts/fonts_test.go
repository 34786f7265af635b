package fonts

import "testing"

func TestLoadDefaultFonts(t *testing.T) {
	if err := LoadDefaultFonts(); err != nil {
		t.Fatal(err)
	}
	for _, name := range []FontName{HUD, Title} {
		if name.Get() == nil {
			t.Errorf("font %s missing", name)
		}
	}
	if h, t2 := HUD.Get().Metrics().Height, Title.Get().Metrics().Height; h >= t2 {
		t.Errorf("HUD height %v not smaller than title height %v", h, t2)
	}
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	if err := LoadFontWithSize("broken", []byte("not a font"), 10); err == nil {
		t.Error("expected parse error")
	}
}
