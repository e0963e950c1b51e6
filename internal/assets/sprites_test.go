package assets

import (
	"testing"
)

func TestToasterSheetDimensions(t *testing.T) {
	img := CreateToasterSheet()
	b := img.Bounds()
	if b.Dx() != 256 || b.Dy() != 64 {
		t.Errorf("toaster sheet = %dx%d, want 256x64", b.Dx(), b.Dy())
	}
}

func TestFishSheetDimensions(t *testing.T) {
	img := CreateFishSheet(0)
	b := img.Bounds()
	if b.Dx() != 144 || b.Dy() != 48 {
		t.Errorf("fish sheet = %dx%d, want 144x48", b.Dx(), b.Dy())
	}
}

func TestBubbleDimensions(t *testing.T) {
	b := CreateBubble().Bounds()
	if b.Dx() != 50 || b.Dy() != 56 {
		t.Errorf("bubble = %dx%d, want 50x56", b.Dx(), b.Dy())
	}
}

func TestStarfieldVariantsDiffer(t *testing.T) {
	a := CreateStarfield(0)
	b := CreateStarfield(1)
	same := true
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("starfield variants 0 and 1 are identical")
	}
}

func TestGlobeTextureHasLand(t *testing.T) {
	img := CreateGlobeTexture()
	found := false
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y && !found; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) == Palette.Land {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("globe texture has no land pixels")
	}
}

func TestPixelsUnknownAsset(t *testing.T) {
	if _, err := Pixels("no-such-asset"); err == nil {
		t.Error("expected error for unknown asset")
	}
}

func TestQuotesNonEmpty(t *testing.T) {
	q := Quotes()
	if len(q) == 0 {
		t.Fatal("no built-in quotes")
	}
	for i, line := range q {
		if line == "" {
			t.Errorf("quote %d is empty", i)
		}
	}
}
