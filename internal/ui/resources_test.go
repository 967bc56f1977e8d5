package ui

import (
	"bytes"
	"image/png"
	"testing"
)

func TestLogoResource(t *testing.T) {
	if LogoResource.Name() != AppIcon {
		t.Errorf("Name() = %q, expected %q", LogoResource.Name(), AppIcon)
	}

	img, err := png.Decode(bytes.NewReader(LogoResource.Content()))
	if err != nil {
		t.Fatalf("Embedded icon is not a PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() == 0 || b.Dy() == 0 {
		t.Errorf("Icon has empty bounds %v", b)
	}
}
