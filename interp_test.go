package tapeheads

import (
	"errors"
	"image/color"
	"math"
	"testing"
)

func TestParseInterpolation(t *testing.T) {
	tests := []struct {
		in      string
		want    Interpolation
		wantErr bool
	}{
		{"none", InterpNone, false},
		{"Linear", InterpLinear, false},
		{"CUBIC", InterpCubic, false},
		{"lanczos", InterpLanczos, false},
		{"Sinc-Lanczos", InterpLanczos, false},
		{"nearest", InterpNone, false},
		{"gaussian", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseInterpolation(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownInterpolation) {
					t.Errorf("ParseInterpolation(%q) error = %v, want ErrUnknownInterpolation", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseInterpolation(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseInterpolation(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestInterpolationText(t *testing.T) {
	var i Interpolation
	if err := i.UnmarshalText([]byte("Cubic")); err != nil {
		t.Fatalf("UnmarshalText error = %v", err)
	}
	b, err := i.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText error = %v", err)
	}
	if string(b) != "cubic" {
		t.Errorf("MarshalText = %q, want %q", b, "cubic")
	}
	if _, err := Interpolation(9).MarshalText(); err == nil {
		t.Error("MarshalText of unknown value should fail")
	}
}

func TestLanczos3At(t *testing.T) {
	tests := []struct {
		t    float64
		want float64
	}{
		{0, 1},
		{1, 0},
		{-2, 0},
		{3, 0},
		{4.5, 0},
	}
	for _, tt := range tests {
		if got := lanczos3At(tt.t); got != tt.want {
			t.Errorf("lanczos3At(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
	if got := lanczos3At(0.5); math.Abs(got-0.6079271) > 1e-6 {
		t.Errorf("lanczos3At(0.5) = %v, want ~0.6079", got)
	}
}

func TestScaleSolidStaysSolid(t *testing.T) {
	c := color.NRGBA{R: 255, G: 0, B: 0, A: 255}
	src := FromImage(solidImage(64, 36, c))

	for _, interp := range []Interpolation{InterpNone, InterpLinear, InterpCubic, InterpLanczos} {
		t.Run(interp.String(), func(t *testing.T) {
			for _, size := range [][2]int{{20, 10}, {100, 80}} {
				out, err := Scale(src, size[0], size[1], interp)
				if err != nil {
					t.Fatalf("Scale error = %v", err)
				}
				if out.Width() != size[0] || out.Height() != size[1] {
					t.Fatalf("size = %dx%d, want %dx%d", out.Width(), out.Height(), size[0], size[1])
				}
				if got := out.GetPixel(size[0]/2, size[1]/2); got != c {
					t.Errorf("center = %v, want %v", got, c)
				}
			}
		})
	}
}

func TestScaleErrors(t *testing.T) {
	src := NewPixmap(4, 4)
	if _, err := Scale(src, 0, 4, InterpCubic); !errors.Is(err, ErrEmptyLayer) {
		t.Errorf("Scale to zero width error = %v, want ErrEmptyLayer", err)
	}
	if _, err := Scale(src, 2, 2, Interpolation(42)); !errors.Is(err, ErrUnknownInterpolation) {
		t.Errorf("Scale with bad kernel error = %v, want ErrUnknownInterpolation", err)
	}
}

func TestScaleSameSizeCopies(t *testing.T) {
	src := FromImage(gradientImage(8, 8))
	out, err := Scale(src, 8, 8, InterpLanczos)
	if err != nil {
		t.Fatal(err)
	}
	if !out.Equal(src) {
		t.Error("same-size scale changed pixels")
	}
	if &out.Data()[0] == &src.Data()[0] {
		t.Error("same-size scale returned the source buffer")
	}
}
