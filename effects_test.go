package tapeheads

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestPALResizesAndKeepsSolidColor(t *testing.T) {
	red := color.NRGBA{R: 255, A: 255}
	f, l := NewFrame(solidImage(1920, 1080, red))

	opts := PALOptions{Format: FormatPALS, Down: InterpCubic, Up: InterpLanczos}
	out, err := PAL(f, l, opts)
	if err != nil {
		t.Fatalf("PAL() error = %v", err)
	}

	if f.Width() != CanonicalWidth || f.Height() != CanonicalHeight {
		t.Fatalf("frame size = %dx%d, want 720x576", f.Width(), f.Height())
	}
	assertSingleLayer(t, f, out)

	img := f.Image()
	if got := color.NRGBAModel.Convert(img.At(360, 288)); got != red {
		t.Errorf("center = %v, want %v", got, red)
	}
}

func TestPALDefaults(t *testing.T) {
	for _, format := range []Format{FormatPALS, FormatPALD} {
		t.Run(format.String(), func(t *testing.T) {
			f, l := NewFrame(gradientImage(320, 240))
			opts := DefaultPALOptions()
			opts.Format = format

			out, err := PAL(f, l, opts)
			if err != nil {
				t.Fatalf("PAL() error = %v", err)
			}
			assertSingleLayer(t, f, out)
			if out.Bounds() != f.Bounds() {
				t.Errorf("layer bounds = %v, want %v", out.Bounds(), f.Bounds())
			}
			for _, x := range []int{0, 360, 719} {
				if a := out.Pixmap().GetPixel(x, 300).A; a != 255 {
					t.Errorf("pixel (%d,300) alpha = %d, want opaque", x, a)
				}
			}
		})
	}
}

func TestPALRejectsVHSFormat(t *testing.T) {
	f, l := canonicalFrame(t)
	before := l.Pixmap().Clone()

	opts := DefaultPALOptions()
	opts.Format = FormatVHS
	if _, err := PAL(f, l, opts); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("error = %v, want ErrUnknownFormat", err)
	}
	assertSingleLayer(t, f, l)
	if !l.Pixmap().Equal(before) {
		t.Error("frame changed after rejected options")
	}
}

func TestVHSGlitchOnlyTouchesGlitchRows(t *testing.T) {
	opts := VHSOptions{Down: InterpCubic, Up: InterpLanczos}

	fPlain, lPlain := canonicalFrame(t)
	plain, err := VHS(fPlain, lPlain, opts)
	if err != nil {
		t.Fatalf("VHS() error = %v", err)
	}

	opts.Glitch = true
	opts.GlitchRow = 0
	fGlitch, lGlitch := canonicalFrame(t)
	glitched, err := VHS(fGlitch, lGlitch, opts)
	if err != nil {
		t.Fatalf("VHS() error = %v", err)
	}

	for y := 0; y < len(GlitchProfile); y++ {
		if rowsEqual(plain.Pixmap(), glitched.Pixmap(), y) {
			t.Errorf("row %d identical, want glitched", y)
		}
	}
	for y := len(GlitchProfile); y < CanonicalHeight; y++ {
		if !rowsEqual(plain.Pixmap(), glitched.Pixmap(), y) {
			t.Fatalf("row %d differs, want identical", y)
		}
	}
}

func TestVHSDefaults(t *testing.T) {
	f, l := NewFrame(gradientImage(1024, 768))

	out, err := VHS(f, l, DefaultVHSOptions())
	if err != nil {
		t.Fatalf("VHS() error = %v", err)
	}
	assertSingleLayer(t, f, out)
	if !IsCanonical(f) {
		t.Errorf("frame size = %v, want canonical", f.Bounds().Size())
	}
	if got := out.Pixmap().GetPixel(360, 5); got != black {
		t.Errorf("top margin = %v, want black", got)
	}
}

func TestVHSGlitchRowRange(t *testing.T) {
	f, l := canonicalFrame(t)

	opts := DefaultVHSOptions()
	opts.GlitchRow = MaxGlitchRow + 1
	if _, err := VHS(f, l, opts); !errors.Is(err, ErrGlitchRowRange) {
		t.Fatalf("error = %v, want ErrGlitchRowRange", err)
	}

	// An out of range row is ignored when the glitch is off.
	opts.Glitch = false
	if _, err := VHS(f, l, opts); err != nil {
		t.Errorf("VHS() with glitch off error = %v", err)
	}
}

func TestEffectsRejectInvalidInput(t *testing.T) {
	palette := color.Palette{color.Black, color.White}
	indexed := image.NewPaletted(image.Rect(0, 0, 64, 48), palette)
	cmyk := image.NewCMYK(image.Rect(0, 0, 64, 48))

	for _, img := range []image.Image{indexed, cmyk} {
		f, l := NewFrame(img)
		before := l.Pixmap().Clone()

		if _, err := PAL(f, l, DefaultPALOptions()); !errors.Is(err, ErrInvalidInputFormat) {
			t.Errorf("PAL(%T) error = %v, want ErrInvalidInputFormat", img, err)
		}
		if _, err := VHS(f, l, DefaultVHSOptions()); !errors.Is(err, ErrInvalidInputFormat) {
			t.Errorf("VHS(%T) error = %v, want ErrInvalidInputFormat", img, err)
		}
		if f.Width() != 64 || f.Height() != 48 || !l.Pixmap().Equal(before) {
			t.Errorf("%T frame changed after rejection", img)
		}
	}
}

func TestEffectsRejectBadArguments(t *testing.T) {
	f, l := canonicalFrame(t)
	stray := NewLayer("stray", NewPixmap(8, 8))

	if _, err := PAL(f, stray, DefaultPALOptions()); !errors.Is(err, ErrLayerNotInFrame) {
		t.Errorf("stray layer error = %v, want ErrLayerNotInFrame", err)
	}
	if _, err := VHS(f, nil, DefaultVHSOptions()); !errors.Is(err, ErrEmptyLayer) {
		t.Errorf("nil layer error = %v, want ErrEmptyLayer", err)
	}

	opts := DefaultPALOptions()
	opts.Up = Interpolation(42)
	if _, err := PAL(f, l, opts); !errors.Is(err, ErrUnknownInterpolation) {
		t.Errorf("bad kernel error = %v, want ErrUnknownInterpolation", err)
	}
}

func TestGrayInputExportsGray(t *testing.T) {
	g := image.NewGray(image.Rect(0, 0, 160, 120))
	for i := range g.Pix {
		g.Pix[i] = uint8(i)
	}
	f, l := NewFrame(g)

	if _, err := PAL(f, l, DefaultPALOptions()); err != nil {
		t.Fatalf("PAL() error = %v", err)
	}
	out, ok := f.Image().(*image.Gray)
	if !ok {
		t.Fatalf("Image() = %T, want *image.Gray", f.Image())
	}
	if out.Bounds() != image.Rect(0, 0, CanonicalWidth, CanonicalHeight) {
		t.Errorf("bounds = %v, want 720x576", out.Bounds())
	}
}

func TestRunRollsBackOnFailure(t *testing.T) {
	f, l := NewFrame(gradientImage(100, 80))
	before := l.Pixmap().Clone()
	boom := errors.New("boom")

	steps := []step{
		{"add layer", func(cur *Layer) (*Layer, error) {
			extra := NewLayer("extra", NewPixmap(CanonicalWidth, CanonicalHeight))
			return cur, f.AddLayer(extra, cur)
		}},
		{"fill", func(cur *Layer) (*Layer, error) {
			cur.Pixmap().Fill(black)
			return cur, nil
		}},
		{"fail", func(*Layer) (*Layer, error) { return nil, boom }},
	}

	if _, err := run("test", f, l, InterpCubic, InterpLanczos, steps); !errors.Is(err, boom) {
		t.Fatalf("run() error = %v, want %v", err, boom)
	}
	if f.Width() != 100 || f.Height() != 80 {
		t.Errorf("frame size = %dx%d, want 100x80", f.Width(), f.Height())
	}
	assertSingleLayer(t, f, l)
	if !l.Pixmap().Equal(before) {
		t.Error("layer pixels not restored")
	}
	if l.Offset() != (image.Point{}) {
		t.Errorf("layer offset = %v, want origin", l.Offset())
	}
}
