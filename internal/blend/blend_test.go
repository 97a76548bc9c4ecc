package blend

import "testing"

// TestMulDiv255 tests the multiply and divide by 255 helper function.
func TestMulDiv255(t *testing.T) {
	tests := []struct {
		name string
		a, b byte
		want byte
	}{
		{"zero * zero", 0, 0, 0},
		{"zero * max", 0, 255, 0},
		{"max * max", 255, 255, 255},
		{"255 * 128", 255, 128, 128},
		{"100 * 100", 100, 100, 39},
		{"200 * 200", 200, 200, 157},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mulDiv255(tt.a, tt.b)
			if got != tt.want {
				t.Errorf("mulDiv255(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestGetFunc(t *testing.T) {
	tests := []struct {
		name string
		mode Mode
		src  [4]byte
		dst  [4]byte
		want [4]byte
	}{
		{"normal opaque source wins", ModeNormal, [4]byte{10, 20, 30, 255}, [4]byte{200, 200, 200, 255}, [4]byte{10, 20, 30, 255}},
		{"normal transparent source keeps dst", ModeNormal, [4]byte{0, 0, 0, 0}, [4]byte{200, 100, 50, 255}, [4]byte{200, 100, 50, 255}},
		{"additive sums", ModeAdditive, [4]byte{76, 150, 29, 255}, [4]byte{100, 50, 20, 255}, [4]byte{176, 200, 49, 255}},
		{"additive clamps", ModeAdditive, [4]byte{179, 105, 226, 255}, [4]byte{200, 200, 200, 255}, [4]byte{255, 255, 255, 255}},
		{"erase opaque clears", ModeErase, [4]byte{0, 0, 0, 255}, [4]byte{0, 0, 0, 255}, [4]byte{0, 0, 0, 0}},
		{"erase transparent keeps", ModeErase, [4]byte{0, 0, 0, 0}, [4]byte{9, 9, 9, 255}, [4]byte{9, 9, 9, 255}},
		{"unknown falls back to normal", Mode(99), [4]byte{1, 2, 3, 255}, [4]byte{9, 9, 9, 255}, [4]byte{1, 2, 3, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn := GetFunc(tt.mode)
			r, g, b, a := fn(tt.src[0], tt.src[1], tt.src[2], tt.src[3], tt.dst[0], tt.dst[1], tt.dst[2], tt.dst[3])
			got := [4]byte{r, g, b, a}
			if got != tt.want {
				t.Errorf("%v blend = %v, want %v", tt.mode, got, tt.want)
			}
		})
	}
}

func TestComposite(t *testing.T) {
	// 3x1 destination, 1x1 source placed at x=1.
	dst := []uint8{
		10, 10, 10, 255,
		10, 10, 10, 255,
		10, 10, 10, 255,
	}
	src := []uint8{5, 6, 7, 255}

	Composite(Span{Pix: dst, Stride: 12, X: 1}, Span{Pix: src, Stride: 4}, 1, 1, ModeAdditive)

	want := []uint8{
		10, 10, 10, 255,
		15, 16, 17, 255,
		10, 10, 10, 255,
	}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("dst[%d] = %d, want %d (dst=%v)", i, dst[i], want[i], dst)
		}
	}
}

func TestEraseMask(t *testing.T) {
	dst := []uint8{
		0, 0, 0, 255,
		0, 0, 0, 255,
	}
	mask := []uint8{255, 0}

	EraseMask(dst, mask, 2, 1)

	if dst[3] != 0 {
		t.Errorf("erased alpha = %d, want 0", dst[3])
	}
	if dst[7] != 255 {
		t.Errorf("kept alpha = %d, want 255", dst[7])
	}
}

func TestModeString(t *testing.T) {
	if got := ModeAdditive.String(); got != "additive" {
		t.Errorf("ModeAdditive.String() = %q, want %q", got, "additive")
	}
	if got := Mode(42).String(); got != "unknown" {
		t.Errorf("Mode(42).String() = %q, want %q", got, "unknown")
	}
}
