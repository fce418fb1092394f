package preview

import (
	"image"
	"image/color"
	"math"
	"testing"

	"planetwalk/internal/sim"
)

func TestRotateAxes(t *testing.T) {
	tests := []struct {
		name string
		got  Vec3
		want Vec3
	}{
		{"RotateY quarter turn maps +X to -Z", Vec3{1, 0, 0}.RotateY(math.Pi / 2), Vec3{0, 0, -1}},
		{"RotateX quarter turn maps +Y to +Z", Vec3{0, 1, 0}.RotateX(math.Pi / 2), Vec3{0, 0, 1}},
		{"RotateY leaves +Y alone", Vec3{0, 1, 0}.RotateY(1.23), Vec3{0, 1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if math.Abs(tt.got.X-tt.want.X) > 1e-12 ||
				math.Abs(tt.got.Y-tt.want.Y) > 1e-12 ||
				math.Abs(tt.got.Z-tt.want.Z) > 1e-12 {
				t.Errorf("got %+v, want %+v", tt.got, tt.want)
			}
		})
	}
}

func TestDrawLineBoundsAndEndpoints(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	col := color.RGBA{255, 0, 0, 255}

	DrawLine(img, 2, 5, 10, 5, col)
	for x := 2; x <= 10; x++ {
		if img.RGBAAt(x, 5) != col {
			t.Errorf("pixel (%d,5) not set", x)
		}
	}

	// Degenerate one-pixel line and fully out-of-bounds line must not panic.
	DrawLine(img, 7, 7, 7, 7, col)
	if img.RGBAAt(7, 7) != col {
		t.Error("single-point line did not set its pixel")
	}
	DrawLine(img, -50, -50, -10, -40, col)
}

func TestRenderSceneComposition(t *testing.T) {
	w := sim.NewWorld()
	opts := Options{Width: 400, Height: 300, Stars: 300, StarSeed: 9}

	img := Render(w, opts)

	if got := img.Bounds(); got.Dx() != opts.Width || got.Dy() != opts.Height {
		t.Fatalf("image bounds %v, want %dx%d", got, opts.Width, opts.Height)
	}

	counts := map[color.RGBA]int{}
	for x := 0; x < opts.Width; x++ {
		for y := 0; y < opts.Height; y++ {
			counts[img.RGBAAt(x, y)]++
		}
	}
	if counts[avatarColour] == 0 {
		t.Error("no avatar pixels in render")
	}
	if counts[planetColour] == 0 {
		t.Error("no planet pixels in render")
	}
	if counts[starColour] == 0 {
		t.Error("no star pixels in render")
	}
	if counts[background] < opts.Width*opts.Height/2 {
		t.Error("background not dominant; projection likely smeared")
	}

	// The follow camera centers the avatar: yellow must appear inside the
	// central quarter of the frame.
	found := false
	for x := opts.Width * 3 / 8; x < opts.Width*5/8 && !found; x++ {
		for y := opts.Height * 3 / 8; y < opts.Height*5/8; y++ {
			if img.RGBAAt(x, y) == avatarColour {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("avatar not centered in frame")
	}
}

func TestRenderDeterministicPerSeed(t *testing.T) {
	w := sim.NewWorld()
	opts := Options{Width: 200, Height: 150, Stars: 200, StarSeed: 4}

	a := Render(w, opts)
	b := Render(w, opts)
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			t.Fatalf("same world and seed diverged at byte %d", i)
		}
	}

	opts.StarSeed = 5
	c := Render(w, opts)
	same := true
	for i := range a.Pix {
		if a.Pix[i] != c.Pix[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different star seeds produced identical frames")
	}
}
