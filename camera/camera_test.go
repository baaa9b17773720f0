package camera

import (
	"errors"
	"testing"

	"github.com/Matiiss/plasma-engine/shared/gamemath"
	"github.com/yohamta/donburi/features/math"
)

func newDefaultCamera() *Camera2D {
	return New(gamemath.Vec(0, 0), gamemath.Vec(640, 360))
}

func TestNewFromCoordsRequiresTwoComponents(t *testing.T) {
	cases := []struct {
		name     string
		position []float64
		viewport []float64
		wantErr  bool
	}{
		{"valid", []float64{0, 0}, []float64{640, 360}, false},
		{"missing_position", nil, []float64{640, 360}, true},
		{"missing_viewport", []float64{0, 0}, nil, true},
		{"three_components", []float64{0, 0, 0}, []float64{640, 360}, true},
		{"one_component", []float64{0, 0}, []float64{640}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cam, err := NewFromCoords(c.position, c.viewport)
			if c.wantErr {
				if !errors.Is(err, ErrInvalidCoordinate) {
					t.Fatalf("expected ErrInvalidCoordinate, got %v", err)
				}
				if cam != nil {
					t.Fatalf("expected nil camera on error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cam.Viewport() != gamemath.NewRect(0, 0, 640, 360) {
				t.Fatalf("unexpected viewport %v", cam.Viewport())
			}
		})
	}
}

func TestDefaults(t *testing.T) {
	cam := newDefaultCamera()
	if cam.Zoom != 1 {
		t.Fatalf("expected default zoom 1, got %v", cam.Zoom)
	}
	if cam.Position() != gamemath.Vec(0, 0) {
		t.Fatalf("expected origin position, got %v", cam.Position())
	}
	if cam.Viewport().Center() != gamemath.Vec(320, 180) {
		t.Fatalf("expected viewport center (320, 180), got %v", cam.Viewport().Center())
	}
}

func TestSetCoords(t *testing.T) {
	cam := newDefaultCamera()

	if err := cam.SetPositionCoords(10, -10); err != nil {
		t.Fatalf("SetPositionCoords: %v", err)
	}
	if cam.Position() != gamemath.Vec(10, -10) {
		t.Fatalf("expected (10, -10), got %v", cam.Position())
	}
	if err := cam.SetPositionCoords(1); !errors.Is(err, ErrInvalidCoordinate) {
		t.Fatalf("expected ErrInvalidCoordinate, got %v", err)
	}
	if cam.Position() != gamemath.Vec(10, -10) {
		t.Fatalf("failed set changed position to %v", cam.Position())
	}

	if err := cam.SetViewportCoords(320, 180); err != nil {
		t.Fatalf("SetViewportCoords: %v", err)
	}
	if cam.Viewport() != gamemath.NewRect(0, 0, 320, 180) {
		t.Fatalf("unexpected viewport %v", cam.Viewport())
	}
}

func TestTranslate(t *testing.T) {
	cases := []math.Vec2{gamemath.Vec(0, 0), gamemath.Vec(-10, -10), gamemath.Vec(10, 10)}
	positions := []math.Vec2{gamemath.Vec(0, 0), gamemath.Vec(10, 10), gamemath.Vec(-10, -10)}
	zooms := []float64{0.25, 0.5, 1, 2, 4}

	cam := newDefaultCamera()
	for _, zoom := range zooms {
		cam.Zoom = zoom
		for _, pos := range positions {
			cam.SetPosition(pos)
			for _, p := range cases {
				want := gamemath.Vec((p.X-pos.X)*zoom, (p.Y-pos.Y)*zoom)
				if got := cam.Translate(p); got != want {
					t.Fatalf("zoom %v pos %v: Translate(%v) = %v, want %v", zoom, pos, p, got, want)
				}
			}
		}
	}
}

func TestTranslateRect(t *testing.T) {
	cam := newDefaultCamera()
	cam.SetPosition(gamemath.Vec(10, 10))
	cam.Zoom = 2

	got := cam.TranslateRect(gamemath.NewRect(20, 30, 8, 4))
	want := gamemath.NewRect(20, 40, 16, 8)
	if got != want {
		t.Fatalf("TranslateRect = %v, want %v", got, want)
	}
}

func TestFollow(t *testing.T) {
	for _, speed := range []float64{0, 0.5, 1} {
		cam := newDefaultCamera()
		cam.Follow(gamemath.Vec(640, 360), speed, nil)

		want := gamemath.Vec(320*speed, 180*speed)
		if cam.Position() != want {
			t.Fatalf("lerp %v: expected %v, got %v", speed, want, cam.Position())
		}
	}
}

func TestFollowConverges(t *testing.T) {
	cam := newDefaultCamera()
	target := gamemath.Vec(1000, 500)
	for i := 0; i < 200; i++ {
		cam.Follow(target, 0.5, nil)
	}
	if cam.Position() != gamemath.Vec(680, 320) {
		t.Fatalf("expected camera to settle at (680, 320), got %v", cam.Position())
	}
}

func TestFollowRoundsToWholePixels(t *testing.T) {
	cam := newDefaultCamera()
	cam.Follow(gamemath.Vec(321, 181), 0.5, nil)
	if cam.Position() != gamemath.Vec(1, 1) {
		t.Fatalf("expected (0.5, 0.5) to round to (1, 1), got %v", cam.Position())
	}
}

func TestFollowFreedomBox(t *testing.T) {
	center := gamemath.Vec(320, 180)
	box := gamemath.NewRect(0, 0, 64, 36).WithCenter(center)

	cases := []struct {
		name   string
		target math.Vec2
		speed  float64
		want   math.Vec2
	}{
		{"at_center", center, 1, gamemath.Vec(0, 0)},
		{"just_inside_far_corner", gamemath.Vec(320+32-1, 180+18-1), 1, gamemath.Vec(0, 0)},
		{"inside_any_speed", gamemath.Vec(300, 170), 0.5, gamemath.Vec(0, 0)},
		{"far_corner_plus_epsilon", gamemath.Vec(320+32+0.5, 180+18+0.5), 1, gamemath.Vec(32, 18)},
		{"full_box_past_center", gamemath.Vec(320+64, 180+36), 1, gamemath.Vec(32, 18)},
		{"half_speed", gamemath.Vec(320+64, 180+36), 0.5, gamemath.Vec(16, 9)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cam := newDefaultCamera()
			cam.Follow(c.target, c.speed, &box)
			if cam.Position() != c.want {
				t.Fatalf("expected %v, got %v", c.want, cam.Position())
			}
		})
	}
}

func TestFollowFreedomBoxSingleAxisExit(t *testing.T) {
	box := gamemath.NewRect(0, 0, 64, 36).WithCenter(gamemath.Vec(320, 180))

	cases := []struct {
		name   string
		target math.Vec2
		want   math.Vec2
	}{
		// y is centered but still corrected; the tie between the top (+18)
		// and bottom (-18) edges goes to the top edge
		{"exit_right", gamemath.Vec(384, 180), gamemath.Vec(32, -18)},
		// x is centered, tie goes to the left edge (+32)
		{"exit_bottom", gamemath.Vec(320, 216), gamemath.Vec(-32, 18)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cam := newDefaultCamera()
			cam.Follow(c.target, 1, &box)
			if cam.Position() != c.want {
				t.Fatalf("expected %v, got %v", c.want, cam.Position())
			}
		})
	}
}

func TestFollowDegenerateFreedomBox(t *testing.T) {
	box := gamemath.NewRect(320, 180, 0, 0)
	cam := newDefaultCamera()
	cam.Follow(gamemath.Vec(320, 180), 1, &box)
	if cam.Position() != gamemath.Vec(0, 0) {
		t.Fatalf("expected zero-size box at the target to leave the camera at the origin, got %v", cam.Position())
	}
}

func TestSnap(t *testing.T) {
	cam := newDefaultCamera()
	cam.Snap(gamemath.Vec(1000, 1000))
	if cam.Position() != gamemath.Vec(680, 820) {
		t.Fatalf("expected (680, 820), got %v", cam.Position())
	}
}
