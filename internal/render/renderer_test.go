package render

import (
	"errors"
	"strings"
	"testing"

	"tile-sandbox/internal/color"
	"tile-sandbox/internal/geom"
	"tile-sandbox/internal/layer"
)

// recordingSurface counts presented frames.
type recordingSurface struct {
	frames int
	last   *Frame
}

func (s *recordingSurface) Present(f *Frame) {
	s.frames++
	s.last = f
}

func newLayer(t *testing.T, w, h int) *layer.Layer {
	t.Helper()
	l, err := layer.New(geom.Vector{X: w, Y: h})
	if err != nil {
		t.Fatalf("layer.New: %v", err)
	}
	return l
}

func TestNewRendererRejectsNonPositiveSize(t *testing.T) {
	if _, err := NewRenderer(nil, 0, 24); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("expected ErrInvalidSize, got %v", err)
	}
	if _, err := NewRenderer(nil, 80, -1); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("expected ErrInvalidSize, got %v", err)
	}
}

func TestSetSize(t *testing.T) {
	r, _ := NewRenderer(nil, 4, 4)
	if r.Scale() != 1 {
		t.Fatalf("default scale = %d, want 1", r.Scale())
	}
	r.SetSize(35)
	r.SetSize(0)
	if r.Scale() != 35 || r.Frame().Scale != 35 {
		t.Errorf("scale = %d (frame %d), want 35", r.Scale(), r.Frame().Scale)
	}
}

func TestAddLayerDuplicateNameReplaces(t *testing.T) {
	r, _ := NewRenderer(nil, 4, 4)
	first := newLayer(t, 4, 4)
	second := newLayer(t, 4, 4)
	r.AddLayer("bg", first)
	r.AddLayer("actor", newLayer(t, 4, 4))
	r.AddLayer("bg", second)

	got, ok := r.Layer("bg")
	if !ok || got != second {
		t.Fatalf("expected the second bg layer to be registered")
	}
	if names := strings.Join(r.Names(), ","); names != "bg,actor" {
		t.Errorf("names = %q, want bg,actor", names)
	}
}

func TestOnBeforeDrawRunsBeforeLayerCommit(t *testing.T) {
	r, _ := NewRenderer(nil, 4, 4)
	bg := newLayer(t, 4, 4)
	r.AddLayer("bg", bg)

	calls := 0
	seen := -1
	r.OnBeforeDraw(func() { calls += 100 })
	r.OnBeforeDraw(func() {
		calls++
		seen = len(bg.Operations())
	})

	bg.Draw(layer.NewTile(layer.TileOptions{Char: "."}))
	r.Commit()

	if calls != 1 {
		t.Errorf("expected only the last hook to run once, calls = %d", calls)
	}
	if seen != 1 {
		t.Errorf("hook saw %d pending operations, want 1", seen)
	}
}

func TestHookMutationAffectsFrame(t *testing.T) {
	r, _ := NewRenderer(nil, 1, 1)
	bg := newLayer(t, 1, 1)
	r.AddLayer("bg", bg)
	r.OnBeforeDraw(func() {
		for _, op := range bg.Operations() {
			op.Color.A = 0
		}
	})
	bg.Draw(layer.NewTile(layer.TileOptions{Char: "."}))
	r.Commit()

	if got := r.Frame().At(0, 0).Fg; got != color.Black {
		t.Errorf("expected fully transparent glyph to show the clear colour, got %+v", got)
	}
}

func TestCommitPresentsToSurface(t *testing.T) {
	surface := &recordingSurface{}
	r, _ := NewRenderer(surface, 2, 2)
	r.Commit()
	r.Commit()
	if surface.frames != 2 || surface.last != r.Frame() {
		t.Errorf("expected two presents of the renderer frame, got %d", surface.frames)
	}
}

func TestBackgroundAndPlayerEndToEnd(t *testing.T) {
	const w, h = 80, 24
	r, _ := NewRenderer(nil, w, h)
	r.SetSize(35)
	bg := newLayer(t, w, h)
	actor := newLayer(t, w, h)
	r.AddLayer("background", bg)
	r.AddLayer("actor", actor)

	for i := 0; i < w*h; i++ {
		bg.Draw(layer.NewTile(layer.TileOptions{Char: ".", Pos: geom.Vector{X: i % w, Y: i / w}}))
	}
	red := color.New(255, 0, 0, 1)
	actor.Draw(layer.NewTile(layer.TileOptions{
		Char:       "@",
		Color:      &red,
		Background: &color.Transparent,
		Pos:        geom.Vector{X: 40, Y: 12},
	}))
	r.Commit()

	f := r.Frame()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			want := "."
			if x == 40 && y == 12 {
				want = "@"
			}
			if got := f.At(x, y).Char; got != want {
				t.Fatalf("cell (%d,%d) = %q, want %q", x, y, got, want)
			}
		}
	}
	if got := f.At(40, 12).Fg; got != red {
		t.Errorf("player colour = %+v, want %+v", got, red)
	}
}

func TestCompositeIsAssociativeInLayerOrder(t *testing.T) {
	white := color.New(255, 255, 255, 0.5)
	blue := color.New(0, 0, 255, 0.25)
	green := color.New(0, 200, 0, 0.6)
	a := layer.NewTile(layer.TileOptions{Char: ".", Background: &color.Black})
	b := layer.NewTile(layer.TileOptions{Char: "", Background: &blue, Color: &white})
	c := layer.NewTile(layer.TileOptions{Char: "@", Background: &green, Color: &white})

	base := Cell{Fg: color.Black, Bg: color.Black}
	all := Composite(base, a, b, c)
	stepwise := Over(Composite(base, a, b), c)
	if all != stepwise {
		t.Errorf("composite [A,B,C] = %+v, [A,B] then C = %+v", all, stepwise)
	}
}

func TestOverSkipsEmptyAndKeepsLowerGlyph(t *testing.T) {
	base := Cell{Char: ".", Fg: color.White, Bg: color.Black}
	if got := Over(base, nil); got != base {
		t.Errorf("nil tile changed the cell: %+v", got)
	}
	tint := color.New(255, 0, 0, 0)
	got := Over(base, layer.NewTile(layer.TileOptions{Background: &tint}))
	if got.Char != "." || got.Fg != color.White {
		t.Errorf("charless tile replaced the lower glyph: %+v", got)
	}
}

func TestRowRendersBlanks(t *testing.T) {
	f := NewFrame(3, 1, 1)
	f.Cells[1].Char = "x"
	if got := f.Row(0); got != " x " {
		t.Errorf("Row = %q, want %q", got, " x ")
	}
}
