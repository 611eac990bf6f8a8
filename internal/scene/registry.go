package scene

import (
	"context"
	"fmt"

	"github.com/san-kum/tinyraster/internal/display"
	"github.com/san-kum/tinyraster/internal/raster"
)

// Scene is a registered renderer.
type Scene struct {
	Kind    Kind
	Name    string
	Summary string
	draw    func(*frame) error
}

type Registry struct {
	scenes map[Kind]Scene
}

func NewRegistry() *Registry {
	r := &Registry{scenes: make(map[Kind]Scene)}

	r.add(RotatedSquares, "20 nested squares in random colours", drawSquares)
	r.add(BranchingTrees, "a forest of 15 trees on a sky gradient", drawTrees)
	r.add(Cube3D, "shaded cube with shadow and a tree on its face", drawCube)
	r.add(HalfSphere3D, "diffuse-lit half sphere from contour rings", drawSphere)

	return r
}

func (r *Registry) add(k Kind, summary string, draw func(*frame) error) {
	r.scenes[k] = Scene{Kind: k, Name: k.String(), Summary: summary, draw: draw}
}

// Get looks a scene up by name.
func (r *Registry) Get(name string) (Scene, error) {
	k, err := ParseKind(name)
	if err != nil {
		return Scene{}, err
	}
	return r.Lookup(k)
}

func (r *Registry) Lookup(k Kind) (Scene, error) {
	s, ok := r.scenes[k]
	if !ok {
		return Scene{}, fmt.Errorf("%w: %s", ErrUnknownScene, k)
	}
	return s, nil
}

// List returns scene names in menu order.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.scenes))
	for _, k := range Kinds() {
		if s, ok := r.scenes[k]; ok {
			names = append(names, s.Name)
		}
	}
	return names
}

// Scenes returns every registered scene in menu order.
func (r *Registry) Scenes() []Scene {
	out := make([]Scene, 0, len(r.scenes))
	for _, k := range Kinds() {
		if s, ok := r.scenes[k]; ok {
			out = append(out, s)
		}
	}
	return out
}

var defaultRegistry = NewRegistry()

// Default returns the registry used by Render.
func Default() *Registry { return defaultRegistry }

// Render draws one scene onto dst, pausing through clk.
func Render(kind Kind, p Params, dst raster.Surface, clk display.Delayer) error {
	return RenderContext(context.Background(), kind, p, dst, clk)
}

// RenderContext is Render with cancellation checked between drawing steps.
func RenderContext(ctx context.Context, kind Kind, p Params, dst raster.Surface, clk display.Delayer) error {
	s, err := defaultRegistry.Lookup(kind)
	if err != nil {
		return err
	}
	return s.Render(ctx, p, dst, clk)
}

// Render draws s onto dst.
func (s Scene) Render(ctx context.Context, p Params, dst raster.Surface, clk display.Delayer) error {
	if clk == nil {
		clk = display.NoDelay
	}
	if s.Kind.Is3D() {
		if err := p.Camera.Validate(); err != nil {
			return &RenderError{Kind: s.Kind, Wrapped: err}
		}
	}
	f := &frame{
		ctx:  ctx,
		dst:  dst,
		view: raster.NewViewport(dst),
		clk:  clk,
		p:    p,
		rnd:  p.rand(),
	}
	if err := s.draw(f); err != nil {
		return &RenderError{Kind: s.Kind, Wrapped: err}
	}
	return nil
}
