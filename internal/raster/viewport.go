package raster

// Viewport maps origin-centred virtual coordinates with y pointing up onto a
// device surface whose row 0 is the top of the panel.
type Viewport struct {
	dst Surface
}

func NewViewport(dst Surface) *Viewport {
	return &Viewport{dst: dst}
}

func (v *Viewport) Bounds() (int, int) { return v.dst.Bounds() }

func (v *Viewport) DrawPixel(x, y int, c Color) {
	dx, dy := v.ToDevice(x, y)
	v.dst.DrawPixel(dx, dy, c)
}

// ToDevice converts a virtual coordinate to a device pixel.
func (v *Viewport) ToDevice(x, y int) (int, int) {
	w, h := v.dst.Bounds()
	return ToDevice(x, y, w, h)
}

// ToDevice applies x+w/2, h/2-y using integer halving of the panel size.
func ToDevice(x, y, w, h int) (int, int) {
	return x + w>>1, h>>1 - y
}
