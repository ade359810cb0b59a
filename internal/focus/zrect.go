package focus

import uv "github.com/charmbracelet/ultraviolet"

// ZRect is a clickable region with a z priority. Higher z is drawn above
// lower z; a widget showing a popup reports its base area at z 0 and the
// popup above it.
type ZRect struct {
	Area uv.Rectangle
	Z    int
}

// NewZRect creates a region at priority z.
func NewZRect(area uv.Rectangle, z int) ZRect {
	return ZRect{Area: area, Z: z}
}

// Contains reports whether p lies inside the region.
func (z ZRect) Contains(p uv.Position) bool {
	return p.In(z.Area)
}

// UnionArea returns the smallest rectangle covering every region.
func UnionArea(zareas []ZRect) uv.Rectangle {
	var area uv.Rectangle
	for _, z := range zareas {
		area = area.Union(z.Area)
	}
	return area
}
