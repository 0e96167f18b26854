package loop

import (
	"math"

	"github.com/tomz197/mergefall/internal/draw"
	"github.com/tomz197/mergefall/internal/physics"
	"github.com/tomz197/mergefall/internal/shape"
)

var (
	wallColor  = draw.GrayColor(8)
	guideColor = draw.GrayColor(4)
	hudColor   = draw.GrayColor(14)
)

// drawFrame renders one complete frame: field walls, live shapes, the drop
// guide under the controlled shape, particles, and the HUD line.
func drawFrame(state *State, out *draw.ChunkWriter, canvas *draw.Canvas) error {
	canvas.Clear()

	drawField(canvas)
	drawShapes(state, canvas)
	drawGuide(state, canvas)
	for _, p := range state.Particles {
		p.Draw(canvas)
	}

	canvas.Render(out)
	drawHUD(state, out, canvas)
	return out.Flush()
}

// drawField outlines the play area: two side walls and the floor.
func drawField(c *draw.Canvas) {
	w := c.LogicalWidth()
	h := c.LogicalHeight()
	c.DrawLine(draw.Point{X: 0, Y: 0}, draw.Point{X: 0, Y: h - 1}, wallColor)
	c.DrawLine(draw.Point{X: w - 1, Y: 0}, draw.Point{X: w - 1, Y: h - 1}, wallColor)
	c.DrawLine(draw.Point{X: 0, Y: h - 1}, draw.Point{X: w - 1, Y: h - 1}, wallColor)
}

// drawShapes renders every live shape at its physics pose.
func drawShapes(state *State, c *draw.Canvas) {
	catalog := state.Game.Catalog()
	state.Game.Each(func(b physics.Body, tag shape.Tag) {
		st := catalog.Tier(tag.Kind, tag.Tier)
		x, y := state.World.Position(b)

		switch tag.Kind {
		case shape.KindCircle:
			c.FillCircle(x, y, st.Size, st.Color)
		case shape.KindSquare:
			drawRotatedSquare(c, x, y, st.Size, state.World.Angle(b), st.Color)
		default:
			drawRotatedTriangle(c, x, y, st.Size, state.World.Angle(b), st.Color)
		}
	})
}

func drawRotatedSquare(c *draw.Canvas, x, y, half, angle float64, color uint8) {
	pts := c.BorrowPoints(4)
	sin, cos := math.Sincos(angle)
	corners := [4][2]float64{{-half, -half}, {half, -half}, {half, half}, {-half, half}}
	for i, p := range corners {
		pts[i] = draw.Point{
			X: x + p[0]*cos - p[1]*sin,
			Y: y + p[0]*sin + p[1]*cos,
		}
	}
	c.DrawPolygon(pts, true, color)
}

func drawRotatedTriangle(c *draw.Canvas, x, y, circumradius, angle float64, color uint8) {
	pts := c.BorrowPoints(3)
	for i := 0; i < 3; i++ {
		// Vertex angles of an upward-pointing equilateral triangle.
		a := angle - math.Pi/2 + float64(i)*2*math.Pi/3
		sin, cos := math.Sincos(a)
		pts[i] = draw.Point{X: x + circumradius*cos, Y: y + circumradius*sin}
	}
	c.DrawPolygon(pts, true, color)
}

// drawGuide drops a faint vertical line under the controlled shape so the
// player can aim.
func drawGuide(state *State, c *draw.Canvas) {
	b, ok := state.Game.Controlled()
	if !ok {
		return
	}
	x, y := state.World.Position(b)
	if y < 0 {
		y = 0
	}
	c.DrawLine(draw.Point{X: x, Y: y}, draw.Point{X: x, Y: c.LogicalHeight() - 2}, guideColor)
}

// drawHUD writes the shape count and the key hints above the canvas.
func drawHUD(state *State, out *draw.ChunkWriter, canvas *draw.Canvas) {
	row := canvas.OffsetRow()
	if row < 1 {
		row = 1
	}
	out.WriteAt(canvas.OffsetCol()+1, row, "\033[38;5;"+itoa(int(hudColor))+"m")
	out.WriteString("mergefall  a/d or ←/→ move  q quit  shapes: ")
	out.WriteString(itoa(state.Game.Count()))
	out.WriteString("   \033[0m")
}

// itoa avoids pulling fmt into the per-frame path.
func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [8]byte
	i := len(buf)
	for n > 0 && i > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}
