package draw

import (
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Canvas is a colored drawing buffer with 2x vertical resolution using
// half-block characters: every terminal cell holds a top and a bottom
// pixel, each with its own ANSI 256 color. Logical game coordinates scale
// to actual terminal pixels.
type Canvas struct {
	termWidth      int     // Actual terminal columns
	termHeight     int     // Actual terminal rows
	subPixelHeight int     // termHeight * 2
	pixels         []uint8 // Flat [y*termWidth+x]; ANSI 256 index, 0 = empty

	// Scaling from logical to pixel coordinates
	logicalWidth  float64
	logicalHeight float64 // In sub-pixels
	scaleX        float64
	scaleY        float64

	// Offset for centering when the terminal is larger than needed.
	offsetCol int
	offsetRow int

	// Reusable buffers to keep the render and fill paths allocation-free.
	renderBuf       strings.Builder
	numBuf          [8]byte
	scaledBuf       []Point
	intersectionBuf []float64
	polygonBuf      []Point
}

// NewCanvas creates a canvas with a 1:1 logical-to-pixel mapping.
func NewCanvas(width, height int) *Canvas {
	return NewScaledCanvas(width, height, float64(width), float64(height*2))
}

// NewScaledCanvas creates a canvas that scales logical coordinates (the
// space game objects live in) to the given terminal dimensions.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	subPixelHeight := termHeight * 2
	return &Canvas{
		termWidth:      termWidth,
		termHeight:     termHeight,
		subPixelHeight: subPixelHeight,
		pixels:         make([]uint8, subPixelHeight*termWidth),
		logicalWidth:   logicalWidth,
		logicalHeight:  logicalHeight,
		scaleX:         float64(termWidth) / logicalWidth,
		scaleY:         float64(subPixelHeight) / logicalHeight,
	}
}

// Resize updates the canvas for new terminal dimensions, keeping the
// logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	subPixelHeight := termHeight * 2
	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.pixels = make([]uint8, subPixelHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
	}
	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(subPixelHeight) / c.logicalHeight
}

// SetOffset sets the 0-based column/row offset used for centering.
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// Clear resets all pixels.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// setPixel colors a pixel at terminal pixel coordinates (no scaling).
func (c *Canvas) setPixel(x, y int, color uint8) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = color
	}
}

// SetFloat colors a pixel at logical coordinates.
func (c *Canvas) SetFloat(x, y float64, color uint8) {
	c.setPixel(int(math.Round(x*c.scaleX)), int(math.Round(y*c.scaleY)), color)
}

// DrawLine draws a colored line in logical space using Bresenham's
// algorithm.
func (c *Canvas) DrawLine(p1, p2 Point, color uint8) {
	x1 := int(math.Round(p1.X * c.scaleX))
	y1 := int(math.Round(p1.Y * c.scaleY))
	x2 := int(math.Round(p2.X * c.scaleX))
	y2 := int(math.Round(p2.Y * c.scaleY))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy
	for {
		c.setPixel(x1, y1, color)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawPolygon draws a colored polygon in logical space; filled polygons
// use a scanline fill plus the outline.
func (c *Canvas) DrawPolygon(points []Point, filled bool, color uint8) {
	if len(points) < 3 {
		return
	}
	if filled {
		c.fillPolygon(points, color)
	}
	n := len(points)
	for i := 0; i < n; i++ {
		c.DrawLine(points[i], points[(i+1)%n], color)
	}
}

// FillCircle draws a filled circle in logical space. Horizontal and
// vertical scale can differ, so the circle is rasterized as an ellipse in
// pixel space.
func (c *Canvas) FillCircle(cx, cy, r float64, color uint8) {
	pcx := cx * c.scaleX
	pcy := cy * c.scaleY
	rx := r * c.scaleX
	ry := r * c.scaleY
	if rx <= 0 || ry <= 0 {
		return
	}

	yStart := int(math.Floor(pcy - ry))
	yEnd := int(math.Ceil(pcy + ry))
	for y := yStart; y <= yEnd; y++ {
		t := (float64(y) + 0.5 - pcy) / ry
		if t < -1 || t > 1 {
			continue
		}
		half := rx * math.Sqrt(1-t*t)
		xStart := int(math.Ceil(pcx - half))
		xEnd := int(math.Floor(pcx + half))
		for x := xStart; x <= xEnd; x++ {
			c.setPixel(x, y, color)
		}
	}
}

// fillPolygon fills a polygon with a scanline pass in pixel space.
func (c *Canvas) fillPolygon(points []Point, color uint8) {
	if cap(c.scaledBuf) < len(points) {
		c.scaledBuf = make([]Point, len(points))
	}
	scaled := c.scaledBuf[:len(points)]
	for i, p := range points {
		scaled[i] = Point{X: p.X * c.scaleX, Y: p.Y * c.scaleY}
	}

	minY, maxY := scaled[0].Y, scaled[0].Y
	for _, p := range scaled {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	for y := int(math.Floor(minY)); y <= int(math.Ceil(maxY)); y++ {
		scanY := float64(y) + 0.5

		intersections := c.intersectionBuf[:0]
		n := len(scaled)
		for i := 0; i < n; i++ {
			p1 := scaled[i]
			p2 := scaled[(i+1)%n]
			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				intersections = append(intersections, p1.X+t*(p2.X-p1.X))
			}
		}
		c.intersectionBuf = intersections

		sort.Float64s(intersections)
		for i := 0; i+1 < len(intersections); i += 2 {
			xStart := int(math.Ceil(intersections[i]))
			xEnd := int(math.Floor(intersections[i+1]))
			for x := xStart; x <= xEnd; x++ {
				c.setPixel(x, y, color)
			}
		}
	}
}

// maxChunkSize is the maximum bytes to write at once; 1400 stays under a
// typical MTU for smooth SSH transmission.
const maxChunkSize = 1400

// Render writes the canvas to w as half-block characters with 256-color
// SGR runs. Cells whose pixels share a color render as a full block; cells
// with two colors use the upper-half block with a background color.
func (c *Canvas) Render(w io.Writer) {
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.termWidth * c.termHeight * 8)

	lastFg := -1
	lastBg := -1

	for row := 0; row < c.termHeight; row++ {
		topOffset := (row * 2) * c.termWidth
		bottomOffset := (row*2 + 1) * c.termWidth

		for col := 0; col < c.termWidth; col++ {
			top := c.pixels[topOffset+col]
			var bottom uint8
			if row*2+1 < c.subPixelHeight {
				bottom = c.pixels[bottomOffset+col]
			}

			var ch rune
			fg, bg := -1, -1
			switch {
			case top == 0 && bottom == 0:
				continue
			case top != 0 && bottom != 0 && top == bottom:
				ch, fg = BlockFull, int(top)
			case top != 0 && bottom != 0:
				ch, fg, bg = BlockUpperHalf, int(top), int(bottom)
			case top != 0:
				ch, fg = BlockUpperHalf, int(top)
			default:
				ch, fg = BlockLowerHalf, int(bottom)
			}

			c.moveTo(col+1+c.offsetCol, row+1+c.offsetRow)
			if fg != lastFg {
				c.sgr("38;5;", fg)
				lastFg = fg
			}
			if bg != lastBg {
				if bg < 0 {
					c.renderBuf.WriteString("\033[49m")
				} else {
					c.sgr("48;5;", bg)
				}
				lastBg = bg
			}
			c.renderBuf.WriteRune(ch)
		}
	}
	c.renderBuf.WriteString("\033[0m")

	// Write in MTU-sized chunks for smooth network flow.
	data := c.renderBuf.String()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		io.WriteString(w, chunk)
		data = data[len(chunk):]
	}
}

func (c *Canvas) moveTo(col, row int) {
	c.renderBuf.WriteString("\033[")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(row), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col), 10))
	c.renderBuf.WriteByte('H')
}

func (c *Canvas) sgr(prefix string, color int) {
	c.renderBuf.WriteString("\033[")
	c.renderBuf.WriteString(prefix)
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(color), 10))
	c.renderBuf.WriteByte('m')
}

// LogicalWidth returns the logical width.
func (c *Canvas) LogicalWidth() float64 {
	return c.logicalWidth
}

// LogicalHeight returns the logical height in sub-pixels.
func (c *Canvas) LogicalHeight() float64 {
	return c.logicalHeight
}

// TerminalWidth returns the terminal column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the terminal row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// LogicalToTerminal converts logical coordinates to a 1-based terminal
// position, for anchoring text overlays to canvas objects.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px := int(math.Round(x * c.scaleX))
	py := int(math.Round(y * c.scaleY))
	return px + 1, py/2 + 1
}

// BorrowPoints returns a reusable point slice of length n, valid until the
// next BorrowPoints call. Avoids per-frame polygon allocations.
func (c *Canvas) BorrowPoints(n int) []Point {
	if cap(c.polygonBuf) < n {
		c.polygonBuf = make([]Point, n)
	}
	return c.polygonBuf[:n]
}
