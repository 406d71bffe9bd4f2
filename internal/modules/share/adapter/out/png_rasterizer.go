package out

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"strconv"
	"strings"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"calm/internal/modules/share/domain"
	shareout "calm/internal/modules/share/port/out"
	apperrors "calm/internal/platform/errors"
)

// Card geometry in CSS pixels; the output is multiplied by the scale.
const (
	cardWidth   = 380
	cardHeight  = 360
	cardRadius  = 22
	cardPadding = 24
	orbRadius   = 60
	orbCenterY  = 250
	glowSpread  = 40
	quoteWrap   = cardWidth - 2*cardPadding
)

// PNGRasterizer draws the share card with the built-in 7x13 bitmap face,
// upscaled per text size. The face is ASCII only, so typographic glyphs are
// folded to their plain equivalents before drawing.
type PNGRasterizer struct {
	scale int
}

func NewPNGRasterizer(scale int) shareout.Rasterizer {
	return &PNGRasterizer{scale: scale}
}

func (r *PNGRasterizer) Rasterize(ctx context.Context, card domain.Card) ([]byte, error) {
	if r.scale < 1 || r.scale > 8 {
		return nil, fmt.Errorf("%w: scale %d out of range", apperrors.ErrRender, r.scale)
	}
	pal, err := parsePalette(domain.PaletteFor(card.Theme))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrRender, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s := r.scale
	img := image.NewRGBA(image.Rect(0, 0, cardWidth*s, cardHeight*s))
	xdraw.Draw(img, img.Bounds(), image.NewUniform(pal.backdrop), image.Point{}, xdraw.Src)
	fillCard(img, s, pal.background)

	cx := cardWidth / 2
	y := cardPadding
	y += drawCentered(img, domain.Title, cx, y, 2, s, pal.text)
	y += 8
	for _, line := range wrap("\""+card.Quote+"\"", quoteWrap/7) {
		y += drawCentered(img, line, cx, y, 1, s, pal.sub)
		y += 3
	}
	y += 18

	left, right := cx-80, cx+80
	drawCentered(img, "Zen Streak", left, y, 1, s, pal.hint)
	drawCentered(img, "Last session", right, y, 1, s, pal.hint)
	y += 18
	drawCentered(img, card.StreakText(), left, y, 2, s, pal.text)
	drawCentered(img, card.LastDateText(), right, y+4, 1, s, pal.text)

	drawOrb(img, s, pal)
	drawCentered(img, domain.Footer, cx, orbCenterY+orbRadius+18, 1, s, pal.hint)

	buf := bytes.Buffer{}
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("%w: encode png: %v", apperrors.ErrRender, err)
	}
	return buf.Bytes(), nil
}

type palette struct {
	backdrop   color.RGBA
	background [3]color.RGBA
	text       color.RGBA
	sub        color.RGBA
	hint       color.RGBA
	orb        [3]color.RGBA
	glow       color.RGBA
	glowAlpha  float64
}

func parsePalette(p domain.Palette) (palette, error) {
	out := palette{glowAlpha: p.GlowAlpha}
	var err error
	parse := func(dst *color.RGBA, hex string) {
		if err != nil {
			return
		}
		*dst, err = parseHex(hex)
	}
	parse(&out.backdrop, p.Backdrop)
	parse(&out.text, p.Text)
	parse(&out.sub, p.Sub)
	parse(&out.hint, p.Hint)
	parse(&out.glow, p.Glow)
	for i := range p.Background {
		parse(&out.background[i], p.Background[i])
		parse(&out.orb[i], p.Orb[i])
	}
	return out, err
}

func parseHex(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("bad color %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// fillCard paints the rounded card with a 135° gradient at 0%, 40%, 100%.
func fillCard(img *image.RGBA, s int, stops [3]color.RGBA) {
	w, h := float64(cardWidth*s), float64(cardHeight*s)
	radius := float64(cardRadius * s)
	for py := 0; py < cardHeight*s; py++ {
		for px := 0; px < cardWidth*s; px++ {
			x, y := float64(px)+0.5, float64(py)+0.5
			if !insideRounded(x, y, w, h, radius) {
				continue
			}
			t := (x + y) / (w + h)
			img.SetRGBA(px, py, gradient3(stops, t, 0.4))
		}
	}
}

func insideRounded(x, y, w, h, r float64) bool {
	cx := math.Min(math.Max(x, r), w-r)
	cy := math.Min(math.Max(y, r), h-r)
	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy <= r*r
}

// drawOrb paints a radial gradient lit from 30%/30% with a soft glow ring.
func drawOrb(img *image.RGBA, s int, pal palette) {
	cx, cy := float64(cardWidth*s)/2, float64(orbCenterY*s)
	r := float64(orbRadius * s)
	spread := float64(glowSpread * s)
	fx, fy := cx-0.4*r, cy-0.4*r
	farthest := math.Hypot(cx+r-fx, cy+r-fy)
	minX, maxX := int(cx-r-spread), int(cx+r+spread)
	minY, maxY := int(cy-r-spread), int(cy+r+spread)
	for py := minY; py <= maxY; py++ {
		for px := minX; px <= maxX; px++ {
			x, y := float64(px)+0.5, float64(py)+0.5
			d := math.Hypot(x-cx, y-cy)
			switch {
			case d <= r:
				t := math.Hypot(x-fx, y-fy) / farthest
				img.SetRGBA(px, py, gradient3(pal.orb, t, 0.5))
			case d <= r+spread:
				a := pal.glowAlpha * math.Pow(1-(d-r)/spread, 2)
				img.SetRGBA(px, py, blend(img.RGBAAt(px, py), pal.glow, a))
			}
		}
	}
}

func gradient3(stops [3]color.RGBA, t, mid float64) color.RGBA {
	t = math.Max(0, math.Min(1, t))
	if t <= mid {
		return lerp(stops[0], stops[1], t/mid)
	}
	return lerp(stops[1], stops[2], (t-mid)/(1-mid))
}

func lerp(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 { return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t)) }
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 0xff}
}

func blend(dst, src color.RGBA, alpha float64) color.RGBA {
	out := lerp(dst, src, alpha)
	out.A = dst.A
	return out
}

// drawCentered renders text centered on cx with its top at y, both in card
// units, and returns the line height in card units.
func drawCentered(img *image.RGBA, text string, cx, y, size, s int, c color.RGBA) int {
	text = asciiFold(text)
	face := basicfont.Face7x13
	adv := font.MeasureString(face, text).Ceil()
	lineH := face.Height
	if adv == 0 {
		return lineH * size
	}

	glyphs := image.NewRGBA(image.Rect(0, 0, adv, lineH))
	d := font.Drawer{
		Dst:  glyphs,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	d.DrawString(text)

	k := size * s
	w, h := adv*k, lineH*k
	x0 := cx*s - w/2
	dst := image.Rect(x0, y*s, x0+w, y*s+h)
	xdraw.NearestNeighbor.Scale(img, dst, glyphs, glyphs.Bounds(), xdraw.Over, nil)
	return lineH * size
}

var foldReplacer = strings.NewReplacer(
	"—", "-", "–", "-", "…", "...",
	"“", "\"", "”", "\"", "‘", "'", "’", "'",
)

func asciiFold(s string) string {
	s = foldReplacer.Replace(s)
	b := strings.Builder{}
	for _, r := range s {
		if r < 0x80 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func wrap(text string, width int) []string {
	words := strings.Fields(text)
	var lines []string
	line := ""
	for _, w := range words {
		switch {
		case line == "":
			line = w
		case len(line)+1+len(w) <= width:
			line += " " + w
		default:
			lines = append(lines, line)
			line = w
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
