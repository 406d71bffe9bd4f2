package breath

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderOrb draws a filled circle radius rows tall on each side, shaded from
// the light source at the upper left. Terminal cells are about twice as tall
// as wide, so columns are doubled.
func renderOrb(radius float64, colors [3]lipgloss.Color) string {
	if radius < 1 {
		radius = 1
	}
	rows := int(math.Ceil(radius))
	styles := [3]lipgloss.Style{
		lipgloss.NewStyle().Foreground(colors[0]),
		lipgloss.NewStyle().Foreground(colors[1]),
		lipgloss.NewStyle().Foreground(colors[2]),
	}
	fx, fy := -0.4*radius, -0.4*radius
	far := math.Hypot(radius-fx, radius-fy)

	var sb strings.Builder
	for y := -rows; y <= rows; y++ {
		for x := -2 * rows; x <= 2*rows; x++ {
			px, py := float64(x)/2, float64(y)
			if math.Hypot(px, py) > radius {
				sb.WriteByte(' ')
				continue
			}
			t := math.Hypot(px-fx, py-fy) / far
			switch {
			case t < 0.35:
				sb.WriteString(styles[0].Render("█"))
			case t < 0.7:
				sb.WriteString(styles[1].Render("█"))
			default:
				sb.WriteString(styles[2].Render("▓"))
			}
		}
		if y < rows {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// pulse eases between 1 and peak and back over period ticks.
func pulse(frame, period int, peak float64) float64 {
	if period <= 0 {
		return 1
	}
	phase := float64(frame%period) / float64(period)
	return 1 + (peak-1)*(1-math.Cos(2*math.Pi*phase))/2
}

const buddha = `    .-.
   (   )
  .-'-'-.
 /  \_/  \
(_/ ( ) \_)
  '-----'`
