package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a percentage such as 45 as "[████░░░░]  45%". The
// bar clamps to 0..100 but the label shows the real value, so overrun tasks
// read e.g. 500%.
func RenderProgress(pct float64, width int) string {
	width = max(width, 2)
	frac := min(max(pct/100, 0), 1)
	filled := min(int(frac*float64(width)), width)

	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	switch {
	case pct > 100:
		style = StyleRed
	case frac < 0.33:
		style = StyleDim
	case frac < 0.66:
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), pct)
}
