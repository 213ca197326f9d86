package formatter

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexanderramin/weekly/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// blocks clamps pct to [0,1] and width to at least 2 and returns the bar.
func blocks(pct float64, width int) (float64, string) {
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	if width < 2 {
		width = 2
	}
	filled := int(pct * float64(width))
	return pct, strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
}

// fractionStyle colors a fraction like the tier it falls in.
func fractionStyle(pct float64) lipgloss.Style {
	return TierColor(domain.TierFor(int(math.Round(pct * 100))))
}

// RenderProgress renders a progress bar like [████░░░░] 45%. The bar is
// green when complete, yellow from 50% and red below.
func RenderProgress(pct float64, width int) string {
	pct, bar := blocks(pct, width)
	return fmt.Sprintf("[%s] %3.0f%%", fractionStyle(pct).Render(bar), pct*100)
}

// RenderCompactBar renders only the blocks, without brackets or a label.
func RenderCompactBar(pct float64, width int, dim bool) string {
	pct, bar := blocks(pct, width)
	if dim {
		return StyleDim.Render(bar)
	}
	return fractionStyle(pct).Render(bar)
}
