package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ninaorlova/lingua/internal/analytics"
	"github.com/ninaorlova/lingua/internal/contract"
)

// intensityGlyphs maps the 0..5 intensity scale to block glyphs.
var intensityGlyphs = []string{"·", "░", "▒", "▒", "▓", "█"}

// intensityStyles colors the scale from dim through green.
var intensityStyles = []lipgloss.Style{
	StyleDim, StyleDim, StyleYellow, StyleYellow, StyleGreen, StyleGreen,
}

// FormatHeatmap formats a HeatmapResponse as a week-per-row practice grid
// plus summary statistics.
func FormatHeatmap(resp *contract.HeatmapResponse) string {
	var b strings.Builder
	hm := resp.Heatmap

	b.WriteString(renderGrid(hm))
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("%s  %s  %s\n",
		StyleFg.Render(fmt.Sprintf("%d practice days", hm.PracticeDays)),
		Dim(fmt.Sprintf("consistency %.0f%%", hm.Consistency*100)),
		Dim(fmt.Sprintf("longest run %d days", hm.LongestStreak)),
	))
	if hm.BestDay != nil {
		b.WriteString(fmt.Sprintf("%s %s\n",
			Dim("Strongest weekday:"),
			StyleGreen.Render(fmt.Sprintf("%s (avg %.0f)", hm.BestDay.String(), hm.BestDayScore)),
		))
	}

	warningLines(&b, resp.Warnings)

	return RenderBox(fmt.Sprintf("Last %d days", hm.WindowDays), b.String())
}

// renderGrid draws one row per week, oldest first, one glyph per day.
func renderGrid(hm analytics.Heatmap) string {
	var b strings.Builder
	for i, day := range hm.Days {
		glyph := intensityGlyphs[clampIntensity(day.Intensity)]
		b.WriteString(intensityStyles[clampIntensity(day.Intensity)].Render(glyph))
		if (i+1)%7 == 0 {
			label := day.Date.Format("Jan 2")
			b.WriteString("  " + Dim(label) + "\n")
		}
	}
	if len(hm.Days)%7 != 0 {
		b.WriteString("\n")
	}
	return b.String()
}

func clampIntensity(v int) int {
	if v < 0 {
		return 0
	}
	if v >= len(intensityGlyphs) {
		return len(intensityGlyphs) - 1
	}
	return v
}
