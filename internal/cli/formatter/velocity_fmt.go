package formatter

import (
	"fmt"
	"strings"

	"github.com/ninaorlova/lingua/internal/contract"
)

// FormatVelocity formats a VelocityResponse: trend summary plus the
// time-of-day ranking.
func FormatVelocity(resp *contract.VelocityResponse) string {
	var b strings.Builder

	rep := resp.Report
	b.WriteString(fmt.Sprintf("%s  %s\n",
		TrendBadge(rep.Trend),
		Dim(fmt.Sprintf("%d samples", rep.SampleCount)),
	))
	b.WriteString(fmt.Sprintf("%s %s\n",
		Bold(fmt.Sprintf("%+.1f pts/week", rep.PointsPerWeek)),
		accelerationLabel(rep.Acceleration),
	))
	b.WriteString(StyleFg.Render(rep.Interpretation) + "\n")

	ot := resp.OptimalTime
	if !ot.InsufficientData && ot.Best != nil {
		b.WriteString("\n")
		b.WriteString(Header("Best time to practice"))
		b.WriteString("\n\n")

		headers := []string{"TIME", "SCORE", "FOCUS", "SAMPLES"}
		rows := make([][]string, 0, len(ot.Buckets))
		for i, stat := range ot.Buckets {
			label := SkillLabel(string(stat.Bucket))
			if i == 0 {
				label = StyleGreen.Render("▶ " + label)
			} else {
				label = StyleFg.Render("  " + label)
			}
			rows = append(rows, []string{
				label,
				FormatScore(stat.AvgScore),
				FormatScore(stat.AvgFocus),
				Dim(fmt.Sprintf("%d", stat.Samples)),
			})
		}
		b.WriteString(RenderTable(headers, rows))
	}

	warningLines(&b, resp.Warnings)

	return RenderBox("Velocity", b.String())
}

func accelerationLabel(accel float64) string {
	switch {
	case accel > 0:
		return StyleGreen.Render(fmt.Sprintf("accelerating (%+.1f)", accel))
	case accel < 0:
		return StyleYellow.Render(fmt.Sprintf("slowing (%+.1f)", accel))
	default:
		return Dim("steady pace")
	}
}
