package formatter

import (
	"fmt"
	"strings"

	"github.com/ninaorlova/lingua/internal/analytics"
	"github.com/ninaorlova/lingua/internal/contract"
	"github.com/ninaorlova/lingua/internal/domain"
)

const skillBarWidth = 20

// FormatSkills formats a SkillsResponse: one bar per skill axis, the CEFR
// placement, and any outlier skills.
func FormatSkills(resp *contract.SkillsResponse) string {
	var b strings.Builder

	for _, skill := range domain.AllSkills {
		score := resp.Radar.Scores[skill]
		b.WriteString(fmt.Sprintf("%-12s %s\n",
			StyleFg.Render(SkillLabel(string(skill))),
			RenderBar(score, skillBarWidth),
		))
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("%s  %s\n",
		StylePurple.Render(fmt.Sprintf("CEFR %s", resp.CEFR.Level)),
		Dim(fmt.Sprintf("%.0f%% through the band, proficiency %.0f", resp.CEFR.ProgressInLevel*100, resp.CEFR.Proficiency)),
	))
	b.WriteString(fmt.Sprintf("%s %s  %s %s  %s\n",
		Dim("Strongest:"), StyleGreen.Render(SkillLabel(string(resp.Radar.Strongest))),
		Dim("Weakest:"), StyleRed.Render(SkillLabel(string(resp.Radar.Weakest))),
		Dim(fmt.Sprintf("balance %.0f", resp.Radar.BalanceScore)),
	))

	if len(resp.CEFR.Outliers) > 0 {
		b.WriteString("\n")
		for _, o := range resp.CEFR.Outliers {
			b.WriteString(fmt.Sprintf("  %s %s\n",
				outlierBadge(o.Status),
				StyleFg.Render(fmt.Sprintf("%s (%.0f)", SkillLabel(string(o.Skill)), o.Score)),
			))
		}
	}

	warningLines(&b, resp.Warnings)

	return RenderBox("Skill Radar", b.String())
}

func outlierBadge(status analytics.AlignmentStatus) string {
	switch status {
	case analytics.AlignmentAboveLevel:
		return StyleGreen.Render("▲ above level")
	case analytics.AlignmentBelowLevel:
		return StyleRed.Render("▼ below level")
	default:
		return Dim("● aligned")
	}
}

// FormatProjection formats a ProjectionResponse as an ETA timeline with
// quartile milestones.
func FormatProjection(resp *contract.ProjectionResponse) string {
	var b strings.Builder
	proj := resp.Projection

	b.WriteString(fmt.Sprintf("%s %s %s\n",
		Bold(fmt.Sprintf("%.0f", proj.CurrentScore)),
		Dim("→"),
		StyleGreen.Render(fmt.Sprintf("%.0f", proj.TargetScore)),
	))

	switch {
	case proj.AlreadyReached:
		b.WriteString(StyleGreen.Render("Target already reached.") + "\n")
	case !proj.Achievable:
		b.WriteString(StyleYellow.Render(proj.Reason) + "\n")
	default:
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			StyleFg.Render("ETA"),
			Bold(proj.ETA.Format("Jan 2, 2006")),
			Dim(fmt.Sprintf("(~%s)", HumanWeeks(proj.Weeks))),
		))
		b.WriteString(fmt.Sprintf("%s\n", confidenceLabel(proj.Confidence)))

		if len(proj.Milestones) > 0 {
			b.WriteString("\n")
			for _, m := range proj.Milestones {
				b.WriteString(fmt.Sprintf("  %s %s %s\n",
					StyleBlue.Render(fmt.Sprintf("%d/4", m.Quartile)),
					StyleFg.Render(fmt.Sprintf("score %.0f", m.Score)),
					Dim(fmt.Sprintf("around %s", m.ETA.Format("Jan 2"))),
				))
			}
		}
	}

	warningLines(&b, resp.Warnings)

	return RenderBox("Projection", b.String())
}

func confidenceLabel(confidence int) string {
	text := fmt.Sprintf("confidence %d%%", confidence)
	switch {
	case confidence >= 70:
		return StyleGreen.Render(text)
	case confidence >= 40:
		return StyleYellow.Render(text)
	default:
		return StyleRed.Render(text)
	}
}
