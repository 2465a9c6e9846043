package formatter

import (
	"fmt"
	"strings"

	"github.com/ninaorlova/lingua/internal/contract"
)

// FormatStatus formats a StatusResponse into the styled dashboard string.
func FormatStatus(resp *contract.StatusResponse) string {
	var b strings.Builder

	// Headline: CEFR placement and overall proficiency.
	b.WriteString(fmt.Sprintf("%s %s %s\n",
		StylePurple.Render(fmt.Sprintf("LEVEL %s", resp.CEFR.Level)),
		Dim(fmt.Sprintf("(%.0f%% through the band)", resp.CEFR.ProgressInLevel*100)),
		Dim(fmt.Sprintf("proficiency %.0f", resp.Radar.Proficiency)),
	))
	b.WriteString("\n")

	// Streak line.
	if resp.Streak != nil {
		streakStyle := StyleGreen
		if resp.Streak.CurrentStreak == 0 {
			streakStyle = StyleDim
		}
		b.WriteString(fmt.Sprintf("%s  %s  %s\n",
			streakStyle.Render(fmt.Sprintf("🔥 %d day streak", resp.Streak.CurrentStreak)),
			Dim(fmt.Sprintf("best %d", resp.Streak.LongestStreak)),
			Dim(fmt.Sprintf("%d freezes left", resp.Streak.FreezeDaysAvailable)),
		))
	}

	// Velocity and today's activity.
	b.WriteString(fmt.Sprintf("%s  %s\n",
		TrendBadge(resp.Velocity.Trend),
		Dim(fmt.Sprintf("%+.1f pts/week", resp.Velocity.PointsPerWeek)),
	))
	b.WriteString(fmt.Sprintf("%s  %s\n",
		StyleFg.Render(fmt.Sprintf("Today: %d exercises", resp.AttemptsToday)),
		dueWordsLabel(resp.DueWords),
	))

	// Achievements count.
	if len(resp.Achievements) > 0 {
		b.WriteString("\n")
		b.WriteString(StyleYellow.Render(fmt.Sprintf("★ %d achievements unlocked", len(resp.Achievements))) + "\n")
	}

	warningLines(&b, resp.Warnings)

	return RenderBox("Status", b.String())
}

func dueWordsLabel(due int) string {
	if due == 0 {
		return Dim("no words due for review")
	}
	return StyleYellow.Render(fmt.Sprintf("%d words due for review", due))
}
