package formatter

import (
	"fmt"
	"strings"

	"github.com/ninaorlova/lingua/internal/achievement"
	"github.com/ninaorlova/lingua/internal/domain"
)

// FormatAchievements renders the granted list against the full catalog,
// locked entries dimmed.
func FormatAchievements(grants []*domain.AchievementGrant) string {
	var b strings.Builder

	grantedAt := make(map[string]*domain.AchievementGrant, len(grants))
	for _, g := range grants {
		grantedAt[g.AchievementKey] = g
	}

	for _, rule := range achievement.Rules {
		if g, ok := grantedAt[rule.Key]; ok {
			b.WriteString(fmt.Sprintf("%s %s  %s\n",
				StyleYellow.Render("★"),
				Bold(rule.Title),
				Dim(HumanDate(g.GrantedAt)),
			))
			b.WriteString(fmt.Sprintf("   %s\n", Dim(rule.Description)))
		} else {
			b.WriteString(fmt.Sprintf("%s %s\n",
				Dim("☆"),
				Dim(rule.Title),
			))
		}
	}

	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("%d of %d unlocked", len(grants), len(achievement.Rules))) + "\n")

	return RenderBox("Achievements", b.String())
}
