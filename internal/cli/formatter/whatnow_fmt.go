package formatter

import (
	"fmt"
	"strings"

	"github.com/ninaorlova/lingua/internal/contract"
)

// FormatWhatNow formats a RecommendResponse as a numbered, priority-badged
// action list.
func FormatWhatNow(resp *contract.RecommendResponse) string {
	var b strings.Builder

	if len(resp.Recommendations) == 0 {
		b.WriteString(StyleFg.Render(resp.Priority.Title) + "\n")
		b.WriteString(Dim(resp.Priority.Message) + "\n")
		warningLines(&b, resp.Warnings)
		return RenderBox("What Now", b.String())
	}

	// A fallback pick alongside suggestions means nothing cleared the
	// notify threshold; the list is still worth showing.
	if resp.Fallback {
		b.WriteString(Dim("Nothing urgent. Suggestions if you feel like practicing:") + "\n\n")
	}

	for i, rec := range resp.Recommendations {
		titleLine := fmt.Sprintf("%s %s  %s",
			Bold(fmt.Sprintf("%d.", i+1)),
			StyleFg.Render(rec.Title),
			PriorityBadge(rec.Priority),
		)
		b.WriteString(titleLine + "\n")
		b.WriteString(fmt.Sprintf("   %s\n", Dim(rec.Message)))
		if rec.Reason != "" {
			b.WriteString(fmt.Sprintf("   %s %s\n", StyleYellow.Render("WHY:"), Dim(rec.Reason)))
		}
		for _, ev := range rec.Evidence {
			b.WriteString(fmt.Sprintf("   %s\n", Dim("· "+ev)))
		}
		if i < len(resp.Recommendations)-1 {
			b.WriteString("\n")
		}
	}

	if resp.Aborted {
		b.WriteString("\n")
		b.WriteString(StyleYellow.Render("  Partial result: the build was interrupted.") + "\n")
	}

	warningLines(&b, resp.Warnings)

	return RenderBox("What Now", b.String())
}
