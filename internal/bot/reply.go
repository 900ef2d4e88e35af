package bot

import (
	"fmt"
	"strings"

	statsmodel "github.com/kiwicollection/crbot/internal/stats/model"
)

// helpText builds the direct message sent in response to the help command.
func helpText(botName string) string {
	var b strings.Builder
	b.WriteString("I track commit links posted in the review channel and the review reactions left on them.\n")
	b.WriteString("Commands:\n")
	fmt.Fprintf(&b, "  %s: help            - this message\n", botName)
	fmt.Fprintf(&b, "  %s: stats           - overall leaderboard\n", botName)
	fmt.Fprintf(&b, "  %s: stats overall   - same as above\n", botName)
	fmt.Fprintf(&b, "  %s: stats <month>   - leaderboard for a month of this year, e.g. `%s: stats jan`\n", botName, botName)
	return b.String()
}

// formatLeaderboard renders leaderboard entries as a channel broadcast.
func formatLeaderboard(scope string, entries []statsmodel.LeaderboardEntry) string {
	label := strings.TrimSpace(scope)
	if label == "" {
		label = "overall"
	}

	if len(entries) == 0 {
		return fmt.Sprintf("No review activity recorded yet (%s).", label)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Review leaderboard (%s):\n", label)
	for i, e := range entries {
		name := e.Name
		if name == "" {
			name = fmt.Sprintf("user %d", e.UserID)
		}
		fmt.Fprintf(&b, "%d. %s: %d commits, %d reviewed, %d commented (%d total)\n",
			i+1, name, e.CommitCount, e.ReviewedCount, e.CommentedCount, e.TotalCount)
	}
	return strings.TrimRight(b.String(), "\n")
}
