package report

import (
	"fmt"
	"strings"

	"montyhall/models"
)

// RenderTable renders the per-strategy win/lose proportion table as
// aligned text:
//
//	strategy   win  lose
//	stay      0.33  0.67
//	switch    0.67  0.33
func RenderTable(table models.ProportionTable) string {
	precision := table.Precision
	if precision < 0 {
		precision = 0
	}

	nameWidth := len("strategy")
	for _, row := range table.Rows {
		if n := len(string(row.Strategy)); n > nameWidth {
			nameWidth = n
		}
	}

	cellWidth := len(fmt.Sprintf("%.*f", precision, 0.0))
	if cellWidth < len("lose") {
		cellWidth = len("lose")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-*s  %*s  %*s\n", nameWidth, "strategy", cellWidth, "win", cellWidth, "lose")
	for _, row := range table.Rows {
		fmt.Fprintf(&b, "%-*s  %*s  %*s\n",
			nameWidth, string(row.Strategy),
			cellWidth, fmt.Sprintf("%.*f", precision, row.Win),
			cellWidth, fmt.Sprintf("%.*f", precision, row.Lose))
	}
	return b.String()
}

// RenderRounds renders the door-by-door trace of each round, one line
// per round with the prize location disclosed after the fact
func RenderRounds(rounds []*models.Round) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%5s  %5s  %4s  %6s  %-6s  %s\n", "round", "prize", "pick", "opened", "stay", "switch")
	for _, round := range rounds {
		fmt.Fprintf(&b, "%5d  %5d  %4d  %6d  %-6s  %s\n",
			round.Index, round.Prize, round.InitialPick, round.Revealed,
			round.Stay.Outcome, round.Switch.Outcome)
	}
	return b.String()
}
