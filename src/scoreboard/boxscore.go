package scoreboard

import "strings"

// DefaultCellWidth is the default box-score cell width in characters
const DefaultCellWidth = 5

// BoxScore renders the per-period table as lines: a header row of
// period labels, a rule, then one row per team.
//
// Regulation quarters always get a column; an overtime column appears
// only when at least one team has a value for it. A period the team
// has not played renders as "-".
func (g *Game) BoxScore(cellWidth int) []string {
	if cellWidth < 2 {
		cellWidth = DefaultCellWidth
	}

	var periods []Period
	for _, p := range g.Periods {
		if p.Regulation || p.Away != nil || p.Home != nil {
			periods = append(periods, p)
		}
	}

	header := make([]string, 0, len(periods)+1)
	away := make([]string, 0, len(periods)+1)
	home := make([]string, 0, len(periods)+1)

	header = append(header, cell("", cellWidth))
	away = append(away, cell(g.Away.Abbr, cellWidth))
	home = append(home, cell(g.Home.Abbr, cellWidth))

	for _, p := range periods {
		header = append(header, cell(p.Label, cellWidth))
		away = append(away, cell(periodCell(p.Away), cellWidth))
		home = append(home, cell(periodCell(p.Home), cellWidth))
	}

	rule := make([]string, len(periods)+1)
	for i := range rule {
		rule[i] = strings.Repeat("-", cellWidth)
	}

	return []string{
		strings.Join(header, "|"),
		strings.Join(rule, "+"),
		strings.Join(away, "|"),
		strings.Join(home, "|"),
	}
}

func periodCell(v *string) string {
	if v == nil {
		return "-"
	}
	return *v
}

// cell right-aligns text in a fixed-width cell with one trailing
// space. Content longer than width-1 is truncated; the source format
// has no overflow handling, so we clamp rather than corrupt the table.
func cell(text string, width int) string {
	if len(text) > width-1 {
		text = text[:width-1]
	}
	return strings.Repeat(" ", width-1-len(text)) + text + " "
}
