package tui

import (
	"fmt"
	"strings"

	"github.com/apimgr/courtside/src/scoreboard"
)

// Fixed row offsets for the detail view
const (
	titleRow    = 2
	scoreRow    = 3
	statusRow   = 4
	boxRow      = 6
	statColumns = 12
)

// statLabels pair each detail-view row with its stat, padded so the
// values line up down the column
var statLabels = []struct {
	label string
	value func(scoreboard.Stats) string
}{
	{" FG% : ", func(s scoreboard.Stats) string { return s.FGPct }},
	{" FT% : ", func(s scoreboard.Stats) string { return s.FTPct }},
	{"3pt% : ", func(s scoreboard.Stats) string { return s.FG3Pct }},
	{" Ast : ", func(s scoreboard.Stats) string { return s.Assists }},
	{" Reb : ", func(s scoreboard.Stats) string { return s.Rebounds }},
	{"  TO : ", func(s scoreboard.Stats) string { return s.Turnovers }},
}

// View renders the whole frame: list or detail content plus the
// footer. Pure function of the model; all writes are clipped to the
// viewport.
func (m model) View() string {
	if m.height <= 0 || m.width <= 0 {
		return ""
	}

	rows := make([]string, m.height)
	if m.focus >= 0 && m.focus < len(m.games) {
		m.renderDetail(rows, m.games[m.focus])
	} else {
		m.renderOverview(rows)
	}
	m.renderFooter(rows)

	return strings.Join(rows, "\n")
}

// renderOverview draws the centered GAMES header and one summary line
// per game, in batch order.
func (m model) renderOverview(rows []string) {
	m.setRow(rows, titleRow, headerStyle.Render(centered(m.width, "GAMES")))
	for i, game := range m.games {
		line := fmt.Sprintf("(%d) %s", i, game.Summary)
		m.setRow(rows, titleRow+1+i, summaryStyle.Render(centered(m.width, line)))
	}
}

// renderDetail draws the focused game: title, score and status lines,
// the box score, then the two stat columns (away left, home right).
func (m model) renderDetail(rows []string, game *scoreboard.Game) {
	m.setRow(rows, titleRow, centered(m.width, game.Title))
	m.setRow(rows, scoreRow, centered(m.width, game.ScoreLine))
	m.setRow(rows, statusRow, centered(m.width, game.Status))

	for i, line := range game.BoxScore(m.cellWidth) {
		m.setRow(rows, boxRow+i, centered(m.width, line))
	}

	m.setRow(rows, statColumns, overlay(m.width,
		span{x: columnPad(m.width, len(game.Away.Abbr), false), text: game.Away.Abbr},
		span{x: columnPad(m.width, len(game.Home.Abbr), true), text: game.Home.Abbr},
	))
	for i, stat := range statLabels {
		away := stat.label + stat.value(game.AwayStats)
		home := stat.label + stat.value(game.HomeStats)
		m.setRow(rows, statColumns+1+i, overlay(m.width,
			span{x: columnPad(m.width, len(away), false), text: away},
			span{x: columnPad(m.width, len(home), true), text: home},
		))
	}
}

// renderFooter draws the reverse-video status bar on the bottom row,
// padded to the full terminal width so no stale text survives a
// shrinking status message.
func (m model) renderFooter(rows []string) {
	text := "Press 'q' to exit | " + m.status
	if len(text) > m.width {
		text = text[:m.width]
	}
	text += strings.Repeat(" ", m.width-len(text))
	rows[m.height-1] = statusBarStyle.Render(text)
}

// setRow writes a content row, leaving the footer row alone and
// dropping anything outside the viewport.
func (m model) setRow(rows []string, y int, text string) {
	if y < 0 || y >= len(rows)-1 {
		return
	}
	rows[y] = text
}
