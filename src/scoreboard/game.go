// Package scoreboard builds display-ready game snapshots from raw
// scoreboard result rows.
package scoreboard

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/apimgr/courtside/src/api"
)

// ErrIncompleteRecord marks a game whose line-score rows are missing
// for one or both teams. Such games are skipped, not partially rendered.
var ErrIncompleteRecord = errors.New("incomplete game record")

// periodKeys are the line-score columns holding per-period points, in
// display order: four regulation quarters then up to ten overtimes.
var periodKeys = []struct {
	Key        string
	Label      string
	Regulation bool
}{
	{"PTS_QTR1", "Q1", true},
	{"PTS_QTR2", "Q2", true},
	{"PTS_QTR3", "Q3", true},
	{"PTS_QTR4", "Q4", true},
	{"PTS_OT1", "OT1", false},
	{"PTS_OT2", "OT2", false},
	{"PTS_OT3", "OT3", false},
	{"PTS_OT4", "OT4", false},
	{"PTS_OT5", "OT5", false},
	{"PTS_OT6", "OT6", false},
	{"PTS_OT7", "OT7", false},
	{"PTS_OT8", "OT8", false},
	{"PTS_OT9", "OT9", false},
	{"PTS_OT10", "OT10", false},
}

// Team identifies one side of a game
type Team struct {
	Abbr    string
	City    string
	WinLoss string
}

// Stats holds a team's shooting and hustle numbers for the detail view
type Stats struct {
	FGPct     string
	FTPct     string
	FG3Pct    string
	Assists   string
	Rebounds  string
	Turnovers string
}

// Period holds both teams' points for one scoring segment.
// A nil value means the period has not been played; "0" means played
// without scoring. The distinction survives into the box score.
type Period struct {
	Label      string
	Regulation bool
	Away       *string
	Home       *string
}

// Game is an immutable snapshot of one game, built once per refresh
type Game struct {
	ID string

	Away Team
	Home Team

	AwayPoints string
	HomePoints string

	Periods []Period

	AwayStats Stats
	HomeStats Stats

	Status     string
	LivePeriod string
	LiveClock  string

	// Derived display strings
	Title     string
	ScoreLine string
	Summary   string
}

// NewGame builds a snapshot from a game-header row and the line-score
// rows of its two teams. Fails with ErrIncompleteRecord when either
// team's line score is missing.
func NewGame(header api.Row, lines []api.Row) (*Game, error) {
	g := &Game{
		ID:         header.Text("GAME_ID"),
		Status:     header.Text("GAME_STATUS_TEXT"),
		LivePeriod: header.Text("LIVE_PERIOD"),
		LiveClock:  header.Text("LIVE_PC_TIME"),
	}

	homeID := header.Text("HOME_TEAM_ID")
	awayID := header.Text("VISITOR_TEAM_ID")

	var homeLine, awayLine api.Row
	for _, line := range lines {
		switch line.Text("TEAM_ID") {
		case homeID:
			homeLine = line
		case awayID:
			awayLine = line
		}
	}
	if homeLine == nil || awayLine == nil {
		return nil, fmt.Errorf("game %s: %w", g.ID, ErrIncompleteRecord)
	}

	g.Away = teamFromLine(awayLine)
	g.Home = teamFromLine(homeLine)
	g.AwayPoints = pointsOrZero(awayLine)
	g.HomePoints = pointsOrZero(homeLine)
	g.AwayStats = statsFromLine(awayLine)
	g.HomeStats = statsFromLine(homeLine)

	for _, pk := range periodKeys {
		g.Periods = append(g.Periods, Period{
			Label:      pk.Label,
			Regulation: pk.Regulation,
			Away:       periodPoints(awayLine, pk.Key),
			Home:       periodPoints(homeLine, pk.Key),
		})
	}

	g.Title = fmt.Sprintf("%s v %s", g.Away.City, g.Home.City)
	g.ScoreLine = fmt.Sprintf("%s - %s", g.AwayPoints, g.HomePoints)
	g.Summary = fmt.Sprintf("%s %s %s  %s%s", g.Away.Abbr, g.ScoreLine, g.Home.Abbr, g.LiveClock, g.Status)

	return g, nil
}

// BuildBatch builds the snapshot batch for one fetch. Games with
// incomplete line scores are skipped so the rest of the slate still
// renders.
func BuildBatch(sb *api.Scoreboard) []*Game {
	lines := sb.LineScores()

	var games []*Game
	for _, header := range sb.GameHeaders() {
		game, err := NewGame(header, lines)
		if err != nil {
			slog.Warn("skipping game", "error", err)
			continue
		}
		games = append(games, game)
	}
	return games
}

func teamFromLine(line api.Row) Team {
	return Team{
		Abbr:    line.Text("TEAM_ABBREVIATION"),
		City:    line.Text("TEAM_CITY_NAME"),
		WinLoss: line.Text("TEAM_WINS_LOSSES"),
	}
}

// pointsOrZero normalizes an empty or null point total to "0" so an
// untipped game shows 0 - 0. Non-empty values pass through unchanged.
func pointsOrZero(line api.Row) string {
	if pts := line.Text("PTS"); pts != "" {
		return pts
	}
	return "0"
}

func periodPoints(line api.Row, key string) *string {
	if !line.Has(key) {
		return nil
	}
	v := line.Text(key)
	return &v
}

func statsFromLine(line api.Row) Stats {
	return Stats{
		FGPct:     line.Text("FG_PCT"),
		FTPct:     line.Text("FT_PCT"),
		FG3Pct:    line.Text("FG3_PCT"),
		Assists:   line.Text("AST"),
		Rebounds:  line.Text("REB"),
		Turnovers: line.Text("TOV"),
	}
}
