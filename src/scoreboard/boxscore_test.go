package scoreboard

import (
	"strings"
	"testing"
)

func strptr(s string) *string { return &s }

func boxScoreGame() *Game {
	return &Game{
		Away: Team{Abbr: "PHI"},
		Home: Team{Abbr: "BOS"},
		Periods: []Period{
			{Label: "Q1", Regulation: true, Away: strptr("30"), Home: strptr("28")},
			{Label: "Q2", Regulation: true, Away: strptr("26"), Home: strptr("0")},
			{Label: "Q3", Regulation: true},
			{Label: "Q4", Regulation: true},
			{Label: "OT1"},
			{Label: "OT2"},
		},
	}
}

// Tests for cell alignment

func TestCell(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{"empty", "", 5, "     "},
		{"short value right-aligned", "28", 5, "  28 "},
		{"label", "OT1", 5, " OT1 "},
		{"full width", "110", 5, " 110 "},
		{"overflow truncated", "12345678", 5, "1234 "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cell(tt.text, tt.width)
			if got != tt.want {
				t.Errorf("cell(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
			}
			if len(got) != tt.width {
				t.Errorf("cell(%q, %d) length = %d, want %d", tt.text, tt.width, len(got), tt.width)
			}
			if !strings.HasSuffix(got, " ") {
				t.Errorf("cell(%q, %d) = %q, want one trailing space", tt.text, tt.width, got)
			}
		})
	}
}

// Tests for column selection

func TestBoxScoreDropsEmptyOvertimes(t *testing.T) {
	lines := boxScoreGame().BoxScore(5)

	if len(lines) != 4 {
		t.Fatalf("BoxScore() line count = %d, want 4", len(lines))
	}

	header := lines[0]
	for _, label := range []string{"Q1", "Q2", "Q3", "Q4"} {
		if !strings.Contains(header, label) {
			t.Errorf("header %q missing regulation column %s", header, label)
		}
	}
	if strings.Contains(header, "OT") {
		t.Errorf("header %q should not contain an all-null OT column", header)
	}
}

func TestBoxScoreKeepsHalfPlayedOvertime(t *testing.T) {
	game := boxScoreGame()
	game.Periods[4].Away = strptr("5") // OT1 away has points, home is null

	lines := game.BoxScore(5)
	header, away, home := lines[0], lines[2], lines[3]

	if !strings.Contains(header, "OT1") {
		t.Errorf("header %q should contain OT1", header)
	}
	if strings.Contains(header, "OT2") {
		t.Errorf("header %q should not contain OT2", header)
	}

	awayCells := strings.Split(away, "|")
	homeCells := strings.Split(home, "|")
	last := len(awayCells) - 1
	if strings.TrimSpace(awayCells[last]) != "5" {
		t.Errorf("away OT1 cell = %q, want 5", awayCells[last])
	}
	if strings.TrimSpace(homeCells[last]) != "-" {
		t.Errorf("home OT1 cell = %q, want - for the null side", homeCells[last])
	}
}

func TestBoxScoreNullVsZeroRendering(t *testing.T) {
	lines := boxScoreGame().BoxScore(5)
	homeCells := strings.Split(lines[3], "|")

	// Columns: abbr, Q1, Q2, Q3, Q4
	if strings.TrimSpace(homeCells[2]) != "0" {
		t.Errorf("Q2 home cell = %q, want 0 (played scoreless)", homeCells[2])
	}
	if strings.TrimSpace(homeCells[3]) != "-" {
		t.Errorf("Q3 home cell = %q, want - (not played)", homeCells[3])
	}
}

func TestBoxScoreRule(t *testing.T) {
	lines := boxScoreGame().BoxScore(5)
	rule := lines[1]

	if rule != "-----+-----+-----+-----+-----" {
		t.Errorf("rule = %q", rule)
	}
}

func TestBoxScoreRowsAligned(t *testing.T) {
	lines := boxScoreGame().BoxScore(5)

	for i := 1; i < len(lines); i++ {
		if len(lines[i]) != len(lines[0]) {
			t.Errorf("line %d length = %d, want %d", i, len(lines[i]), len(lines[0]))
		}
	}
}
