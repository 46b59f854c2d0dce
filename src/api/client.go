// Package api implements the client for the NBA stats scoreboard endpoint.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// ProjectName is set at build time
var ProjectName = "courtside"

// Version is set at build time
var Version = "dev"

// The stats endpoint rejects requests that do not look like a browser.
var defaultHeaders = map[string]string{
	"User-Agent":      "Mozilla/5.0 (Windows NT 6.2; WOW64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/57.0.2987.133 Safari/537.36",
	"Dnt":             "1",
	"Accept-Encoding": "gzip, deflate, sdch",
	"Accept-Language": "en",
	"Origin":          "http://stats.nba.com",
}

// Client is the API client for the stats endpoint
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a new API client with a request timeout in seconds.
// The timeout bounds the synchronous in-loop fetch so a stalled call
// cannot freeze the terminal.
func NewClient(baseURL string, timeout int) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: time.Duration(timeout) * time.Second,
		},
	}
}

// Row is one record of a result set, keyed by header name
type Row map[string]any

// Text renders a field as a string. Numeric fields pass through
// unchanged (json.Number keeps the source formatting); null and
// missing fields render as "".
func (r Row) Text(key string) string {
	switch v := r[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Has reports whether a field is present with a non-null value
func (r Row) Has(key string) bool {
	v, ok := r[key]
	return ok && v != nil
}

// Scoreboard holds the collapsed result sets of one scoreboard response
type Scoreboard struct {
	sets map[string][]Row
}

// Rows returns the rows of the named result set
func (s *Scoreboard) Rows(name string) []Row {
	return s.sets[name]
}

// GameHeaders returns the GameHeader result set
func (s *Scoreboard) GameHeaders() []Row {
	return s.Rows("GameHeader")
}

// LineScores returns the LineScore result set
func (s *Scoreboard) LineScores() []Row {
	return s.Rows("LineScore")
}

// scoreboardResponse is the endpoint's column-oriented wire format:
// each result set carries a headers array that decodes the positional
// rowSet values.
type scoreboardResponse struct {
	ResultSets []struct {
		Name    string   `json:"name"`
		Headers []string `json:"headers"`
		RowSet  [][]any  `json:"rowSet"`
	} `json:"resultSets"`
}

// Scoreboard fetches the scoreboard for a date ("MM/DD/YYYY") and a day
// offset, and collapses the column-oriented result sets into rows.
func (c *Client) Scoreboard(ctx context.Context, date string, offset int) (*Scoreboard, error) {
	params := url.Values{}
	params.Set("gamedate", date)
	params.Set("leagueid", "00")
	params.Set("dayoffset", fmt.Sprintf("%d", offset))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/stats/scoreboardv2?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	for k, v := range defaultHeaders {
		req.Header.Set(k, v)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch scoreboard: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch scoreboard: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read scoreboard: %w", err)
	}

	return ParseScoreboard(body)
}

// ParseScoreboard decodes a scoreboard response body and collapses its
// column-oriented result sets into rows.
func ParseScoreboard(body []byte) (*Scoreboard, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var raw scoreboardResponse
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode scoreboard: %w", err)
	}

	return collapse(&raw), nil
}

// collapse zips each result set's headers with its positional rows
func collapse(raw *scoreboardResponse) *Scoreboard {
	sets := make(map[string][]Row, len(raw.ResultSets))
	for _, rs := range raw.ResultSets {
		rows := make([]Row, 0, len(rs.RowSet))
		for _, values := range rs.RowSet {
			row := make(Row, len(rs.Headers))
			for i, header := range rs.Headers {
				if i < len(values) {
					row[header] = values[i]
				}
			}
			rows = append(rows, row)
		}
		sets[rs.Name] = rows
	}
	return &Scoreboard{sets: sets}
}
