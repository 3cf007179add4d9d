package cicparser

import (
	"sort"
	"strings"

	"mbaillet/cic-xlsx/internal/profile"
	"mbaillet/cic-xlsx/internal/textutils"
)

// Layout tolerances, in PDF points. Fragments closer than lineTolerance on
// the Y axis belong to the same visual line; gaps wider than tokenGap split
// tokens, gaps wider than spaceGap inside a token become a space.
const (
	lineTolerance = 2.0
	tokenGap      = 6.0
	spaceGap      = 0.8
)

// token is a reassembled word or cell fragment with its horizontal extent.
type token struct {
	x    float64
	w    float64
	text string
}

func (t token) mid() float64 {
	return t.x + t.w/2
}

// line is one visual line of the page, top to bottom.
type line struct {
	y      float64
	tokens []token
}

// columnMap maps horizontal positions to column roles, derived from the
// matched header cells of one table.
type columnMap struct {
	roles   []profile.Role // Left to right
	centers []float64      // Header cell midpoints, same order
}

// roleAt returns the role of the column containing the given X position.
// Positions are assigned to the nearest header cell midpoint, which keeps
// right-aligned amount cells in their column.
func (m columnMap) roleAt(x float64) profile.Role {
	best := 0
	for i := range m.centers {
		if abs(x-m.centers[i]) < abs(x-m.centers[best]) {
			best = i
		}
	}
	return m.roles[best]
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

// clusterLines groups page fragments into visual lines by Y coordinate and
// reassembles each line's glyph runs into tokens. PDF Y grows upward, so
// lines are returned top of page first.
func clusterLines(fragments []Fragment) []line {
	sorted := make([]Fragment, len(fragments))
	copy(sorted, fragments)
	sort.SliceStable(sorted, func(i, j int) bool {
		if abs(sorted[i].Y-sorted[j].Y) > lineTolerance {
			return sorted[i].Y > sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	var lines []line
	for _, f := range sorted {
		if strings.TrimSpace(f.Text) == "" && f.Text != " " {
			continue
		}
		if len(lines) == 0 || abs(lines[len(lines)-1].y-f.Y) > lineTolerance {
			lines = append(lines, line{y: f.Y})
		}
		cur := &lines[len(lines)-1]
		cur.tokens = appendFragment(cur.tokens, f)
	}

	// Drop whitespace-only tokens left over from glyph assembly.
	for i := range lines {
		kept := lines[i].tokens[:0]
		for _, t := range lines[i].tokens {
			t.text = strings.TrimSpace(t.text)
			if t.text != "" {
				kept = append(kept, t)
			}
		}
		lines[i].tokens = kept
	}
	return lines
}

// appendFragment merges a fragment into the token list of a line, starting
// a new token when the horizontal gap exceeds tokenGap.
func appendFragment(tokens []token, f Fragment) []token {
	if len(tokens) == 0 {
		return append(tokens, token{x: f.X, w: f.W, text: f.Text})
	}

	last := &tokens[len(tokens)-1]
	gap := f.X - (last.x + last.w)
	if gap > tokenGap {
		return append(tokens, token{x: f.X, w: f.W, text: f.Text})
	}

	if gap > spaceGap && !strings.HasSuffix(last.text, " ") {
		last.text += " "
	}
	last.text += f.Text
	last.w = f.X + f.W - last.x
	return tokens
}

// findHeader scans the lines of a page for a transaction-table header:
// one line containing a cell for every column role of the profile. It
// returns the column mapping and the index of the header line. Column
// order is taken from the header, not assumed.
func findHeader(lines []line, p profile.Profile) (columnMap, int, bool) {
	for i, ln := range lines {
		if m, ok := matchHeaderLine(ln, p); ok {
			return m, i, true
		}
	}
	return columnMap{}, 0, false
}

func matchHeaderLine(ln line, p profile.Profile) (columnMap, bool) {
	type match struct {
		role   profile.Role
		center float64
	}
	var matches []match
	used := make(map[int]bool)

	for _, role := range profile.Roles {
		found := false
		for ti, tok := range ln.tokens {
			if used[ti] {
				continue
			}
			folded := textutils.Fold(tok.text)
			for _, kw := range p.KeywordsFor(role) {
				if strings.Contains(folded, kw) {
					matches = append(matches, match{role: role, center: tok.mid()})
					used[ti] = true
					found = true
					break
				}
			}
			if found {
				break
			}
		}
		if !found {
			return columnMap{}, false
		}
	}

	sort.Slice(matches, func(i, j int) bool { return matches[i].center < matches[j].center })

	m := columnMap{}
	for _, mt := range matches {
		m.roles = append(m.roles, mt.role)
		m.centers = append(m.centers, mt.center)
	}
	return m, true
}

// extractRawRows slices the data lines below a header into raw row tuples
// using the column mapping. Tokens land in the column whose header cell is
// nearest; multiple tokens in one cell are joined in reading order.
func extractRawRows(lines []line, m columnMap, pageNumber int) []RawRow {
	var rows []RawRow
	for _, ln := range lines {
		cells := make(map[profile.Role][]string)
		for _, tok := range ln.tokens {
			role := m.roleAt(tok.mid())
			cells[role] = append(cells[role], tok.text)
		}

		rows = append(rows, RawRow{
			Date:   strings.Join(cells[profile.RoleDate], " "),
			Label:  strings.Join(cells[profile.RoleLabel], " "),
			Debit:  strings.Join(cells[profile.RoleDebit], " "),
			Credit: strings.Join(cells[profile.RoleCredit], " "),
			Page:   pageNumber,
		})
	}
	return rows
}
