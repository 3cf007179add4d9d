package cicparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mbaillet/cic-xlsx/internal/profile"
)

// frag builds a fragment with a width proportional to its text, the way
// extracted statement glyph runs behave.
func frag(x, y float64, text string) Fragment {
	return Fragment{X: x, Y: y, W: float64(len(text)) * 5, Text: text}
}

func TestClusterLinesGroupsByY(t *testing.T) {
	fragments := []Fragment{
		frag(50, 700, "Date"),
		frag(150, 700, "Libellé"),
		frag(50, 680, "05/01/2024"),
		frag(150, 680.5, "LOYER"), // Within line tolerance of the row above
		frag(50, 660, "06/01/2024"),
	}

	lines := clusterLines(fragments)
	require.Len(t, lines, 3)

	assert.Len(t, lines[0].tokens, 2)
	assert.Equal(t, "Date", lines[0].tokens[0].text)
	assert.Len(t, lines[1].tokens, 2)
	assert.Equal(t, "05/01/2024", lines[1].tokens[0].text)
	assert.Equal(t, "LOYER", lines[1].tokens[1].text)
	assert.Len(t, lines[2].tokens, 1)
}

func TestClusterLinesReassemblesGlyphRuns(t *testing.T) {
	// Single glyphs with no gap form one word; a small gap becomes a
	// space; a wide gap starts a new token.
	fragments := []Fragment{
		{X: 150, Y: 680, W: 5, Text: "C"},
		{X: 155, Y: 680, W: 5, Text: "B"},
		{X: 163, Y: 680, W: 5, Text: "S"}, // 3pt gap -> space
		{X: 168, Y: 680, W: 5, Text: "U"},
		{X: 320, Y: 680, W: 25, Text: "50,00"}, // Wide gap -> new token
	}

	lines := clusterLines(fragments)
	require.Len(t, lines, 1)
	require.Len(t, lines[0].tokens, 2)
	assert.Equal(t, "CB SU", lines[0].tokens[0].text)
	assert.Equal(t, "50,00", lines[0].tokens[1].text)
}

func TestFindHeaderMatchesDiacriticsAndCase(t *testing.T) {
	lines := clusterLines([]Fragment{
		frag(50, 720, "RELEVE DE COMPTE"),
		frag(50, 700, "Date"),
		frag(150, 700, "Libellé"),
		frag(320, 700, "Débit"),
		frag(420, 700, "Crédit"),
	})

	m, idx, ok := findHeader(lines, profile.CIC())
	require.True(t, ok)
	assert.Equal(t, 1, idx)
	assert.Equal(t,
		[]profile.Role{profile.RoleDate, profile.RoleLabel, profile.RoleDebit, profile.RoleCredit},
		m.roles)
}

func TestFindHeaderHandlesReorderedColumns(t *testing.T) {
	// Debit printed before the label: role order must follow the header,
	// not a fixed column index.
	lines := clusterLines([]Fragment{
		frag(50, 700, "Date"),
		frag(150, 700, "Débit"),
		frag(300, 700, "Libellé"),
		frag(450, 700, "Crédit"),
	})

	m, _, ok := findHeader(lines, profile.CIC())
	require.True(t, ok)
	assert.Equal(t,
		[]profile.Role{profile.RoleDate, profile.RoleDebit, profile.RoleLabel, profile.RoleCredit},
		m.roles)
}

func TestFindHeaderRejectsPartialHeaders(t *testing.T) {
	lines := clusterLines([]Fragment{
		frag(50, 700, "Date"),
		frag(150, 700, "Libellé"),
		// No debit/credit columns.
	})

	_, _, ok := findHeader(lines, profile.CIC())
	assert.False(t, ok)
}

func TestExtractRawRowsAssignsCellsByColumn(t *testing.T) {
	lines := clusterLines([]Fragment{
		frag(50, 700, "Date"),
		frag(150, 700, "Libellé"),
		frag(320, 700, "Débit"),
		frag(420, 700, "Crédit"),
		frag(50, 680, "05/01/2024"),
		frag(150, 680, "LOYER JANVIER"),
		frag(330, 680, "650,00"),
		frag(50, 660, "08/01/2024"),
		frag(150, 660, "VIREMENT SALAIRE"),
		frag(430, 660, "2.100,00"),
	})

	m, idx, ok := findHeader(lines, profile.CIC())
	require.True(t, ok)

	rows := extractRawRows(lines[idx+1:], m, 1)
	require.Len(t, rows, 2)

	assert.Equal(t, "05/01/2024", rows[0].Date)
	assert.Equal(t, "LOYER JANVIER", rows[0].Label)
	assert.Equal(t, "650,00", rows[0].Debit)
	assert.Empty(t, rows[0].Credit)

	assert.Equal(t, "08/01/2024", rows[1].Date)
	assert.Equal(t, "2.100,00", rows[1].Credit)
	assert.Empty(t, rows[1].Debit)
	assert.Equal(t, 1, rows[1].Page)
}
