// Package profile defines statement locale profiles: the header keywords,
// date layout and number separators of one bank's statement format. The
// pipeline is parameterized on a Profile so supporting another bank means
// shipping another YAML file, not changing parser code.
package profile

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"mbaillet/cic-xlsx/internal/currencyutils"
	"mbaillet/cic-xlsx/internal/dateutils"
)

// Role identifies a column of the transaction table.
type Role string

const (
	RoleDate   Role = "date"
	RoleLabel  Role = "label"
	RoleDebit  Role = "debit"
	RoleCredit Role = "credit"
)

// Roles lists every column role a table header must provide.
var Roles = []Role{RoleDate, RoleLabel, RoleDebit, RoleCredit}

// Profile describes one statement format.
type Profile struct {
	Name           string            `yaml:"name"`
	DateLayout     string            `yaml:"date_layout"`
	DecimalSep     string            `yaml:"decimal_separator"`
	ThousandsSep   string            `yaml:"thousands_separator"`
	Currency       []string          `yaml:"currency_symbols"`
	HeaderKeywords map[Role][]string `yaml:"header_keywords"`
}

// CIC returns the built-in profile for CIC statements: DD/MM/YYYY dates,
// "1.234,56" amounts and French column headings.
func CIC() Profile {
	return Profile{
		Name:         "cic",
		DateLayout:   dateutils.LayoutFrench,
		DecimalSep:   ",",
		ThousandsSep: ".",
		Currency:     []string{"€", "EUR"},
		HeaderKeywords: map[Role][]string{
			RoleDate:   {"date"},
			RoleLabel:  {"libelle", "operation", "libelle de l'operation"},
			RoleDebit:  {"debit"},
			RoleCredit: {"credit"},
		},
	}
}

// Separators returns the number separators in the form currencyutils expects.
func (p Profile) Separators() currencyutils.Separators {
	return currencyutils.Separators{
		Decimal:   p.DecimalSep,
		Thousands: p.ThousandsSep,
		Currency:  p.Currency,
	}
}

// Validate checks that the profile is complete enough to drive extraction.
func (p Profile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("profile has no name")
	}
	if p.DateLayout == "" {
		return fmt.Errorf("profile '%s' has no date layout", p.Name)
	}
	if p.DecimalSep == "" {
		return fmt.Errorf("profile '%s' has no decimal separator", p.Name)
	}
	for _, role := range Roles {
		if len(p.HeaderKeywords[role]) == 0 {
			return fmt.Errorf("profile '%s' has no header keywords for column role '%s'",
				p.Name, role)
		}
	}
	return nil
}

// KeywordsFor returns the normalized header keywords for a role. Keywords
// are matched case- and diacritic-insensitively by the table locator, so
// they are stored lowercase without accents.
func (p Profile) KeywordsFor(role Role) []string {
	out := make([]string, 0, len(p.HeaderKeywords[role]))
	for _, kw := range p.HeaderKeywords[role] {
		out = append(out, strings.ToLower(strings.TrimSpace(kw)))
	}
	return out
}

// Load reads a profile from a YAML file.
func Load(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("failed to read profile file: %w", err)
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("failed to parse profile file %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// Save writes a profile to a YAML file, mostly useful to bootstrap a new
// bank profile from the built-in one.
func Save(p Profile, path string) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write profile file %s: %w", path, err)
	}
	return nil
}
