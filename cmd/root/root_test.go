package root_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mbaillet/cic-xlsx/cmd/root"
)

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "cic-xlsx", root.Cmd.Use)
	assert.Contains(t, root.Cmd.Short, "CIC statement PDFs")
	assert.Contains(t, root.Cmd.Long, "styled XLSX workbook")
	assert.NotNil(t, root.Cmd.Run)
	assert.NotNil(t, root.Cmd.PersistentPreRun)
}

func TestRootCommand_Flags(t *testing.T) {
	root.Init()

	outputFlag := root.Cmd.PersistentFlags().Lookup("output")
	require.NotNil(t, outputFlag)
	assert.Equal(t, "o", outputFlag.Shorthand)

	profileFlag := root.Cmd.PersistentFlags().Lookup("profile")
	require.NotNil(t, profileFlag)
	assert.Equal(t, "p", profileFlag.Shorthand)

	scopeFlag := root.Cmd.PersistentFlags().Lookup("scope")
	require.NotNil(t, scopeFlag)
	assert.Equal(t, "cic", scopeFlag.DefValue)
}

func TestGetLogrusAdapter(t *testing.T) {
	assert.NotNil(t, root.GetLogrusAdapter())
}

func TestRootCommand_ConfigFromEnvironment(t *testing.T) {
	t.Setenv("CIC_EXPORT_SCOPE", "perso")
	t.Setenv("CIC_EXPORT_MAX_COLUMN_WIDTH", "24")
	t.Setenv("CIC_CSV_DELIMITER", ",")

	root.Cmd.PersistentPreRun(root.Cmd, nil)

	require.NotNil(t, root.Cfg)
	assert.Equal(t, "perso", root.Cfg.Export.Scope)
	assert.Equal(t, 24.0, root.MaxColumnWidth())
	assert.Equal(t, ',', root.CSVDelimiter())

	// Scope was not given on the command line, so the configured value
	// backfills the shared flag.
	assert.Equal(t, "perso", root.SharedFlags.Scope)
}
