package main

import (
	"bytes"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_ResolveLocally(t *testing.T) {
	t.Setenv("RPGSHEET_LOGGING_LEVEL", "error")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"resolve", "armed_attack", "--weapon", "hook_sword", "--seed", "7"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Hook Sword (G4) [Personal]")
	assert.Contains(t, out.String(), "Damage: ")
}

func TestRootCommand_RejectsBadConfig(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"skills", "--log-format", "xml"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		_ = rootCmd.PersistentFlags().Set("log-format", "text")
	})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.format")
}

func TestSessionsCheck_AgainstRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	mr.Lpush("sheet_session:local:history", "not json")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"sessions", "check", "--fix", "--redis", mr.Addr(), "--log-level", "error"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		_ = rootCmd.PersistentFlags().Set("redis", "")
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Checked 1 keys, found 1 corrupt values")
	assert.Contains(t, out.String(), "Removed 1 values")
	assert.False(t, mr.Exists("sheet_session:local:history"))
}
