package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/brettbedarf/netnode"
	"github.com/brettbedarf/netnode/challenge"
	"github.com/brettbedarf/netnode/config"
	"github.com/brettbedarf/netnode/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tests here are serial: the logger and the environment are process-wide.

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, input string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRoot_ScriptedMission(t *testing.T) {
	cfgPath := writeFile(t, "netnode.yaml", "reveal_delay_ms: 0\nbanner: false\n")

	src := challenge.NewSource(99)
	sequence := challenge.NewSequence(src, config.DefaultSequenceLength, 0).Generate()
	x, y := challenge.NewArithmetic(src, config.DefaultOperandMin, config.DefaultOperandMax).Generate()

	input := strings.Join([]string{
		"ls",
		"hack private", sequence,
		"cd private",
		"decrypt project_omega.txt", strconv.Itoa(x + y),
		"cat project_omega.txt",
		"exit",
	}, "\n") + "\n"

	stdout, _, err := execute(t, input, "--seed", "99", "--config", cfgPath, "--log-file", filepath.Join(t.TempDir(), "netnode.log"))
	require.NoError(t, err)

	assert.NotContains(t, stdout, "NEURAL-LINK", "banner must be disabled by the config file")
	assert.NotContains(t, stdout, "user@net-node", "prompts must be hidden for piped input")
	assert.Contains(t, stdout, "[DIR]  private (LOCKED)\n")
	assert.Contains(t, stdout, "SUCCESS: Security bypassed.\n")
	assert.Contains(t, stdout, "SUCCESS: File decrypted.\n")
	assert.Contains(t, stdout, "\n\n[MISSION COMPLETE] You've recovered the secret data!\n")
	assert.True(t, strings.HasSuffix(stdout, "Connection closed. Goodbye, Operator.\n"))
}

func TestRoot_EndOfInput(t *testing.T) {
	stdout, _, err := execute(t, "foo\n", "-v", "1")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stdout, "====="), "banner must be printed by default")
	assert.Contains(t, stdout, "Command not found: foo\n")
	assert.True(t, strings.HasSuffix(stdout, "Connection closed. Goodbye, Operator.\n"))
}

func TestRoot_StartupErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing config", []string{"--config", filepath.Join(t.TempDir(), "none.yaml")}},
		{"bad config extension", []string{"--config", writeFile(t, "cfg.toml", "seed = 1")}},
		{"invalid config", []string{"--config", writeFile(t, "cfg.yaml", "operand_min: 9\noperand_max: 1\n")}},
		{"missing world", []string{"--world", filepath.Join(t.TempDir(), "none.yaml")}},
		{"invalid world", []string{"--world", writeFile(t, "world.yaml", "nodes:\n  - type: file\n    path: a/../b\n")}},
		{"unexpected argument", []string{"extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, "exit\n", tt.args...)
			assert.Error(t, err, "must fail before the session starts")
			assert.Empty(t, stdout, "must not start a session")
		})
	}
}

func TestRoot_InvalidWorldError(t *testing.T) {
	path := writeFile(t, "world.json", `{"name":"x","nodes":[{"type":"file","path":"a"},{"type":"file","path":"a"}]}`)

	_, _, err := execute(t, "", "--world", path)
	assert.ErrorIs(t, err, netnode.ErrInvalidWorld)
}

func TestLoadConfig_Precedence(t *testing.T) {
	cfgPath := writeFile(t, "netnode.json", `{"seed": 1, "sequence_length": 6, "verbose": 5, "user": "file"}`)
	t.Setenv(config.EnvPrefix+"SEED", "2")
	t.Setenv(config.EnvPrefix+"SEQUENCE_LENGTH", "8")
	t.Setenv(config.EnvPrefix+"REVEAL_DELAY", "150ms")

	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--config", cfgPath, "--seed", "3"}))
	opts := options{configPath: cfgPath, seed: 3, verbose: config.DefaultVerbose}

	cfg, err := loadConfig(cmd, opts)
	require.NoError(t, err)

	require.NotNil(t, cfg.Seed)
	assert.Equal(t, int64(3), *cfg.Seed, "flag must win over env and file")
	assert.Equal(t, 8, cfg.SequenceLength, "env must win over file")
	assert.Equal(t, 150*time.Millisecond, cfg.RevealDelay)
	assert.Equal(t, util.TraceLevel, cfg.LogLvl, "unset flag must keep the file value")
	assert.Equal(t, "file", cfg.User)
}

func TestRoot_LogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "netnode.log")

	_, stderr, err := execute(t, "exit\n", "-v", "3", "--log-file", logPath)
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "World loaded")
	assert.Empty(t, stderr, "logs must go to the log file only")
}

func TestLoadConfig_ZeroSeedFlag(t *testing.T) {
	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--seed", "0"}))

	cfg, err := loadConfig(cmd, options{seed: 0, verbose: config.DefaultVerbose})
	require.NoError(t, err)

	require.NotNil(t, cfg.Seed, "an explicit zero seed must be kept")
	assert.Equal(t, int64(0), *cfg.Seed)
}

func TestLoadConfig_UnsetSeed(t *testing.T) {
	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags(nil))

	cfg, err := loadConfig(cmd, options{verbose: config.DefaultVerbose})
	require.NoError(t, err)
	assert.Nil(t, cfg.Seed, "an unset seed must be drawn per run")
}
