package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/soypat/rng16"
	"github.com/stretchr/testify/require"
)

func init() {
	homedir.DisableCache = true
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestList(t *testing.T) {
	out, err := run(t, "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 60)
	require.Contains(t, out, "b71\t<<11 >>7  <<1 \n")
	require.Contains(t, out, "3d9\t<<3  >>13 <<9  *\n")
}

func TestGen(t *testing.T) {
	out, err := run(t, "gen", "--variant", "b71", "--seed", "0x1234", "--count", "4")
	require.NoError(t, err)
	require.Equal(t, "0xd5f0\n0xffed\n0xbb46\n0x9ef0\n", out)

	out, err = run(t, "gen", "-v", "B71", "-s", "4660", "-n", "1", "-f", "dec")
	require.NoError(t, err)
	require.Equal(t, "54768\n", out)

	out, err = run(t, "gen", "-v", "b71", "-s", "0x1234", "-n", "1", "-f", "bin")
	require.NoError(t, err)
	require.Equal(t, "1101010111110000\n", out)

	out, err = run(t, "gen", "--seed", "1", "--count", "1")
	require.NoError(t, err)
	require.Equal(t, "0x1209\n", out, "default variant")

	out, err = run(t, "gen", "--variant", "b71", "--seed-text", "rng16", "--count", "1")
	require.NoError(t, err)
	require.Equal(t, "0xcd15\n", out)
}

func TestGenErrors(t *testing.T) {
	_, err := run(t, "gen", "--seed", "0")
	require.ErrorIs(t, err, rng16.ErrZeroSeed)

	_, err = run(t, "gen", "--variant", "zzz")
	require.ErrorIs(t, err, rng16.ErrUnknownVariant)

	_, err = run(t, "gen", "--seed", "0x10000")
	require.Error(t, err)
	require.Contains(t, err.Error(), "seed")

	_, err = run(t, "gen", "--format", "oct")
	require.Error(t, err)
}

func TestGenEnvAndConfig(t *testing.T) {
	t.Setenv("RNG16_VARIANT", "b71")
	out, err := run(t, "gen", "--seed", "0x1234", "--count", "1")
	require.NoError(t, err)
	require.Equal(t, "0xd5f0\n", out)

	cfg := filepath.Join(t.TempDir(), "rng16.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("seed: 0x1234\ncount: 2\n"), 0o644))
	out, err = run(t, "gen", "--config", cfg)
	require.NoError(t, err)
	require.Equal(t, "0xd5f0\n0xffed\n", out)

	// Flags take precedence over environment and config file.
	out, err = run(t, "gen", "--config", cfg, "--variant", "3d9", "--seed", "1", "--count", "1")
	require.NoError(t, err)
	require.Equal(t, "0x1209\n", out)

	_, err = run(t, "gen", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestPeriod(t *testing.T) {
	out, err := run(t, "period", "--variant", "b71", "--start", "0x1234")
	require.NoError(t, err)
	require.Equal(t, "b71\tperiod 65,535\tok\n", out)

	out, err = run(t, "period", "--all")
	require.NoError(t, err)
	require.Equal(t, 60, strings.Count(out, "\tperiod 65,535\tok\n"))

	_, err = run(t, "period", "--start", "0")
	require.ErrorIs(t, err, rng16.ErrZeroSeed)
}

func TestWalkCycle(t *testing.T) {
	rep := walkCycle(rng16.VariantD97, 0xffff)
	require.True(t, rep.ok())
	require.Equal(t, fullPeriod, rep.period)

	rep = walkCycle(rng16.VariantD97, 0)
	require.False(t, rep.ok())
	require.True(t, rep.zero)
}

func TestSeed(t *testing.T) {
	out, err := run(t, "seed", "--reading", "0x3ff", "--bits", "10")
	require.NoError(t, err)
	require.Equal(t, "0x3f3f\n", out)

	out, err = run(t, "seed", "-r", "0x3ff", "-b", "16")
	require.NoError(t, err)
	require.Equal(t, "0xfc30\n", out)

	out, err = run(t, "seed", "-r", "0x3ff", "-b", "10", "--tick", "0x1234")
	require.NoError(t, err)
	require.Equal(t, "0x29b4\n", out)

	out, err = run(t, "seed", "--text", "rng16", "-f", "dec")
	require.NoError(t, err)
	require.Equal(t, "40059\n", out)

	_, err = run(t, "seed", "-r", "0x3ff", "-b", "9")
	require.ErrorIs(t, err, rng16.ErrBadWidth)

	_, err = run(t, "seed", "-r", "0", "-b", "16")
	require.ErrorIs(t, err, rng16.ErrZeroSeed)

	_, err = run(t, "seed", "-b", "9", "--tick", "xyz")
	require.Error(t, err)
	for _, field := range []string{"reading", "bits", "tick"} {
		require.Contains(t, err.Error(), field)
	}
}

func TestBadLogLevel(t *testing.T) {
	_, err := run(t, "list", "--log-level", "loud")
	require.Error(t, err)
}
