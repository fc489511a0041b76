package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/soypat/rng16"
	"github.com/soypat/rng16/internal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	envPrefix      = "RNG16"
	configBasename = ".rng16"
)

// app holds state shared by all subcommands of a single invocation.
type app struct {
	v   *viper.Viper
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	root := &cobra.Command{
		Use:   "rng16",
		Short: "Full period 16-bit xorshift generators.",
		Long: `Full period 16-bit xorshift generators.
List the available variants, print sequences, verify periods and derive seeds
from ADC readings. For example:
  rng16 gen --variant b71 --seed 0x1234 --count 8
  rng16 period --all
  rng16 seed --reading 0x3ff --bits 10 --tick 0x1234`,
		SilenceUsage:      true,
		PersistentPreRunE: a.init,
	}
	flags := root.PersistentFlags()
	flags.String("config", "", "config file (default is $HOME/"+configBasename+".yaml)")
	flags.String("log-level", "warn", "log level: trace, debug, info, warn or error")
	root.AddCommand(a.listCmd(), a.genCmd(), a.periodCmd(), a.seedCmd())
	return root
}

// init binds flags, environment and config file into the viper instance and
// sets up logging. Flags take precedence over environment over config file.
func (a *app) init(cmd *cobra.Command, args []string) error {
	v := a.v
	err := v.BindPFlags(cmd.Flags())
	if err != nil {
		return err
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	loaded := false
	if cfgFile := v.GetString("config"); cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config: %w", err)
		}
		loaded = true
	} else if home, err := homedir.Dir(); err == nil {
		v.SetConfigFile(filepath.Join(home, configBasename+".yaml"))
		err = v.ReadInConfig()
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("reading config: %w", err)
		}
		loaded = err == nil
	}

	lvl, ok := internal.ParseLevel(v.GetString("log-level"))
	if !ok {
		return fmt.Errorf("unknown log level %q", v.GetString("log-level"))
	}
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl}))
	if loaded {
		internal.LogAttrs(a.log, slog.LevelDebug, "config loaded", slog.String("file", v.ConfigFileUsed()))
	}
	return nil
}

// variant resolves the variant config key. "default" and "xor16" name [rng16.Default].
func (a *app) variant() (rng16.Variant, error) {
	tag := a.v.GetString("variant")
	switch strings.ToLower(tag) {
	case "", "default", "xor16":
		return rng16.Default, nil
	}
	return rng16.ParseVariant(tag)
}

// parseUint16 parses decimal, 0x hex, 0o octal or 0b binary numbers.
func parseUint16(s string) (uint16, error) {
	u, err := strconv.ParseUint(strings.TrimSpace(s), 0, 16)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return 0, fmt.Errorf("%q: %w", s, err)
	}
	return uint16(u), nil
}

func writeValue(w io.Writer, format string, x uint16) (err error) {
	switch format {
	case "hex":
		_, err = fmt.Fprintf(w, "%#04x\n", x)
	case "dec":
		_, err = fmt.Fprintf(w, "%d\n", x)
	case "bin":
		_, err = fmt.Fprintf(w, "%016b\n", x)
	default:
		err = fmt.Errorf("unknown format %q", format)
	}
	return err
}

func validFormat(format string) bool {
	switch format {
	case "hex", "dec", "bin":
		return true
	}
	return false
}
