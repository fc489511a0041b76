package main

import (
	"fmt"
	"log/slog"

	"github.com/soypat/rng16"
	"github.com/soypat/rng16/internal"
	"github.com/soypat/rng16/seed"
	"github.com/spf13/cobra"
)

func (a *app) genCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Seed a generator and print its next values",
		Args:  cobra.NoArgs,
		RunE:  a.runGen,
	}
	flags := cmd.Flags()
	flags.StringP("variant", "v", "default", "generator variant tag, i.e: b71")
	flags.StringP("seed", "s", "1", "non-zero seed, decimal or 0x prefixed hex")
	flags.String("seed-text", "", "derive the seed by hashing this text instead of --seed")
	flags.IntP("count", "n", 16, "number of values to print")
	flags.StringP("format", "f", "hex", "output format: hex, dec or bin")
	return cmd
}

func (a *app) runGen(cmd *cobra.Command, args []string) error {
	var val internal.Validator
	variant, err := a.variant()
	if err != nil {
		val.AddFieldErr("variant", err)
	}
	var s uint16
	if text := a.v.GetString("seed-text"); text != "" {
		s = seed.FromBytes([]byte(text))
	} else if s, err = parseUint16(a.v.GetString("seed")); err != nil {
		val.AddFieldErr("seed", err)
	}
	count := a.v.GetInt("count")
	if count < 0 {
		val.AddFieldErr("count", fmt.Errorf("negative count %d", count))
	}
	format := a.v.GetString("format")
	if !validFormat(format) {
		val.AddFieldErr("format", fmt.Errorf("unknown format %q", format))
	}
	if val.HasError() {
		return val.Err()
	}

	g := variant.New()
	if !g.Seed(s) {
		return rng16.ErrZeroSeed
	}
	internal.LogAttrs(a.log, slog.LevelDebug, "seeded", slog.String("variant", variant.String()), slog.Uint64("seed", uint64(s)))
	out := cmd.OutOrStdout()
	trace := internal.LogEnabled(a.log, internal.LevelTrace)
	for i := 0; i < count; i++ {
		x := g.Next()
		if trace {
			internal.LogAttrs(a.log, internal.LevelTrace, "next", slog.Int("i", i), slog.Uint64("x", uint64(x)))
		}
		err = writeValue(out, format, x)
		if err != nil {
			return err
		}
	}
	return nil
}
