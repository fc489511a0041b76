package main

import (
	"fmt"
	"log/slog"

	"github.com/soypat/rng16"
	"github.com/soypat/rng16/internal"
	"github.com/soypat/rng16/seed"
	"github.com/spf13/cobra"
)

func (a *app) seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Derive a seed from an ADC reading, tick count or text",
		Args:  cobra.NoArgs,
		RunE:  a.runSeed,
	}
	flags := cmd.Flags()
	flags.StringP("reading", "r", "", "raw ADC reading")
	flags.IntP("bits", "b", 10, "meaningful bits in the reading: 8, 10, 12, 13, 14, 15 or 16")
	flags.StringP("tick", "t", "", "free running tick count mixed into the seed")
	flags.String("text", "", "derive the seed by hashing this text instead of a reading")
	flags.StringP("format", "f", "hex", "output format: hex, dec or bin")
	return cmd
}

func (a *app) runSeed(cmd *cobra.Command, args []string) error {
	v := a.v
	val := internal.NewValidator(internal.ValidateAllowMultiErrors)
	format := v.GetString("format")
	if !validFormat(format) {
		val.AddFieldErr("format", fmt.Errorf("unknown format %q", format))
	}
	var s uint16
	if text := v.GetString("text"); text != "" {
		s = seed.FromBytes([]byte(text))
	} else {
		var reading, tick uint16
		var err error
		if v.GetString("reading") == "" {
			val.AddFieldErr("reading", fmt.Errorf("missing ADC reading"))
		} else if reading, err = parseUint16(v.GetString("reading")); err != nil {
			val.AddFieldErr("reading", err)
		}
		width, err := seed.ParseWidth(v.GetInt("bits"))
		if err != nil {
			val.AddFieldErr("bits", err)
		}
		useTick := v.GetString("tick") != ""
		if useTick {
			tick, err = parseUint16(v.GetString("tick"))
			if err != nil {
				val.AddFieldErr("tick", err)
			}
		}
		if val.HasError() {
			return val.Err()
		}
		if useTick {
			s = seed.FromADCTick(reading, width, tick)
		} else {
			s = seed.FromADC(reading, width)
		}
		internal.LogAttrs(a.log, slog.LevelDebug, "derived", slog.Uint64("reading", uint64(reading)), slog.String("width", width.String()), slog.Bool("tick", useTick))
	}
	if val.HasError() {
		return val.Err()
	}
	if s == 0 {
		return fmt.Errorf("derived seed: %w", rng16.ErrZeroSeed)
	}
	return writeValue(cmd.OutOrStdout(), format, s)
}
