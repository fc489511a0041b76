package main

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/soypat/rng16"
	"github.com/soypat/rng16/internal"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const fullPeriod = 1<<16 - 1

func (a *app) periodCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "period",
		Short: "Verify generators visit every non-zero state before repeating",
		Args:  cobra.NoArgs,
		RunE:  a.runPeriod,
	}
	flags := cmd.Flags()
	flags.StringP("variant", "v", "default", "generator variant tag, i.e: b71")
	flags.Bool("all", false, "check every variant")
	flags.String("start", "1", "non-zero starting state")
	return cmd
}

// cycleReport is the result of walking a generator from a starting state.
type cycleReport struct {
	variant rng16.Variant
	period  int
	zero    bool // Generator reached the zero state.
	short   bool // Generator revisited a state other than the start.
}

func (r cycleReport) ok() bool { return !r.zero && !r.short && r.period == fullPeriod }

func (r cycleReport) status() string {
	switch {
	case r.zero:
		return color.RedString("FAIL reached zero")
	case r.short:
		return color.RedString("FAIL entered a cycle not containing start")
	case r.period != fullPeriod:
		return color.RedString("FAIL short period")
	}
	return color.GreenString("ok")
}

// walkCycle advances a fresh generator from start until it returns to start.
// Each call owns its generator so walks may run concurrently.
func walkCycle(v rng16.Variant, start uint16) cycleReport {
	rep := cycleReport{variant: v}
	g := v.New()
	if !g.Seed(start) {
		rep.zero = true
		return rep
	}
	var visited [1 << 16 / 64]uint64
	for rep.period <= fullPeriod {
		x := g.Next()
		rep.period++
		switch {
		case x == start:
			return rep
		case x == 0:
			rep.zero = true
			return rep
		case visited[x/64]&(1<<(x%64)) != 0:
			rep.short = true
			return rep
		}
		visited[x/64] |= 1 << (x % 64)
	}
	return rep
}

func (a *app) runPeriod(cmd *cobra.Command, args []string) error {
	var val internal.Validator
	start, err := parseUint16(a.v.GetString("start"))
	if err != nil {
		val.AddFieldErr("start", err)
	} else if start == 0 {
		val.AddFieldErr("start", rng16.ErrZeroSeed)
	}
	var variants []rng16.Variant
	if a.v.GetBool("all") {
		variants = rng16.Variants()
	} else if v, err := a.variant(); err != nil {
		val.AddFieldErr("variant", err)
	} else {
		variants = []rng16.Variant{v}
	}
	if val.HasError() {
		return val.Err()
	}

	reports := make([]cycleReport, len(variants))
	group, ctx := errgroup.WithContext(cmd.Context())
	group.SetLimit(runtime.GOMAXPROCS(0))
	for i, v := range variants {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			reports[i] = walkCycle(v, start)
			internal.LogAttrs(a.log, slog.LevelDebug, "walked cycle", slog.String("variant", v.String()), slog.Int("period", reports[i].period))
			return nil
		})
	}
	err = group.Wait()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, rep := range reports {
		if !rep.ok() {
			failed++
		}
		_, err = fmt.Fprintf(out, "%s\tperiod %s\t%s\n", rep.variant, humanize.Comma(int64(rep.period)), rep.status())
		if err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d variants not full period", failed, len(reports))
	}
	return nil
}
