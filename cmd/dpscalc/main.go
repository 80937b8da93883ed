package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/td2calc/internal/config"
	"github.com/udisondev/td2calc/internal/data"
	"github.com/udisondev/td2calc/internal/game/combat"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	opts, err := parseOptions(flag.CommandLine, os.Args[1:])
	if err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(2)
	}

	if err := run(ctx, opts); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options) error {
	level := slog.LevelInfo
	if opts.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))

	cfg, err := config.LoadCalculator(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	slog.Info("config loaded", "path", opts.ConfigPath, "crit_chance_cap", cfg.CritChanceCap, "reload_speed_cap", cfg.ReloadSpeedCap)

	if err := data.LoadCatalogs(); err != nil {
		return fmt.Errorf("loading catalogs: %w", err)
	}

	specs, err := loadBuildFile(opts.BuildsPath)
	if err != nil {
		return err
	}

	results, err := evaluateAll(ctx, combat.NewCalculator(cfg), specs, opts.Workers)
	if err != nil {
		return err
	}

	return printResults(os.Stdout, specs, results)
}

// evaluateAll evaluates every build with at most workers running at once.
// Results keep the input order.
func evaluateAll(ctx context.Context, calc *combat.Calculator, specs []buildSpec, workers int) ([]combat.Result, error) {
	results := make([]combat.Result, len(specs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))

	for i := range specs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			b, err := specs[i].toBuild()
			if err != nil {
				return fmt.Errorf("build %q: %w", specs[i].Name, err)
			}
			results[i] = calc.Evaluate(b)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	slog.Info("builds evaluated", "count", len(results))
	return results, nil
}

func printResults(w io.Writer, specs []buildSpec, results []combat.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "build\tbody\tbody crit\theadshot\theadshot crit\tchc\tmag\treload\tDPS\t")
	for i, r := range results {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%.1f%%\t%d\t%.2fs\t%d\t\n",
			specs[i].Name,
			r.BodyDamage, r.BodyCritDamage, r.HeadshotDamage, r.HeadshotCritDamage,
			r.CritChance, r.MagSize, r.ReloadTime, r.DPS)
	}
	return tw.Flush()
}
