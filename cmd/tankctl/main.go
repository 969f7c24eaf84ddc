// SPDX-License-Identifier: MIT

// Command tankctl reconciles tank readings against a plant catalog.
//
//	tankctl [-config tankctl.toml] [-catalog plant.toml] [-readings readings.toml] <command> [flags]
//
// Commands:
//
//	reconcile [-module NAME]                      evaluate every reading (or one module)
//	simulate  -module NAME -water L -makeup L     try a makeup blend on a module
//	refill    -module NAME                        refill a module to capacity at target
//	watch                                         re-evaluate whenever the readings file changes
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/tankmix/catalog"
	"github.com/katalvlaran/tankmix/engine"
	"github.com/katalvlaran/tankmix/logging"
	"github.com/katalvlaran/tankmix/refill"
	"github.com/katalvlaran/tankmix/service"
	"github.com/katalvlaran/tankmix/simulate"
)

var errUsage = errors.New("usage: tankctl [-config file] <reconcile|simulate|refill|watch> [flags]")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "tankctl: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// app is one tankctl invocation.
type app struct {
	cfg    toolConfig
	log    zerolog.Logger
	stdout io.Writer
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("tankctl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "tool config file (TOML)")
	catalogPath := fs.String("catalog", "", "plant catalog (TOML or YAML), overrides config")
	readingsPath := fs.String("readings", "", "readings file (TOML or YAML), overrides config")
	workers := fs.Int("workers", 0, "modules evaluated concurrently, overrides config")
	legacy := fs.Bool("legacy", false, "use the legacy high/low fallback instead of the optimizing tiers")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := defaultToolConfig()
	if *configPath != "" {
		var err error
		if cfg, err = loadToolConfig(*configPath); err != nil {
			return err
		}
	}
	if *catalogPath != "" {
		cfg.Catalog = *catalogPath
	}
	if *readingsPath != "" {
		cfg.Readings = *readingsPath
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}
	if *legacy {
		cfg.Legacy = true
	}

	logging.ConfigureRuntime()
	a := &app{
		cfg:    cfg,
		log:    logging.NewWithConfig(stderr, "tankctl", logging.Current()),
		stdout: stdout,
	}

	if fs.NArg() == 0 {
		return errUsage
	}
	sub := fs.Args()[1:]
	switch fs.Arg(0) {
	case "reconcile":
		return a.reconcile(ctx, sub)
	case "simulate":
		return a.simulate(sub)
	case "refill":
		return a.refill(sub)
	case "watch":
		return a.watch(ctx)
	default:
		return fmt.Errorf("unknown command %q: %w", fs.Arg(0), errUsage)
	}
}

func (a *app) dispatcher() *service.Dispatcher {
	var opts []engine.Option
	if a.cfg.Legacy {
		opts = append(opts, engine.WithLegacyFallback())
	}

	return service.New(engine.New(opts...), a.log,
		service.WithWorkers(a.cfg.Workers),
		service.WithEpsilon(a.cfg.Epsilon),
	)
}

func (a *app) load() (*catalog.Catalog, *catalog.Readings, error) {
	c, err := catalog.Load(a.cfg.Catalog)
	if err != nil {
		return nil, nil, err
	}
	rs, err := catalog.LoadReadings(a.cfg.Readings)
	if err != nil {
		return nil, nil, err
	}

	return c, rs, nil
}

// pick returns the module called name and its last reading.
func (a *app) pick(name string) (catalog.Module, catalog.Reading, error) {
	c, rs, err := a.load()
	if err != nil {
		return catalog.Module{}, catalog.Reading{}, err
	}
	m, ok := c.Module(name)
	if !ok {
		return catalog.Module{}, catalog.Reading{}, fmt.Errorf("%q: %w", name, catalog.ErrUnknownModule)
	}
	for i := len(rs.Readings) - 1; i >= 0; i-- {
		if rs.Readings[i].Module == name {
			return m, rs.Readings[i], nil
		}
	}

	return catalog.Module{}, catalog.Reading{}, fmt.Errorf("no reading for %q in %s", name, a.cfg.Readings)
}

func (a *app) reconcile(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("reconcile", flag.ContinueOnError)
	module := fs.String("module", "", "evaluate only this module")
	if err := fs.Parse(args); err != nil {
		return err
	}

	c, rs, err := a.load()
	if err != nil {
		return err
	}
	if *module != "" {
		kept := rs.Readings[:0]
		for _, r := range rs.Readings {
			if r.Module == *module {
				kept = append(kept, r)
			}
		}
		rs.Readings = kept
	}

	reports, err := a.dispatcher().EvaluateAll(ctx, c, rs)
	printReports(a.stdout, reports)

	return err
}

func (a *app) simulate(args []string) error {
	fs := flag.NewFlagSet("simulate", flag.ContinueOnError)
	module := fs.String("module", "", "module to simulate")
	water := fs.Float64("water", 0, "liters of water to add")
	makeup := fs.Float64("makeup", 0, "liters of makeup solution to add")
	if err := fs.Parse(args); err != nil {
		return err
	}

	m, r, err := a.pick(*module)
	if err != nil {
		return err
	}
	req, err := m.Request(r, a.cfg.Epsilon)
	if err != nil {
		return err
	}
	out, err := simulate.Blend(req.State, *water, *makeup, req.Makeup())
	if err != nil {
		return err
	}
	printOutcome(a.stdout, m, out)

	return nil
}

func (a *app) refill(args []string) error {
	fs := flag.NewFlagSet("refill", flag.ContinueOnError)
	module := fs.String("module", "", "module to refill")
	if err := fs.Parse(args); err != nil {
		return err
	}

	m, r, err := a.pick(*module)
	if err != nil {
		return err
	}
	req, err := m.Request(r, a.cfg.Epsilon)
	if err != nil {
		return err
	}
	plan, err := refill.Refill(req)
	if err != nil {
		return err
	}
	printPlan(a.stdout, req.Components, plan)

	return nil
}

func (a *app) watch(ctx context.Context) error {
	c, err := catalog.Load(a.cfg.Catalog)
	if err != nil {
		return err
	}
	err = a.dispatcher().Watch(ctx, c, a.cfg.Readings, func(reports []service.Report, err error) {
		if err != nil {
			fmt.Fprintf(a.stdout, "error: %v\n", err)
		}
		printReports(a.stdout, reports)
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}

	return err
}
