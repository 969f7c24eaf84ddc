// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/zoobzio/capitan"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/tankmix/catalog"
	"github.com/katalvlaran/tankmix/engine"
	"github.com/katalvlaran/tankmix/refill"
	"github.com/katalvlaran/tankmix/tank"
	"github.com/katalvlaran/tankmix/watch"
)

// ErrRejected is returned when the engine rejects a request built from a reading.
var ErrRejected = errors.New("service: request rejected")

// Action names what a report asks the operator to do.
type Action string

const (
	ActionReconcile Action = "reconcile"
	ActionFortify   Action = "fortify"
	ActionRefill    Action = "refill"
)

// Report is the evaluation of one module reading.
type Report struct {
	ID     uuid.UUID
	Module string
	Kind   catalog.Kind
	Action Action

	// Request is what the module and reading resolved to.
	Request tank.Request

	// Result is set for ActionReconcile.
	Result tank.Result

	// Plan is set for ActionFortify and ActionRefill.
	Plan refill.Plan
}

// Status summarizes the report for display.
func (r Report) Status() string {
	if r.Action == ActionReconcile {
		return r.Result.Status.String()
	}

	return string(r.Action)
}

// Dispatcher evaluates readings against a catalog.
type Dispatcher struct {
	engine *engine.Engine
	log    zerolog.Logger
	opts   options
}

// New returns a Dispatcher that reconciles with e and logs to log.
func New(e *engine.Engine, log zerolog.Logger, opts ...Option) *Dispatcher {
	o := options{workers: DefaultWorkers}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if e == nil {
		e = engine.New()
	}

	return &Dispatcher{engine: e, log: log, opts: o}
}

// Evaluate builds the request of m for reading r and corrects it according
// to the module type.
func (d *Dispatcher) Evaluate(ctx context.Context, m catalog.Module, r catalog.Reading) (Report, error) {
	rep, err := d.evaluate(ctx, m, r)
	if err != nil {
		d.log.Error().Err(err).Str("module", m.Name).Msg("evaluation failed")
		capitan.Emit(ctx, ReportFailed,
			KeyModule.Field(m.Name),
			KeyError.Field(err.Error()),
		)

		return Report{}, err
	}

	d.logReport(rep)
	capitan.Emit(ctx, ReportReady,
		KeyReportID.Field(rep.ID.String()),
		KeyModule.Field(rep.Module),
		KeyAction.Field(string(rep.Action)),
		KeyStatus.Field(rep.Status()),
	)

	return rep, nil
}

func (d *Dispatcher) evaluate(ctx context.Context, m catalog.Module, r catalog.Reading) (Report, error) {
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}
	req, err := m.Request(r, d.opts.eps)
	if err != nil {
		return Report{}, err
	}

	rep := Report{ID: uuid.New(), Module: m.Name, Kind: m.Type, Request: req}
	switch m.Type {
	case catalog.KindRefill:
		plan, err := refill.Refill(req)
		if err != nil {
			return Report{}, fmt.Errorf("%s: %w", m.Name, err)
		}
		rep.Action, rep.Plan = ActionRefill, plan

		return rep, nil

	case catalog.KindDosing:
		if above, below := offTarget(req); !above && below {
			plan, err := refill.Fortify(req)
			if err == nil {
				rep.Action, rep.Plan = ActionFortify, plan

				return rep, nil
			}
			if !errors.Is(err, refill.ErrInsufficientSpace) {
				return Report{}, fmt.Errorf("%s: %w", m.Name, err)
			}
			d.log.Debug().Str("module", m.Name).Err(err).Msg("doses do not fit, reconciling")
		}
	}

	res := d.engine.Reconcile(req)
	if res.Status == tank.StatusInvalidRequest {
		return Report{}, fmt.Errorf("%s: %w: %s", m.Name, ErrRejected, res.Message)
	}
	rep.Action, rep.Result = ActionReconcile, res

	return rep, nil
}

// EvaluateAll evaluates every reading of rs against c on at most the
// configured number of workers. Reports come back in reading order; readings
// that fail are left out and their errors joined.
func (d *Dispatcher) EvaluateAll(ctx context.Context, c *catalog.Catalog, rs *catalog.Readings) ([]Report, error) {
	pairs, err := c.Match(rs)
	if err != nil {
		return nil, err
	}

	reports := make([]Report, len(pairs))
	errs := make([]error, len(pairs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.opts.workers)
	for i, p := range pairs {
		g.Go(func() error {
			reports[i], errs[i] = d.Evaluate(gctx, p.Module, p.Reading)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]Report, 0, len(pairs))
	for i := range pairs {
		if errs[i] == nil {
			out = append(out, reports[i])
		}
	}

	return out, errors.Join(errs...)
}

// Watch evaluates the readings at path against c now and after every change
// of the file, handing each batch to fn. It returns when ctx is done.
func (d *Dispatcher) Watch(ctx context.Context, c *catalog.Catalog, path string, fn func([]Report, error)) error {
	format, err := catalog.FormatOf(path)
	if err != nil {
		return err
	}
	w := watch.NewFileWatcher(path)
	ch, err := w.Watch(ctx)
	if err != nil {
		return err
	}

	for data := range ch {
		rs, err := catalog.ParseReadings(data, format)
		if err != nil {
			d.log.Warn().Err(err).Str("path", path).Msg("readings rejected")
			capitan.Emit(ctx, ReportFailed,
				KeyPath.Field(path),
				KeyError.Field(err.Error()),
			)
			fn(nil, err)

			continue
		}
		d.log.Info().Str("path", path).Int("readings", len(rs.Readings)).Msg("readings reloaded")
		capitan.Emit(ctx, ReadingsReloaded,
			KeyPath.Field(path),
			KeyReadings.Field(len(rs.Readings)),
		)
		fn(d.EvaluateAll(ctx, c, rs))
	}

	return ctx.Err()
}

func (d *Dispatcher) logReport(rep Report) {
	ev := d.log.Info().
		Str("id", rep.ID.String()).
		Str("module", rep.Module).
		Str("action", string(rep.Action)).
		Str("status", rep.Status())
	switch rep.Action {
	case ActionReconcile:
		ev = ev.Float64("water", rep.Result.WaterToAdd).
			Float64("makeup", rep.Result.MakeupToAdd).
			Stringer("tier", rep.Result.Tier)
	default:
		ev = ev.Float64("water", rep.Plan.Water).Floats64("doses", rep.Plan.Doses)
	}
	ev.Msg("report ready")

	for _, a := range rep.Result.Trace {
		d.log.Debug().Str("module", rep.Module).Stringer("tier", a.Tier).Str("reason", a.Reason).Msg("tier skipped")
	}
}

// offTarget reports whether some component of r is above, and some below,
// its target beyond ε.
func offTarget(r tank.Request) (above, below bool) {
	eps := r.Eps()
	for i, c := range r.State.Concentrations {
		t := r.Components[i].Target
		if tank.IsClose(c, t, eps) {
			continue
		}
		if c > t {
			above = true
		} else {
			below = true
		}
	}

	return above, below
}
