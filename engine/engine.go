// SPDX-License-Identifier: MIT

package engine

import (
	"fmt"

	"github.com/katalvlaran/tankmix/constrained"
	"github.com/katalvlaran/tankmix/dilute"
	"github.com/katalvlaran/tankmix/exact"
	"github.com/katalvlaran/tankmix/tank"
)

// Engine runs the tiered reconciliation.
type Engine struct {
	opts Options
}

// New returns an Engine configured by opts.
func New(opts ...Option) *Engine {
	return &Engine{opts: gatherOptions(opts...)}
}

var defaultEngine = New()

// Reconcile runs the default engine on r.
func Reconcile(r tank.Request) tank.Result {
	return defaultEngine.Reconcile(r)
}

// Legacy reports whether the engine uses the legacy fallback policy.
func (e *Engine) Legacy() bool { return e.opts.legacy }

type state int

const (
	stateCheckPerfect state = iota
	stateCheckSpace
	stateTryExact
	stateTryDilution
	stateTryConstrained
	stateTryLegacy
	stateFinalize
	stateDone
)

// run carries one reconciliation through the state machine.
type run struct {
	req    tank.Request
	eps    float64
	space  float64
	recipe tank.Recipe
	tier   tank.Tier
	msg    string
	trace  []tank.Attempt
	result tank.Result
}

// Reconcile computes the correction recipe for r. It never panics on a
// validated request and always returns a Result; malformed requests come
// back with StatusInvalidRequest and the validation error as Message.
//
// r is not modified; the returned slices are freshly allocated.
func (e *Engine) Reconcile(r tank.Request) tank.Result {
	if r.Epsilon == 0 {
		r.Epsilon = e.opts.eps
	}
	if err := tank.Validate(r); err != nil {
		return tank.Result{
			Status:  tank.StatusInvalidRequest,
			Message: err.Error(),
			Tier:    tank.TierValidation,
		}
	}

	p := &run{req: r, eps: r.Eps(), space: tank.AvailableSpace(r)}
	for st := stateCheckPerfect; st != stateDone; {
		switch st {
		case stateCheckPerfect:
			st = p.checkPerfect()
		case stateCheckSpace:
			st = p.checkSpace()
		case stateTryExact:
			st = p.tryExact(e.opts.legacy)
		case stateTryDilution:
			st = p.tryDilution()
		case stateTryConstrained:
			st = p.tryConstrained()
		case stateTryLegacy:
			st = p.tryLegacy()
		case stateFinalize:
			st = p.finalize()
		default:
			panic(fmt.Sprintf("engine: unknown state %d", st))
		}
	}

	return p.result
}

func (p *run) checkPerfect() state {
	for i, c := range p.req.State.Concentrations {
		if !tank.IsClose(c, p.req.Components[i].Target, p.eps) {
			return stateCheckSpace
		}
	}
	p.hold(tank.StatusPerfect, tank.TierPerfect, "concentrations already at target")

	return stateDone
}

func (p *run) checkSpace() state {
	if p.space > p.eps {
		return stateTryExact
	}
	p.hold(tank.StatusInfeasible, tank.TierCapacity, fmt.Sprintf(
		"no space left: tank holds %.2f L of %.2f L capacity and is off target",
		p.req.State.Volume, p.req.Capacity))

	return stateDone
}

func (p *run) tryExact(legacy bool) state {
	next := stateTryDilution
	if legacy {
		next = stateTryLegacy
	}
	if len(p.req.Components) != 2 {
		return next
	}
	rec, err := exact.Solve(p.req)
	if err != nil {
		p.skip(tank.TierExact, err)

		return next
	}
	p.accept(rec, tank.TierExact, "")

	return stateFinalize
}

func (p *run) tryDilution() state {
	if !dilute.Applicable(p.req) {
		return stateTryConstrained
	}
	rec, err := dilute.Solve(p.req)
	if err != nil {
		p.skip(tank.TierDilution, err)

		return stateTryConstrained
	}
	msg := ""
	if rec.Status == tank.StatusBestPossibleCorrection {
		msg = "dilution limited by available space"
	}
	p.accept(rec, tank.TierDilution, msg)

	return stateFinalize
}

func (p *run) tryConstrained() state {
	sol := constrained.Solve(p.req)
	p.accept(sol.Recipe, tank.TierConstrained, "")

	return stateFinalize
}

func (p *run) tryLegacy() state {
	p.accept(legacyRecipe(p.req, p.space, p.eps), tank.TierLegacy, "")

	return stateFinalize
}

func (p *run) finalize() state {
	w, k := p.recipe.Water, p.recipe.Makeup
	vol, conc := tank.Finalize(p.req.State, w, k, p.req.Makeup())
	p.result = tank.Result{
		Status:              p.recipe.Status,
		WaterToAdd:          w,
		MakeupToAdd:         k,
		FinalVolume:         vol,
		FinalConcentrations: conc,
		Message:             p.msg,
		Tier:                p.tier,
		Objective:           tank.Objective(p.req, w, k),
		Trace:               p.trace,
	}

	return stateDone
}

// hold produces a zero recipe that leaves the tank as measured.
func (p *run) hold(status tank.Status, tier tank.Tier, msg string) {
	s := p.req.State.Clone()
	p.result = tank.Result{
		Status:              status,
		FinalVolume:         s.Volume,
		FinalConcentrations: s.Concentrations,
		Message:             msg,
		Tier:                tier,
		Objective:           tank.Residual(p.req),
		Trace:               p.trace,
	}
}

func (p *run) accept(rec tank.Recipe, tier tank.Tier, msg string) {
	p.recipe, p.tier, p.msg = rec, tier, msg
}

func (p *run) skip(tier tank.Tier, err error) {
	p.trace = append(p.trace, tank.Attempt{Tier: tier, Reason: err.Error()})
}
