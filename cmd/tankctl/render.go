// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/tankmix/catalog"
	"github.com/katalvlaran/tankmix/refill"
	"github.com/katalvlaran/tankmix/service"
	"github.com/katalvlaran/tankmix/simulate"
	"github.com/katalvlaran/tankmix/tank"
)

// dispensePlaces is the precision quantities are dispensed at.
const dispensePlaces = 2

// qty renders v rounded half away from zero to dispensing precision.
func qty(v float64) string {
	return decimal.NewFromFloat(v).Round(dispensePlaces).StringFixed(dispensePlaces)
}

// amountUnit is the unit a dose of a chemical measured in unit is given in:
// ml for ml/L, g for g/L.
func amountUnit(unit string) string {
	if unit == "" {
		return "ml"
	}
	if i := strings.Index(unit, "/"); i > 0 {
		return unit[:i]
	}

	return unit
}

func printReports(w io.Writer, reports []service.Report) {
	if len(reports) == 0 {
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "MODULE\tACTION\tSTATUS\tWATER L\tMAKEUP L\tFINAL L")
	for _, r := range reports {
		switch r.Action {
		case service.ActionReconcile:
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", r.Module, r.Action, r.Status(),
				qty(r.Result.WaterToAdd), qty(r.Result.MakeupToAdd), qty(r.Result.FinalVolume))
		default:
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", r.Module, r.Action, r.Status(),
				qty(r.Plan.Water), "-", qty(r.Plan.Outcome.Volume))
		}
	}
	tw.Flush()

	for _, r := range reports {
		printDetail(w, r)
	}
}

func printDetail(w io.Writer, r service.Report) {
	comps := r.Request.Components
	switch r.Action {
	case service.ActionReconcile:
		fmt.Fprintf(w, "\n%s (%s tier)\n", r.Module, r.Result.Tier)
		if r.Result.Message != "" {
			fmt.Fprintf(w, "  %s\n", r.Result.Message)
		}
		for i, c := range comps {
			if i < len(r.Result.FinalConcentrations) {
				fmt.Fprintf(w, "  %-12s %s -> %s %s (target %s)\n", c.ID,
					qty(r.Request.State.Concentrations[i]), qty(r.Result.FinalConcentrations[i]), c.Unit, qty(c.Target))
			}
		}
	default:
		fmt.Fprintf(w, "\n%s\n", r.Module)
		writeDoses(w, comps, r.Plan)
	}
}

func printPlan(w io.Writer, comps []tank.Component, p refill.Plan) {
	fmt.Fprintf(w, "water %s L\n", qty(p.Water))
	writeDoses(w, comps, p)
	fmt.Fprintf(w, "final %s L\n", qty(p.Outcome.Volume))
}

func writeDoses(w io.Writer, comps []tank.Component, p refill.Plan) {
	for i, c := range comps {
		fmt.Fprintf(w, "  add %-10s %s %s -> %s %s\n", c.ID,
			qty(p.Doses[i]), amountUnit(c.Unit), qty(p.Outcome.Concentrations[i]), c.Unit)
	}
}

func printOutcome(w io.Writer, m catalog.Module, out simulate.Outcome) {
	fmt.Fprintf(w, "%s: %s L\n", m.Name, qty(out.Volume))
	for i, ch := range m.Chemicals {
		fmt.Fprintf(w, "  %-12s %s %s (target %s)\n", ch.ID, qty(out.Concentrations[i]), ch.Unit, qty(ch.Target))
	}
}
