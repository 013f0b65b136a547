// Command hgscvrp reads a TSPLIB-like CVRPTW instance, runs the solver for a
// configured time budget, and writes the best solution found to a plain text
// file (spec §6).
//
// Usage:
//
//	hgscvrp INSTANCE_PATH SOLUTION_PATH [--flag value]...
//
// Recognized flags correspond one-to-one to solver.Config fields; see
// parseFlags for the full list. Argument count must be odd and at least
// three, matching the source CLI's convention.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/arcrouting/hgs-cvrptw/individual"
	"github.com/arcrouting/hgs-cvrptw/instance"
	"github.com/arcrouting/hgs-cvrptw/solver"
	"github.com/arcrouting/hgs-cvrptw/stopping"
)

// ErrIO is returned when the solution path cannot be created (spec §7
// IOError).
var ErrIO = errors.New("hgscvrp: cannot open solution path")

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args)%2 != 1 || len(args) < 3 {
		return fmt.Errorf("usage: %s INSTANCE_PATH SOLUTION_PATH [--flag value]...", args[0])
	}
	instPath, solPath := args[1], args[2]

	cfg := solver.DefaultConfig()
	if err := parseFlags(&cfg, args[3:]); err != nil {
		return err
	}

	data, err := instance.Load(instPath)
	if err != nil {
		return err
	}

	s, err := solver.New(data, cfg)
	if err != nil {
		return err
	}

	criterion, err := stopping.NewMaxRuntime(cfg.TimeLimit)
	if err != nil {
		return err
	}

	log.Printf("solving %s: %d clients, %d vehicles, time limit %.0fs", instPath, data.NumClients(), data.NumVehicles(), cfg.TimeLimit)

	best, err := s.Run(criterion)
	if err != nil {
		return err
	}
	if !best.IsFeasible() {
		log.Printf("warning: best solution found is infeasible (capacity excess %d, time warp %d)", best.CapacityExcess(), best.TimeWarp())
	}

	return writeSolution(solPath, best, s.Cost(best), s.Elapsed().Seconds())
}

// parseFlags walks pairs "--flag value", mirroring the source CLI's
// odd-index parsing loop: an unrecognized flag or an unparseable value both
// fail with a one-line error (spec §7 InvalidArgument); the first names the
// flag, the second names the flag and the value.
func parseFlags(cfg *solver.Config, pairs []string) error {
	for i := 0; i < len(pairs); i += 2 {
		name, value := pairs[i], pairs[i+1]

		var err error
		switch name {
		case "--seed":
			err = setUint32(&cfg.Seed, value)
		case "--timeLimit":
			err = setFloat64(&cfg.TimeLimit, value)
		case "--initialCapacityPenalty":
			err = setUint(&cfg.InitCapacityPenalty, value)
		case "--initialTimeWarpPenalty":
			err = setUint(&cfg.InitTimeWarpPenalty, value)
		case "--penaltyIncrease":
			err = setFloat64(&cfg.PenaltyIncrease, value)
		case "--penaltyDecrease":
			err = setFloat64(&cfg.PenaltyDecrease, value)
		case "--targetFeasible":
			err = setFloat64(&cfg.TargetFeasible, value)
		case "--repairBooster":
			err = setUint(&cfg.RepairBooster, value)
		case "--nbPenaltyManagement":
			err = setInt(&cfg.NbPenaltyManagement, value)
		case "--minPopSize":
			err = setInt(&cfg.MinPopSize, value)
		case "--generationSize":
			err = setInt(&cfg.GenerationSize, value)
		case "--nbElite":
			err = setInt(&cfg.NbElite, value)
		case "--nbClose":
			err = setInt(&cfg.NbClose, value)
		case "--lbDiversity":
			err = setFloat64(&cfg.LbDiversity, value)
		case "--ubDiversity":
			err = setFloat64(&cfg.UbDiversity, value)
		case "--repairProbability":
			err = setInt(&cfg.RepairProbability, value)
		case "--nbGranular":
			err = setInt(&cfg.NbGranular, value)
		case "--weightWaitTime":
			err = setInt(&cfg.WeightWaitTime, value)
		case "--weightTimeWarp":
			err = setInt(&cfg.WeightTimeWarp, value)
		case "--shouldIntensify":
			err = setBool(&cfg.ShouldIntensify, value)
		case "--postProcessPathLength":
			err = setInt(&cfg.PostProcessPathLength, value)
		default:
			return fmt.Errorf("invalid argument: unrecognized flag '%s'", name)
		}
		if err != nil {
			return fmt.Errorf("invalid argument: '%s' cannot be '%s'", name, value)
		}
	}
	return nil
}

func setInt(dst *int, s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

func setUint(dst *uint, s string) error {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return err
	}
	*dst = uint(v)
	return nil
}

func setUint32(dst *uint32, s string) error {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return err
	}
	*dst = uint32(v)
	return nil
}

func setFloat64(dst *float64, s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

func setBool(dst *bool, s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// writeSolution renders the best Individual in the plain text solution
// format of spec §6: one "Route #N: ..." line per non-empty route, numbered
// from 1, followed by "Cost <int>" and "Time <seconds>".
func writeSolution(path string, best *individual.Individual, cost int, elapsedSeconds float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrIO, path)
	}
	defer f.Close()

	w := bufio.NewWriter(f)

	routeNum := 1
	for _, route := range best.Routes() {
		if len(route) == 0 {
			continue
		}
		fmt.Fprintf(w, "Route #%d:", routeNum)
		for _, client := range route {
			fmt.Fprintf(w, " %d", client)
		}
		fmt.Fprintln(w)
		routeNum++
	}
	fmt.Fprintf(w, "Cost %d\n", cost)
	fmt.Fprintf(w, "Time %f\n", elapsedSeconds)

	return w.Flush()
}
