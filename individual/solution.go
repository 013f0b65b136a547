package individual

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arcrouting/hgs-cvrptw/penalty"
)

// WriteSolution serializes ind in the plain-text solution format (spec §6):
// one "Route #k: c1 c2 ..." line per non-empty route (numbered from 1),
// followed by "Cost <int>" and "Time <seconds>".
func WriteSolution(w io.Writer, ind *Individual, mgr *penalty.Manager, elapsedSeconds float64) error {
	routeNo := 1
	for _, r := range ind.routes {
		if len(r) == 0 {
			continue
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "Route #%d:", routeNo)
		for _, id := range r {
			fmt.Fprintf(&sb, " %d", id)
		}
		sb.WriteByte('\n')

		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
		routeNo++
	}

	if _, err := fmt.Fprintf(w, "Cost %d\n", ind.Cost(mgr)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Time %g\n", elapsedSeconds); err != nil {
		return err
	}
	return nil
}

// ParseSolution reads back the route partition from a solution file, in the
// order the routes appeared. It does not validate client ids against an
// instance; callers typically pass the result to NewFromRoutes, whose
// construction-time validation (or evaluateCompleteCost panics on a bad
// index) surfaces inconsistencies.
func ParseSolution(r io.Reader) ([][]int, error) {
	var routes [][]int

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "Cost") || strings.HasPrefix(line, "Time") {
			continue
		}
		if !strings.HasPrefix(line, "Route") {
			return nil, ErrMalformedSolution
		}

		colon := strings.IndexByte(line, ':')
		if colon < 0 {
			return nil, ErrMalformedSolution
		}

		fields := strings.Fields(line[colon+1:])
		route := make([]int, 0, len(fields))
		for _, f := range fields {
			id, err := strconv.Atoi(f)
			if err != nil {
				return nil, ErrMalformedSolution
			}
			route = append(route, id)
		}
		routes = append(routes, route)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return routes, nil
}
