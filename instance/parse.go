package instance

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// tokenizer reads whitespace-delimited tokens across line boundaries (next),
// or discards the remainder of the current line (skipLine) — the two
// primitives the TSPLIB-like grammar needs: section headers are read token
// by token, but NAME/COMMENT/TYPE carry free-form trailing text that must be
// skipped a whole line at a time.
type tokenizer struct {
	r *bufio.Reader
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func (t *tokenizer) next() (string, bool) {
	for {
		b, err := t.r.ReadByte()
		if err != nil {
			return "", false
		}
		if !isSpace(b) {
			_ = t.r.UnreadByte()
			break
		}
	}

	var sb strings.Builder
	for {
		b, err := t.r.ReadByte()
		if err != nil {
			break
		}
		if isSpace(b) {
			_ = t.r.UnreadByte()
			break
		}
		sb.WriteByte(b)
	}
	return sb.String(), true
}

func (t *tokenizer) skipLine() {
	for {
		b, err := t.r.ReadByte()
		if err != nil || b == '\n' {
			return
		}
	}
}

func (t *tokenizer) nextInt() (int, error) {
	tok, ok := t.next()
	if !ok {
		return 0, io.ErrUnexpectedEOF
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, ErrMalformedSection
	}
	return v, nil
}

// Load reads and parses a TSPLIB-like instance file (spec §6).
func Load(path string) (*Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCannotOpen, path)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads a TSPLIB-like instance from r (spec §6). Sections may appear
// in any order that respects their data dependencies: DIMENSION must precede
// any section indexed by client id.
func Parse(r io.Reader) (*Data, error) {
	tz := &tokenizer{r: bufio.NewReader(r)}

	numClients := 0
	haveDimension := false
	capacity := MaxCapacity
	numVehicles := 0
	var edgeWeightType, edgeWeightFmt string

	var coords [][2]int
	var demands, servDurs, releases []int
	var windows [][2]int
	var distMat [][]int

	for {
		name, ok := tz.next()
		if !ok || name == "EOF" {
			break
		}

		switch {
		case strings.HasPrefix(name, "NAME"), strings.HasPrefix(name, "COMMENT"), strings.HasPrefix(name, "TYPE"):
			tz.skipLine()

		case strings.HasPrefix(name, "DIMENSION"):
			tz.next() // ':'
			n, err := tz.nextInt()
			if err != nil {
				return nil, err
			}
			numClients = n - 1
			haveDimension = true

			coords = make([][2]int, numClients+1)
			demands = make([]int, numClients+1)
			servDurs = make([]int, numClients+1)
			releases = make([]int, numClients+1)
			windows = make([][2]int, numClients+1)
			for i := range windows {
				windows[i] = [2]int{0, math.MaxInt32}
			}

		case strings.HasPrefix(name, "EDGE_WEIGHT_TYPE"):
			tz.next()
			edgeWeightType, _ = tz.next()
			if edgeWeightType != "EXPLICIT" && edgeWeightType != "EUC_2D" {
				return nil, ErrUnsupportedEdgeWeightType
			}

		case strings.HasPrefix(name, "EDGE_WEIGHT_FORMAT"):
			tz.next()
			edgeWeightFmt, _ = tz.next()

		case strings.HasPrefix(name, "CAPACITY"):
			tz.next()
			v, err := tz.nextInt()
			if err != nil {
				return nil, err
			}
			capacity = v

		case strings.HasPrefix(name, "VEHICLES"):
			tz.next()
			v, err := tz.nextInt()
			if err != nil {
				return nil, err
			}
			numVehicles = v

		case strings.HasPrefix(name, "EDGE_WEIGHT_SECTION"):
			if edgeWeightType != "EXPLICIT" || edgeWeightFmt != "FULL_MATRIX" {
				return nil, ErrUnsupportedEdgeWeightFormat
			}
			if !haveDimension {
				return nil, ErrMissingDimension
			}
			distMat = make([][]int, numClients+1)
			for i := range distMat {
				distMat[i] = make([]int, numClients+1)
				for j := range distMat[i] {
					v, err := tz.nextInt()
					if err != nil {
						return nil, err
					}
					distMat[i][j] = v
				}
			}

		case strings.HasPrefix(name, "NODE_COORD_SECTION"):
			if !haveDimension {
				return nil, ErrMissingDimension
			}
			for row := 0; row <= numClients; row++ {
				id, err := tz.nextInt()
				if err != nil {
					return nil, err
				}
				x, err := tz.nextInt()
				if err != nil {
					return nil, err
				}
				y, err := tz.nextInt()
				if err != nil {
					return nil, err
				}
				coords[id-1] = [2]int{x, y}
			}

		case strings.HasPrefix(name, "DEMAND_SECTION"):
			if !haveDimension {
				return nil, ErrMissingDimension
			}
			for row := 0; row <= numClients; row++ {
				id, err := tz.nextInt()
				if err != nil {
					return nil, err
				}
				v, err := tz.nextInt()
				if err != nil {
					return nil, err
				}
				demands[id-1] = v
			}
			if demands[0] != 0 {
				return nil, ErrNonzeroDepotDemand
			}

		case strings.HasPrefix(name, "SERVICE_TIME_SECTION"):
			if !haveDimension {
				return nil, ErrMissingDimension
			}
			for row := 0; row <= numClients; row++ {
				id, err := tz.nextInt()
				if err != nil {
					return nil, err
				}
				v, err := tz.nextInt()
				if err != nil {
					return nil, err
				}
				servDurs[id-1] = v
			}
			if servDurs[0] != 0 {
				return nil, ErrNonzeroDepotService
			}

		case strings.HasPrefix(name, "RELEASE_TIME_SECTION"):
			if !haveDimension {
				return nil, ErrMissingDimension
			}
			for row := 0; row <= numClients; row++ {
				id, err := tz.nextInt()
				if err != nil {
					return nil, err
				}
				v, err := tz.nextInt()
				if err != nil {
					return nil, err
				}
				releases[id-1] = v
			}
			if releases[0] != 0 {
				return nil, ErrNonzeroDepotRelease
			}

		case strings.HasPrefix(name, "TIME_WINDOW_SECTION"):
			if !haveDimension {
				return nil, ErrMissingDimension
			}
			for row := 0; row <= numClients; row++ {
				id, err := tz.nextInt()
				if err != nil {
					return nil, err
				}
				early, err := tz.nextInt()
				if err != nil {
					return nil, err
				}
				late, err := tz.nextInt()
				if err != nil {
					return nil, err
				}
				if early >= late {
					return nil, ErrInvalidTimeWindow
				}
				windows[id-1] = [2]int{early, late}
			}
			if windows[0][0] != 0 {
				return nil, ErrNonzeroDepotTWEarly
			}

		case strings.HasPrefix(name, "DEPOT_SECTION"):
			idDepot, err := tz.nextInt()
			if err != nil {
				return nil, err
			}
			end, err := tz.nextInt()
			if err != nil {
				return nil, err
			}
			if idDepot != 1 {
				return nil, ErrDepotID
			}
			if end != -1 {
				return nil, ErrMultipleDepots
			}

		default:
			return nil, fmt.Errorf("%w: %s", ErrUnknownSection, name)
		}
	}

	if edgeWeightType == "EUC_2D" {
		distMat = make([][]int, numClients+1)
		for i := range distMat {
			distMat[i] = make([]int, numClients+1)
			for j := range distMat[i] {
				dx := coords[i][0] - coords[j][0]
				dy := coords[i][1] - coords[j][1]
				d := math.Hypot(float64(dx), float64(dy))
				distMat[i][j] = int(10 * d)
			}
		}
	}

	if len(distMat) != numClients+1 {
		return nil, ErrDimensionMismatch
	}

	if numVehicles == 0 {
		numVehicles = numClients
	}

	clients := make([]Client, numClients+1)
	for i := range clients {
		clients[i] = Client{
			X:               coords[i][0],
			Y:               coords[i][1],
			ServiceDuration: servDurs[i],
			Demand:          demands[i],
			TWEarly:         windows[i][0],
			TWLate:          windows[i][1],
			Release:         releases[i],
		}
	}

	return New(MatrixFromRows(distMat), clients, capacity, numVehicles)
}
