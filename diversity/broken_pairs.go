package diversity

import "github.com/arcrouting/hgs-cvrptw/individual"

// BrokenPairsDistance returns the fraction of client-adjacent edges that
// differ between first and second, in [0, 1]. Symmetric, and 0 exactly when
// every client has the same predecessor and successor in both.
func BrokenPairsDistance(nbClients int, first, second *individual.Individual) float64 {
	fNeighbours := first.Neighbours()
	sNeighbours := second.Neighbours()

	brokenPairs := 0
	for j := 1; j <= nbClients; j++ {
		fPred, fSucc := fNeighbours[j][0], fNeighbours[j][1]
		sPred, sSucc := sNeighbours[j][0], sNeighbours[j][1]

		if fSucc != sSucc {
			brokenPairs++
		}
		if fPred != sPred {
			brokenPairs++
		}
	}

	return float64(brokenPairs) / (2 * float64(nbClients))
}
