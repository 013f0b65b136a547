package population

// purge implements survivor selection (spec §4.7 `purge`): while subPop
// exceeds MinPopSize, first drop exact duplicates (proximity-zero
// neighbours), then repeatedly drop the individual with the worst (highest)
// biased fitness. subPop is a pointer to one of p.feasible/p.infeasible, and
// is shrunk in place.
func (p *Population) purge(subPop *[]member) {
	for len(*subPop) > p.cfg.MinPopSize {
		dupIdx := -1
		for i, m := range *subPop {
			if prox := p.proximity[m.indiv]; len(prox) > 0 && prox[0].dist == 0 {
				dupIdx = i
				break
			}
		}
		if dupIdx < 0 {
			break
		}
		p.removeAt(subPop, dupIdx)
	}

	for len(*subPop) > p.cfg.MinPopSize {
		p.updateBiasedFitness(*subPop)

		worstIdx := 0
		for i, m := range *subPop {
			if m.fitness > (*subPop)[worstIdx].fitness {
				worstIdx = i
			}
		}
		p.removeAt(subPop, worstIdx)
	}
}

// removeAt deletes the member at idx from subPop, also scrubbing it from
// the global proximity map.
func (p *Population) removeAt(subPop *[]member, idx int) {
	indiv := (*subPop)[idx].indiv
	p.forgetIndividual(indiv)
	*subPop = append((*subPop)[:idx], (*subPop)[idx+1:]...)
}
