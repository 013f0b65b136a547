// Package diversity measures dissimilarity between Individuals via the
// broken-pairs distance: the fraction of client-adjacent edges present in
// one solution but not the other (spec §4.7, GLOSSARY).
package diversity
