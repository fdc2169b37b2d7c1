package selection

import (
	"math/rand/v2"
	"sort"
	"strings"

	"bird-herd/feature/birds/models"
)

// Source supplies the randomness used by selection and sampling.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}

type globalSource struct{}

func (globalSource) Float64() float64                   { return rand.Float64() }
func (globalSource) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

// DefaultSource is backed by the goroutine-safe top-level math/rand/v2 functions.
var DefaultSource Source = globalSource{}

// RandomByRegion picks up to n distinct subjects uniformly at random, without
// replacement, from the stats rows of one region.
func RandomByRegion(src Source, stats []models.RegionStat, n int) []string {
	subjects := distinct(stats)
	src.Shuffle(len(subjects), func(i, j int) {
		subjects[i], subjects[j] = subjects[j], subjects[i]
	})
	return head(subjects, n)
}

// TopByRegion picks the n subjects with the highest abundance, descending.
// Rows without an abundance rank below every row that has one. Ties keep the
// order of a fresh shuffle.
func TopByRegion(src Source, stats []models.RegionStat, n int) []string {
	rows := make([]models.RegionStat, len(stats))
	copy(rows, stats)
	src.Shuffle(len(rows), func(i, j int) {
		rows[i], rows[j] = rows[j], rows[i]
	})
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i].AbundanceMean, rows[j].AbundanceMean
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a > *b
		}
	})
	return head(distinct(rows), n)
}

// ByNames returns the requested names once each, in first-seen order.
// Blank names are dropped.
func ByNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

// ByGenus returns the distinct subjects of the genus rows, keeping row order.
// The rows may span many regions, so the same subject usually appears several times.
func ByGenus(stats []models.RegionStat) []string {
	return distinct(stats)
}

func distinct(stats []models.RegionStat) []string {
	seen := make(map[string]struct{}, len(stats))
	out := make([]string, 0, len(stats))
	for _, s := range stats {
		if _, ok := seen[s.ProgrammaticName]; ok {
			continue
		}
		seen[s.ProgrammaticName] = struct{}{}
		out = append(out, s.ProgrammaticName)
	}
	return out
}

func head(subjects []string, n int) []string {
	if n <= 0 {
		return []string{}
	}
	if n < len(subjects) {
		return subjects[:n]
	}
	return subjects
}
