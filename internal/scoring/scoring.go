// Package scoring turns a user's raw answers into category averages and a
// ranked strength profile. It is pure: no I/O, no clock, no randomness, so
// the same answer snapshot always produces the same result.
package scoring

import (
	"math"
	"sort"

	"strength-coach-be/internal/catalog"
)

// TopStrengthCount is how many categories make the ranked strength list.
const TopStrengthCount = 3

// Result holds the full category-score map (every catalog category present)
// and the top strengths ordered best-first.
type Result struct {
	Scores map[string]float64
	Top    []string
}

// Compute averages the scored answers per category. Missing or unparseable
// answers are skipped; a category with nothing left scores exactly 0 and
// still appears in the map. Ranking is a stable descending sort, so equal
// scores keep catalog order: the category declared earliest wins the tie.
func Compute(answers map[string]string, cat *catalog.Catalog) Result {
	categories := cat.Categories()
	grouping := cat.QuestionsByCategory()

	scores := make(map[string]float64, len(categories))
	for _, category := range categories {
		sum, n := 0, 0
		for _, qid := range grouping[category] {
			raw, ok := answers[qid]
			if !ok {
				continue
			}
			v, ok := catalog.ParseScaleAnswer(raw)
			if !ok {
				continue
			}
			sum += v
			n++
		}
		if n == 0 {
			scores[category] = 0
			continue
		}
		scores[category] = round1(float64(sum) / float64(n))
	}

	ranked := make([]string, len(categories))
	copy(ranked, categories)
	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i]] > scores[ranked[j]]
	})

	top := ranked
	if len(top) > TopStrengthCount {
		top = top[:TopStrengthCount]
	}

	return Result{Scores: scores, Top: top}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
