package overlap

import (
	"fmt"
	"math"
	"strconv"

	"lineuplens/internal/lineup"
)

// Precision bounds for the similarity score. The score is carried as
// fixed-precision decimal text in reports so output stays byte-stable
// across runs.
const (
	MinPrecision     = 2
	MaxPrecision     = 6
	DefaultPrecision = 4
)

// Result holds the pairwise overlap matrices for one collection. Row and
// column order follow the collection order exactly.
type Result struct {
	ids       []string
	counts    [][]int
	scores    [][]float64
	precision int
}

// Compute builds the N×N intersection-count and Jaccard similarity matrices
// for the collection, including self-pairs. The computation is pure: it
// reads one set snapshot per lineup and touches nothing else.
func Compute(c *lineup.Collection, precision int) (*Result, error) {
	if c == nil {
		return nil, fmt.Errorf("overlap: nil collection")
	}
	if precision < MinPrecision || precision > MaxPrecision {
		return nil, fmt.Errorf("overlap: precision %d out of range [%d, %d]", precision, MinPrecision, MaxPrecision)
	}

	lineups := c.Lineups()
	sets := make([]map[string]struct{}, len(lineups))
	for i, l := range lineups {
		sets[i] = l.ChannelSet()
	}

	counts := make([][]int, len(lineups))
	scores := make([][]float64, len(lineups))
	for i := range lineups {
		counts[i] = make([]int, len(lineups))
		scores[i] = make([]float64, len(lineups))
		for j := range lineups {
			counts[i][j] = intersectionCount(sets[i], sets[j])
			scores[i][j] = roundTo(Jaccard(sets[i], sets[j]), precision)
		}
	}

	return &Result{
		ids:       c.IDs(),
		counts:    counts,
		scores:    scores,
		precision: precision,
	}, nil
}

// Jaccard returns |a∩b| / |a∪b| with the boundary policy the reports rely
// on: two empty catalogs are fully similar (1.0), and an empty catalog
// shares nothing with a non-empty one (0.0).
func Jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}
	inter := intersectionCount(a, b)
	union := len(a) + len(b) - inter
	return float64(inter) / float64(union)
}

// IDs returns the lineup identifiers in matrix order.
func (r *Result) IDs() []string {
	out := make([]string, len(r.ids))
	copy(out, r.ids)
	return out
}

// Len returns the matrix dimension.
func (r *Result) Len() int { return len(r.ids) }

// Precision returns the rounding precision used for similarity scores.
func (r *Result) Precision() int { return r.precision }

// Count returns the intersection count for the (i, j) lineup pair.
func (r *Result) Count(i, j int) int { return r.counts[i][j] }

// Score returns the rounded Jaccard similarity for the (i, j) lineup pair.
func (r *Result) Score(i, j int) float64 { return r.scores[i][j] }

// FormatScore renders the similarity for the (i, j) pair as fixed-precision
// decimal text, e.g. "0.5000" at the default precision.
func (r *Result) FormatScore(i, j int) string {
	return strconv.FormatFloat(r.scores[i][j], 'f', r.precision, 64)
}

func intersectionCount(a, b map[string]struct{}) int {
	if len(b) < len(a) {
		a, b = b, a
	}
	n := 0
	for id := range a {
		if _, ok := b[id]; ok {
			n++
		}
	}
	return n
}

func roundTo(v float64, digits int) float64 {
	scale := math.Pow10(digits)
	return math.Round(v*scale) / scale
}
