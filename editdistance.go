package cdecl

// EditDistance computes the optimal-string-alignment Damerau–Levenshtein
// distance between a and b (insertions, deletions, substitutions, and
// adjacent transpositions, each restricted to act once on any given
// pair of positions), per §4.6's edit-distance engine.
type EditDistance struct {
	d [][]int // reusable working matrix, grown on demand
}

// NewEditDistance returns a ready-to-use engine with no matrix
// allocated yet; the first Distance call sizes it.
func NewEditDistance() *EditDistance { return &EditDistance{} }

// Distance returns the edit distance between a and b, reusing the
// engine's working matrix across calls to avoid reallocating it once
// per candidate during a did-you-mean sweep.
func (e *EditDistance) Distance(a, b string) int {
	ar, br := []rune(a), []rune(b)
	n, m := len(ar), len(br)
	e.ensure(n, m)

	for i := 0; i <= n; i++ {
		e.d[i][0] = i
	}
	for j := 0; j <= m; j++ {
		e.d[0][j] = j
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			cost := 1
			if ar[i-1] == br[j-1] {
				cost = 0
			}
			del := e.d[i-1][j] + 1
			ins := e.d[i][j-1] + 1
			sub := e.d[i-1][j-1] + cost
			best := min3(del, ins, sub)
			if i > 1 && j > 1 && ar[i-1] == br[j-2] && ar[i-2] == br[j-1] {
				if t := e.d[i-2][j-2] + cost; t < best {
					best = t
				}
			}
			e.d[i][j] = best
		}
	}
	return e.d[n][m]
}

func (e *EditDistance) ensure(n, m int) {
	if len(e.d) > n && len(e.d[0]) > m {
		return
	}
	rows, cols := n+1, m+1
	if len(e.d) > rows {
		rows = len(e.d)
	}
	if len(e.d) > 0 && len(e.d[0]) > cols {
		cols = len(e.d[0])
	}
	d := make([][]int, rows)
	for i := range d {
		d[i] = make([]int, cols)
	}
	e.d = d
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
