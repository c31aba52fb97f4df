// SPDX-License-Identifier: MIT

package twosum

// Pair holds two zero-based positions with I < J.
type Pair struct {
	I int
	J int
}

// Slice returns the pair as a two-element slice [I, J].
func (p Pair) Slice() []int {
	return []int{p.I, p.J}
}

// Method selects the search strategy used by Search.
type Method int

const (
	// BruteForce scans every (i, j) pair in index order.
	BruteForce Method = iota

	// Indexed builds a value → positions index and looks up each complement.
	Indexed
)

// String returns the CLI name of the method.
func (m Method) String() string {
	switch m {
	case Indexed:
		return "indexed"
	default:
		return "brute"
	}
}

// ParseMethod maps a CLI name back to a Method.
// Unknown names report false.
func ParseMethod(s string) (Method, bool) {
	switch s {
	case "brute", "bruteforce", "":
		return BruteForce, true
	case "indexed", "hash":
		return Indexed, true
	}
	return BruteForce, false
}
