package engine

// SnakeSequence builds the pick order indices for n teams: 0..n-1 ascending
// then n-1..0 descending, length 2n. A single team yields the one-element
// cycle [0]. The doubled entries at the pivot and the wrap are intentional;
// each team gets two consecutive picks there.
func SnakeSequence(n int) []int {
	if n <= 1 {
		return []int{0}
	}
	seq := make([]int, 0, 2*n)
	for i := 0; i < n; i++ {
		seq = append(seq, i)
	}
	for i := n - 1; i >= 0; i-- {
		seq = append(seq, i)
	}
	return seq
}

// ActiveIndex returns which position in the team order picks at the given
// turn.
func ActiveIndex(n, turn int) int {
	seq := SnakeSequence(n)
	return seq[turn%len(seq)]
}

// HighlightCount returns how many of the active team's empty member slots
// should be marked as next to fill: 2 when the same team also owns the
// following turn, else 1.
func HighlightCount(n, turn int) int {
	seq := SnakeSequence(n)
	cur := seq[turn%len(seq)]
	next := seq[(turn+1)%len(seq)]
	if cur == next {
		return 2
	}
	return 1
}
