package engine

// scriptedSource replays fixed draws, then falls back to a seeded source so a
// test never stalls once its scripted tiles run out.
type scriptedSource struct {
	vals     []int
	next     int
	fallback Source
}

func newScriptedSource(vals ...int) *scriptedSource {
	return &scriptedSource{vals: vals, fallback: NewSeededSource(99)}
}

func (s *scriptedSource) IntN(n int) int {
	if s.next < len(s.vals) {
		v := s.vals[s.next] % n
		s.next++
		return v
	}
	return s.fallback.IntN(n)
}

func (s *scriptedSource) used() int { return s.next }

// singleClearBoard is an 8x6, 5-type board where swapping (2,3) and (2,4)
// lines up exactly three 1s in column 3.
func singleClearBoard() *Grid {
	return FromRows([][]TileType{
		{3, 2, 4, 1, 1, 5},
		{1, 3, 5, 1, 5, 2},
		{1, 1, 4, 4, 1, 2},
		{5, 4, 1, 5, 1, 5},
		{1, 5, 5, 4, 2, 1},
		{5, 2, 3, 4, 2, 5},
		{1, 5, 3, 5, 1, 5},
		{5, 2, 1, 5, 1, 1},
	})
}

// comboBoard is an 8x6, 5-type board where swapping (0,0) and (0,1) clears
// three 4s on the top row. Refilling those cells with 1s clears them again.
func comboBoard() *Grid {
	return FromRows([][]TileType{
		{4, 5, 4, 4, 5, 5},
		{2, 2, 5, 4, 5, 2},
		{1, 4, 3, 2, 1, 5},
		{1, 5, 4, 4, 5, 2},
		{5, 1, 5, 1, 1, 2},
		{2, 5, 1, 4, 3, 4},
		{5, 2, 5, 2, 3, 4},
		{1, 1, 4, 3, 4, 5},
	})
}

// deadlockBoard has no match and no legal swap.
func deadlockBoard() *Grid {
	return FromRows([][]TileType{
		{1, 2, 3, 1},
		{2, 3, 1, 2},
		{3, 1, 2, 3},
		{1, 2, 3, 1},
	})
}
