package state

// BlockSelectionState tracks focus inside a grid of blocks. Rows may have
// different lengths; vertical moves clamp the column to the destination row.
type BlockSelectionState[T comparable] struct {
	blocks [][]T
	row    int
	col    int
}

// NewBlockSelectionState returns a selection focused on the first block.
func NewBlockSelectionState[T comparable](blocks [][]T) *BlockSelectionState[T] {
	return &BlockSelectionState[T]{blocks: blocks}
}

// Index returns the focused row and column.
func (s *BlockSelectionState[T]) Index() (int, int) {
	return s.row, s.col
}

// SetIndex focuses the given cell, clamped into the grid.
func (s *BlockSelectionState[T]) SetIndex(row, col int) {
	if len(s.blocks) == 0 {
		s.row, s.col = 0, 0
		return
	}
	s.row = clamp(row, 0, len(s.blocks)-1)
	s.col = clamp(col, 0, max(len(s.blocks[s.row])-1, 0))
}

// ActiveBlock returns the focused block, or the zero value for an empty grid.
func (s *BlockSelectionState[T]) ActiveBlock() T {
	var zero T
	if s.row >= len(s.blocks) || s.col >= len(s.blocks[s.row]) {
		return zero
	}
	return s.blocks[s.row][s.col]
}

// Up moves focus to the previous row, wrapping to the last.
func (s *BlockSelectionState[T]) Up() {
	n := len(s.blocks)
	if n == 0 {
		return
	}
	s.row = (s.row - 1 + n) % n
	s.clampCol()
}

// Down moves focus to the next row, wrapping to the first.
func (s *BlockSelectionState[T]) Down() {
	n := len(s.blocks)
	if n == 0 {
		return
	}
	s.row = (s.row + 1) % n
	s.clampCol()
}

// Left moves focus within the current row, wrapping to its end.
func (s *BlockSelectionState[T]) Left() {
	if len(s.blocks) == 0 {
		return
	}
	if n := len(s.blocks[s.row]); n > 0 {
		s.col = (s.col - 1 + n) % n
	}
}

// Right moves focus within the current row, wrapping to its start.
func (s *BlockSelectionState[T]) Right() {
	if len(s.blocks) == 0 {
		return
	}
	if n := len(s.blocks[s.row]); n > 0 {
		s.col = (s.col + 1) % n
	}
}

func (s *BlockSelectionState[T]) clampCol() {
	s.col = min(s.col, max(len(s.blocks[s.row])-1, 0))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
