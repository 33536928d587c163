package model

import "github.com/Digital-Chaos/go-life/rules"

// Display symbols for a rendered cell
const (
	liveCellSymbol = 'O'
	deadCellSymbol = ' '
)

// Cell is a single binary-state unit of the automaton. Cells are values:
// advancing a generation produces new Cells rather than mutating old ones,
// and two Cells are equal iff their Alive flags are equal.
type Cell struct {
	Alive bool
}

// Next returns the cell's successor under the standard B3/S23 rule, given
// its live-neighbour count. Total over all counts in [0,8] and both states.
func (c Cell) Next(neighbours int) Cell {
	return Cell{Alive: rules.ApplyConwayRules(neighbours, c.Alive)}
}

// Symbol maps the cell state to its display character: 'O' alive, ' ' dead.
func (c Cell) Symbol() rune {
	if c.Alive {
		return liveCellSymbol
	}
	return deadCellSymbol
}
