package rules

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next
state of a cell from its live-neighbour count.

B3/S23: a cell is born with exactly 3 neighbours and survives with 2 or 3.
Equivalently: (alive && neighbours == 2) || neighbours == 3
*/
func ApplyConwayRules(neighbours int, alive bool) bool {
	return (alive && neighbours == 2) || neighbours == 3
}
