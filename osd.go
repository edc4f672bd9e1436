package provebilde

import "math"

// OSDSteps is the number of bar cells on each side of zero.
const OSDSteps = 20

// OSDCells returns which of the 2*OSDSteps+1 bar cells are lit for level.
// Cell OSDSteps is zero; lit cells run from zero towards the level,
// which is clamped to [-1, 1] and rounded to the nearest step.
func OSDCells(level float64) [2*OSDSteps + 1]bool {
	n := int(math.Round(math.Max(-1, math.Min(1, level)) * OSDSteps))
	var cells [2*OSDSteps + 1]bool
	lo, hi := 0, n
	if n < 0 {
		lo, hi = n, 0
	}
	for i := lo; i <= hi; i++ {
		cells[i+OSDSteps] = true
	}
	return cells
}
