/*
 * cell.go, part of chembridge.
 *
 * Copyright 2025 Andres Villar <avillar{at}pmDOTme>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package chembridge

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/avillar/chembridge/frame"
	"github.com/avillar/chembridge/system"
	"github.com/avillar/chembridge/unit"
)

//cellToFrame maps the open-side cell onto the closed shape enum. An
//isolated cell becomes Infinite; stray periodicity flags or a
//dimensionality other than 3 are ignored with a warning. A periodic cell
//must be periodic along all three axes: partial periodicity is
//inexpressible on the closed side, so it warns and falls back to
//Infinite. Otherwise the lattice vectors, converted to Angstrom, become
//the rows of the cell matrix and the shape is derived from it.
func cellToFrame(c *system.Cell, diags *Diagnostics) (frame.UnitCell, error) {
	if c == nil {
		return frame.NewInfiniteCell(), nil
	}
	pbc := c.PBC()
	if !c.IsPeriodic() {
		if pbc[0] || pbc[1] || pbc[2] {
			diags.warnf("boundary conditions ignored: periodicity flags set on an isolated cell")
		}
		if c.Dim() != 3 {
			diags.warnf("boundary conditions ignored: isolated cell of dimensionality %d treated as 3", c.Dim())
		}
		return frame.NewInfiniteCell(), nil
	}
	if !(pbc[0] && pbc[1] && pbc[2]) {
		diags.warnf("boundary conditions not fully periodic (%v, %v, %v): unsupported, falling back to an infinite cell", pbc[0], pbc[1], pbc[2])
		return frame.NewInfiniteCell(), nil
	}
	m := mat.NewDense(3, 3, nil)
	for i, vec := range c.Vectors() {
		row, err := vec.In(unit.Angstrom)
		if err != nil {
			return frame.UnitCell{}, Error{fmt.Sprintf("%s: lattice vector %d (%s)", MalformedField, i, err.Error()), []string{"cellToFrame"}}
		}
		m.SetRow(i, row[:])
	}
	uc, err := frame.NewCell(m)
	if err != nil {
		return frame.UnitCell{}, errDecorate(err, "cellToFrame")
	}
	return uc, nil
}

//cellToSystem is the reverse mapping. Infinite becomes isolated in 3
//dimensions; any other shape becomes a periodic cell whose lattice
//vectors are the rows of the cell matrix with the Angstrom unit
//reattached, periodic along all three axes.
func cellToSystem(c frame.UnitCell) *system.Cell {
	if c.Shape() == frame.Infinite {
		return system.NewIsolated(3)
	}
	var vecs [3]unit.Vec
	for i := 0; i < 3; i++ {
		vecs[i] = unit.NewVec(c.Vector(i), unit.Angstrom)
	}
	return system.NewPeriodic(vecs, [3]bool{true, true, true})
}
