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

package frame

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

//shapeEps is the threshold under which a matrix entry counts as zero when
//deriving the cell shape.
const shapeEps = 1e-12

//CellShape is the closed set of cell shapes the frame schema admits.
type CellShape int

const (
	Infinite CellShape = iota
	Orthorhombic
	Triclinic
)

func (s CellShape) String() string {
	switch s {
	case Orthorhombic:
		return "orthorhombic"
	case Triclinic:
		return "triclinic"
	}
	return "infinite"
}

//UnitCell is a 3x3 matrix of lattice vectors in Angstrom plus a shape tag
//derived from it. Each lattice vector is a ROW of the matrix, matching the
//row-per-point convention used for coordinates. The matrix is meaningful
//only when the shape is not Infinite.
type UnitCell struct {
	shape CellShape
	m     *mat.Dense
}

//NewInfiniteCell returns the cell of a non-periodic frame: shape Infinite
//with an all-zero matrix.
func NewInfiniteCell() UnitCell {
	return UnitCell{shape: Infinite, m: mat.NewDense(3, 3, nil)}
}

//NewCell builds a unit cell from a 3x3 matrix whose rows are the lattice
//vectors in Angstrom, deriving the shape: all-zero means Infinite, zero
//off-diagonal terms mean Orthorhombic, anything else is Triclinic. A nil
//matrix yields an Infinite cell. Any other dimensions are an error.
func NewCell(m *mat.Dense) (UnitCell, error) {
	if m == nil {
		return NewInfiniteCell(), nil
	}
	r, c := m.Dims()
	if r != 3 || c != 3 {
		return UnitCell{}, Error{fmt.Sprintf("cell matrix must be 3x3, got %dx%d", r, c), nil, true}
	}
	shape := Infinite
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(m.At(i, j)) < shapeEps {
				continue
			}
			if i == j && shape == Infinite {
				shape = Orthorhombic
			} else if i != j {
				shape = Triclinic
			}
		}
	}
	return UnitCell{shape: shape, m: mat.DenseCopyOf(m)}, nil
}

//Shape returns the shape tag of the cell.
func (c UnitCell) Shape() CellShape {
	return c.shape
}

//Matrix returns a copy of the 3x3 cell matrix in Angstrom. For an
//Infinite cell it is all zeros.
func (c UnitCell) Matrix() *mat.Dense {
	if c.m == nil {
		return mat.NewDense(3, 3, nil)
	}
	return mat.DenseCopyOf(c.m)
}

//Vector returns the i-th lattice vector, i.e. the i-th row of the cell
//matrix, in Angstrom. Panics if i is out of range.
func (c UnitCell) Vector(i int) [3]float64 {
	if i < 0 || i > 2 {
		panic("frame: requested cell vector out of bounds")
	}
	if c.m == nil {
		return [3]float64{}
	}
	return [3]float64{c.m.At(i, 0), c.m.At(i, 1), c.m.At(i, 2)}
}
