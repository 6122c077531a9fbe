/*
 * system.go, part of chembridge.
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

//Package system holds the open atomistic data model: atoms with unit-aware
//mandatory fields plus extensible property maps, and a cell that is either
//isolated or fully described by lattice vectors and periodicity flags.
package system

import (
	"fmt"

	"github.com/avillar/chembridge/unit"
)

/**Note: some functions here panic instead of returning errors. They are
 * "fundamental" accessors: if something goes wrong in them, the program is
 * way-most likely wrong and should crash. The panics are all related to
 * using a function on a nil object or accessing out-of-bounds fields.**/

//Atom carries the mandatory per-atom fields plus an open mapping of named
//properties. Mass, Charge and Position are required for conversion; their
//zero values (Invalid unit) mark them as unset. Velocity is optional.
type Atom struct {
	Symbol     string
	Position   unit.Vec
	Velocity   unit.Vec
	Mass       unit.Quantity
	Charge     unit.Quantity
	Properties map[string]Value
}

//NewAtom returns an atom of the given element with its position, mass and
//charge attached in the units given. Extra properties can be set on the
//Properties map afterwards.
func NewAtom(symbol string, position unit.Vec, mass, charge unit.Quantity) *Atom {
	return &Atom{
		Symbol:     symbol,
		Position:   position,
		Mass:       mass,
		Charge:     charge,
		Properties: map[string]Value{},
	}
}

//Copy returns a copy of the Atom object, including its property map.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("attempted to copy a nil atom")
	}
	newat := new(Atom)
	newat.Symbol = A.Symbol
	newat.Position = A.Position
	newat.Velocity = A.Velocity
	newat.Mass = A.Mass
	newat.Charge = A.Charge
	newat.Properties = make(map[string]Value, len(A.Properties))
	for k, v := range A.Properties {
		newat.Properties[k] = v
	}
	return newat
}

//HasVelocity returns whether the atom carries a velocity field.
func (A *Atom) HasVelocity() bool {
	return A.Velocity.Valid()
}

//Cell describes the boundary of a system: either isolated with a declared
//dimensionality, or periodic with three lattice vectors and a periodicity
//flag per axis. Periodicity flags may also be set on an isolated cell;
//converters treat that combination as a caller mistake and ignore it with
//a diagnostic.
type Cell struct {
	periodic bool
	dim      int
	vectors  [3]unit.Vec
	pbc      [3]bool
}

//NewIsolated returns a non-periodic cell of the given dimensionality.
func NewIsolated(dim int) *Cell {
	return &Cell{dim: dim}
}

//NewPeriodic returns a cell with the given lattice vectors and per-axis
//periodicity flags.
func NewPeriodic(vectors [3]unit.Vec, pbc [3]bool) *Cell {
	return &Cell{periodic: true, vectors: vectors, pbc: pbc}
}

//IsPeriodic returns whether the cell carries lattice vectors.
func (C *Cell) IsPeriodic() bool {
	return C.periodic
}

//Dim returns the declared dimensionality of an isolated cell.
func (C *Cell) Dim() int {
	return C.dim
}

//Vectors returns the three lattice vectors. Meaningful only for a
//periodic cell.
func (C *Cell) Vectors() [3]unit.Vec {
	return C.vectors
}

//PBC returns the per-axis periodicity flags.
func (C *Cell) PBC() [3]bool {
	return C.pbc
}

//SetPBC sets the per-axis periodicity flags. It is legal, if senseless, to
//set flags on an isolated cell; the converters will ignore them with a
//diagnostic rather than fail.
func (C *Cell) SetPBC(pbc [3]bool) {
	C.pbc = pbc
}

//System is the open-side representation: an ordered set of atoms, a cell
//and a system-level property map. The atom count is fixed for the
//lifetime of the system.
type System struct {
	Atoms      []*Atom
	Cell       *Cell
	Properties map[string]Value
}

//New makes a system from the given atoms and cell. It returns an error on
//a nil atom slice. A nil cell is taken as isolated in 3 dimensions.
func New(atoms []*Atom, cell *Cell) (*System, error) {
	if atoms == nil {
		return nil, fmt.Errorf("system: supplied a nil atom slice")
	}
	if cell == nil {
		cell = NewIsolated(3)
	}
	return &System{Atoms: atoms, Cell: cell, Properties: map[string]Value{}}, nil
}

//Len returns the number of atoms in the system.
func (S *System) Len() int {
	return len(S.Atoms)
}

//Atom returns the atom corresponding to the index i. Panics if out of
//range.
func (S *System) Atom(i int) *Atom {
	if i >= S.Len() {
		panic("system: requested atom out of bounds")
	}
	return S.Atoms[i]
}

//Copy returns a deep copy of the system.
func (S *System) Copy() *System {
	newsys := new(System)
	newsys.Atoms = make([]*Atom, S.Len())
	for key, val := range S.Atoms {
		newsys.Atoms[key] = val.Copy()
	}
	if S.Cell != nil {
		c := *S.Cell
		newsys.Cell = &c
	}
	newsys.Properties = make(map[string]Value, len(S.Properties))
	for k, v := range S.Properties {
		newsys.Properties[k] = v
	}
	return newsys
}
