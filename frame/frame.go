/*
 * frame.go, part of chembridge.
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

//Package frame holds the closed-schema atomistic data model: fixed arrays
//of per-atom data in canonical units (Angstrom, Angstrom/ps, AMU,
//elementary charges), a shape-tagged unit cell, and append-only property
//maps limited to string, float and bool values.
//
//Coordinates and velocities are kept in gonum Dense matrices with one row
//per atom, so a "vector" here is a row vector.
package frame

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

//Keys of the two per-atom properties that are derived from the atomic
//number rather than freely settable. Attempts to set them are rejected
//with a non-critical error.
const (
	VdwRadiusKey      = "vdw_radius"
	CovalentRadiusKey = "covalent_radius"
)

/**Note: the fixed-array setters and accessors panic on out-of-bounds
 * indices, like the fundamental accessors of the other packages. The
 * property setters return (non-critical) errors instead, since a refused
 * property is an expected, recoverable event.**/

//Frame is a fully materialized snapshot of N atoms. All arrays have
//length N for the lifetime of the frame; velocities are zero-filled until
//set.
type Frame struct {
	n         int
	coords    *mat.Dense //NX3, Angstrom
	vel       *mat.Dense //NX3, Angstrom/ps
	names     []string
	numbers   []int
	masses    []float64 //AMU
	charges   []float64 //elementary charges
	atomProps []map[string]Property
	props     map[string]Property
	cell      UnitCell
}

//New returns a frame for n atoms with zero-filled arrays and an Infinite
//cell.
func New(n int) *Frame {
	if n < 0 {
		panic("frame: negative atom count")
	}
	F := new(Frame)
	F.n = n
	F.coords = mat.NewDense(max(n, 1), 3, nil)
	F.vel = mat.NewDense(max(n, 1), 3, nil)
	F.names = make([]string, n)
	F.numbers = make([]int, n)
	F.masses = make([]float64, n)
	F.charges = make([]float64, n)
	F.atomProps = make([]map[string]Property, n)
	F.props = map[string]Property{}
	F.cell = NewInfiniteCell()
	return F
}

//Len returns the number of atoms in the frame.
func (F *Frame) Len() int {
	return F.n
}

func (F *Frame) check(i int) {
	if i < 0 || i >= F.n {
		panic(fmt.Sprintf("frame: atom index %d out of bounds (%d atoms)", i, F.n))
	}
}

//SetName sets the name of the i-th atom. Panics if out of range.
func (F *Frame) SetName(i int, name string) {
	F.check(i)
	F.names[i] = name
}

//SetNumber sets the atomic number of the i-th atom. Panics if out of
//range.
func (F *Frame) SetNumber(i int, number int) {
	F.check(i)
	F.numbers[i] = number
}

//SetMass sets the mass (AMU) of the i-th atom. Panics if out of range.
func (F *Frame) SetMass(i int, mass float64) {
	F.check(i)
	F.masses[i] = mass
}

//SetCharge sets the charge (elementary charges) of the i-th atom. Panics
//if out of range.
func (F *Frame) SetCharge(i int, charge float64) {
	F.check(i)
	F.charges[i] = charge
}

//SetPosition sets the position (Angstrom) of the i-th atom. Panics if out
//of range.
func (F *Frame) SetPosition(i int, pos [3]float64) {
	F.check(i)
	F.coords.SetRow(i, pos[:])
}

//SetVelocity sets the velocity (Angstrom/ps) of the i-th atom. Panics if
//out of range.
func (F *Frame) SetVelocity(i int, vel [3]float64) {
	F.check(i)
	F.vel.SetRow(i, vel[:])
}

//SetCell sets the unit cell of the frame.
func (F *Frame) SetCell(c UnitCell) {
	F.cell = c
}

//Name returns the name of the i-th atom. Panics if out of range.
func (F *Frame) Name(i int) string {
	F.check(i)
	return F.names[i]
}

//Number returns the atomic number of the i-th atom. Panics if out of
//range.
func (F *Frame) Number(i int) int {
	F.check(i)
	return F.numbers[i]
}

//Mass returns the mass (AMU) of the i-th atom. Panics if out of range.
func (F *Frame) Mass(i int) float64 {
	F.check(i)
	return F.masses[i]
}

//Charge returns the charge (elementary charges) of the i-th atom. Panics
//if out of range.
func (F *Frame) Charge(i int) float64 {
	F.check(i)
	return F.charges[i]
}

//Position returns the position (Angstrom) of the i-th atom. Panics if out
//of range.
func (F *Frame) Position(i int) [3]float64 {
	F.check(i)
	return [3]float64{F.coords.At(i, 0), F.coords.At(i, 1), F.coords.At(i, 2)}
}

//Velocity returns the velocity (Angstrom/ps) of the i-th atom. Panics if
//out of range.
func (F *Frame) Velocity(i int) [3]float64 {
	F.check(i)
	return [3]float64{F.vel.At(i, 0), F.vel.At(i, 1), F.vel.At(i, 2)}
}

//Coords returns a copy of the NX3 coordinate matrix in Angstrom.
func (F *Frame) Coords() *mat.Dense {
	return mat.DenseCopyOf(F.coords)
}

//Velocities returns a copy of the NX3 velocity matrix in Angstrom/ps.
func (F *Frame) Velocities() *mat.Dense {
	return mat.DenseCopyOf(F.vel)
}

//HasVelocities returns whether any velocity component of the frame is
//non-zero. A frame built without velocities reports false; note that a
//frame whose atoms genuinely all have zero velocity is indistinguishable
//from one with no velocities at all.
func (F *Frame) HasVelocities() bool {
	for i := 0; i < F.n; i++ {
		for j := 0; j < 3; j++ {
			if F.vel.At(i, j) != 0 {
				return true
			}
		}
	}
	return false
}

//Cell returns the unit cell of the frame.
func (F *Frame) Cell() UnitCell {
	return F.cell
}

//SetAtomProperty sets a named property on the i-th atom. It returns a
//non-critical error, leaving the frame untouched, if the key is one of the
//derived read-only properties or the value kind is unset. Panics if i is
//out of range.
func (F *Frame) SetAtomProperty(i int, key string, p Property) error {
	F.check(i)
	if key == VdwRadiusKey || key == CovalentRadiusKey {
		return Error{fmt.Sprintf("%s: %q", ReadOnlyProperty, key), []string{"SetAtomProperty"}, false}
	}
	if p.Kind() == PropNothing {
		return Error{fmt.Sprintf("%s: %q", BadPropertyKind, key), []string{"SetAtomProperty"}, false}
	}
	if F.atomProps[i] == nil {
		F.atomProps[i] = map[string]Property{}
	}
	F.atomProps[i][key] = p
	return nil
}

//SetProperty sets a named frame-level property. It returns a non-critical
//error if the value kind is unset.
func (F *Frame) SetProperty(key string, p Property) error {
	if p.Kind() == PropNothing {
		return Error{fmt.Sprintf("%s: %q", BadPropertyKind, key), []string{"SetProperty"}, false}
	}
	F.props[key] = p
	return nil
}

//AtomProperty returns the named property of the i-th atom. The two
//derived keys (vdw_radius, covalent_radius) resolve through the element
//tables from the atom's atomic number; everything else resolves through
//the atom's stored property map. Panics if i is out of range.
func (F *Frame) AtomProperty(i int, key string) (Property, bool) {
	F.check(i)
	switch key {
	case VdwRadiusKey:
		r, ok := VdwRadius(F.numbers[i])
		if !ok {
			return Property{}, false
		}
		return FloatProp(r), true
	case CovalentRadiusKey:
		r, ok := CovalentRadius(F.numbers[i])
		if !ok {
			return Property{}, false
		}
		return FloatProp(r), true
	}
	p, ok := F.atomProps[i][key]
	return p, ok
}

//AtomProperties returns a copy of the stored property map of the i-th
//atom. The derived read-only properties are not included; use
//AtomProperty to read those. Panics if i is out of range.
func (F *Frame) AtomProperties(i int) map[string]Property {
	F.check(i)
	props := make(map[string]Property, len(F.atomProps[i]))
	for k, v := range F.atomProps[i] {
		props[k] = v
	}
	return props
}

//Property returns the named frame-level property.
func (F *Frame) Property(key string) (Property, bool) {
	p, ok := F.props[key]
	return p, ok
}

//Properties returns a copy of the frame-level property map.
func (F *Frame) Properties() map[string]Property {
	props := make(map[string]Property, len(F.props))
	for k, v := range F.props {
		props[k] = v
	}
	return props
}
