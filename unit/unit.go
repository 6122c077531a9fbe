/*
 * unit.go, part of chembridge.
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

//Package unit attaches physical units to plain numbers. A Quantity is a
//scalar with a unit tag, a Vec is a point or vector in 3D space with a
//single unit tag for all three components. Conversions are explicit: the
//caller always names the target unit and gets back a bare number, there is
//no global unit registry of any kind.
package unit

import "fmt"

//Dim is the physical dimension of a unit.
type Dim int

const (
	NoDim Dim = iota
	Length
	Velocity
	Mass
	Charge
)

func (d Dim) String() string {
	switch d {
	case Length:
		return "length"
	case Velocity:
		return "velocity"
	case Mass:
		return "mass"
	case Charge:
		return "charge"
	}
	return "dimensionless"
}

//Unit tags a number with its physical unit. The zero value is Invalid,
//so an unset Quantity can be told apart from a valid one.
type Unit int

const (
	Invalid Unit = iota
	Dimensionless
	//length
	Angstrom
	Bohr
	Nanometer
	Picometer
	//velocity
	AngPerPs
	NmPerPs
	//mass
	AMU
	Kilogram
	//charge
	ECharge
	Coulomb
)

//Conversion factors to the canonical unit of each dimension
//(Angstrom, Angstrom/ps, AMU, elementary charges).
const (
	A2Bohr = 1.889725989
	Bohr2A = 1 / 1.889725989
	Nm2A   = 10.0
	Pm2A   = 0.01
	Kg2AMU = 1 / 1.66053906660e-27
	C2E    = 1 / 1.602176634e-19
)

//factor from each unit to the canonical unit of its dimension.
var toCanonical = map[Unit]float64{
	Dimensionless: 1,
	Angstrom:      1,
	Bohr:          Bohr2A,
	Nanometer:     Nm2A,
	Picometer:     Pm2A,
	AngPerPs:      1,
	NmPerPs:       Nm2A,
	AMU:           1,
	Kilogram:      Kg2AMU,
	ECharge:       1,
	Coulomb:       C2E,
}

var dims = map[Unit]Dim{
	Dimensionless: NoDim,
	Angstrom:      Length,
	Bohr:          Length,
	Nanometer:     Length,
	Picometer:     Length,
	AngPerPs:      Velocity,
	NmPerPs:       Velocity,
	AMU:           Mass,
	Kilogram:      Mass,
	ECharge:       Charge,
	Coulomb:       Charge,
}

var names = map[Unit]string{
	Dimensionless: "1",
	Angstrom:      "A",
	Bohr:          "Bohr",
	Nanometer:     "nm",
	Picometer:     "pm",
	AngPerPs:      "A/ps",
	NmPerPs:       "nm/ps",
	AMU:           "u",
	Kilogram:      "kg",
	ECharge:       "e",
	Coulomb:       "C",
}

//Dim returns the physical dimension of the unit.
func (u Unit) Dim() Dim {
	return dims[u] //Invalid maps to NoDim
}

//Valid returns whether u is a known unit.
func (u Unit) Valid() bool {
	_, ok := toCanonical[u]
	return ok
}

func (u Unit) String() string {
	if s, ok := names[u]; ok {
		return s
	}
	return "invalid"
}

//Canonical returns the canonical unit for the dimension d: Angstrom for
//length, Angstrom/ps for velocity, AMU for mass and elementary charges
//for charge.
func Canonical(d Dim) Unit {
	switch d {
	case Length:
		return Angstrom
	case Velocity:
		return AngPerPs
	case Mass:
		return AMU
	case Charge:
		return ECharge
	}
	return Dimensionless
}

//convert returns the factor that takes a number in from to a number in to.
//Both units must share a dimension.
func convert(from, to Unit) (float64, error) {
	ff, ok := toCanonical[from]
	if !ok {
		return 0, Error{fmt.Sprintf("invalid source unit (%d)", from), nil}
	}
	ft, ok := toCanonical[to]
	if !ok {
		return 0, Error{fmt.Sprintf("invalid target unit (%d)", to), nil}
	}
	if from.Dim() != to.Dim() {
		return 0, Error{fmt.Sprintf("can't convert %s (%s) to %s (%s)", from, from.Dim(), to, to.Dim()), nil}
	}
	return ff / ft, nil
}

//Quantity is a scalar with a unit attached. The zero value has an Invalid
//unit, which marks the quantity as unset.
type Quantity struct {
	value float64
	unit  Unit
}

//New attaches the unit u to the number v.
func New(v float64, u Unit) Quantity {
	return Quantity{value: v, unit: u}
}

//Value returns the bare number in the quantity's own unit.
func (q Quantity) Value() float64 {
	return q.value
}

//Unit returns the unit tag of the quantity.
func (q Quantity) Unit() Unit {
	return q.unit
}

//Valid returns whether the quantity carries a known unit. The zero value
//of Quantity is not valid.
func (q Quantity) Valid() bool {
	return q.unit.Valid()
}

//In converts the quantity to the target unit and returns the bare number.
//It is an error to convert across dimensions or from an unset quantity.
func (q Quantity) In(target Unit) (float64, error) {
	f, err := convert(q.unit, target)
	if err != nil {
		return 0, errDecorate(err, "In")
	}
	return q.value * f, nil
}

//Canonical converts the quantity to the canonical unit of its dimension
//and returns the bare number.
func (q Quantity) Canonical() (float64, error) {
	v, err := q.In(Canonical(q.unit.Dim()))
	if err != nil {
		return 0, errDecorate(err, "Canonical")
	}
	return v, nil
}

func (q Quantity) String() string {
	return fmt.Sprintf("%g %s", q.value, q.unit)
}

//Vec is a 3-component vector with a single unit attached to all components.
//The zero value has an Invalid unit, which marks the vector as unset.
type Vec struct {
	value [3]float64
	unit  Unit
}

//NewVec attaches the unit u to the three components of v.
func NewVec(v [3]float64, u Unit) Vec {
	return Vec{value: v, unit: u}
}

//Value returns the bare components in the vector's own unit.
func (v Vec) Value() [3]float64 {
	return v.value
}

//Unit returns the unit tag of the vector.
func (v Vec) Unit() Unit {
	return v.unit
}

//Valid returns whether the vector carries a known unit.
func (v Vec) Valid() bool {
	return v.unit.Valid()
}

//In converts all components to the target unit and returns them.
func (v Vec) In(target Unit) ([3]float64, error) {
	f, err := convert(v.unit, target)
	if err != nil {
		return [3]float64{}, errDecorate(err, "In")
	}
	return [3]float64{v.value[0] * f, v.value[1] * f, v.value[2] * f}, nil
}

//Canonical converts all components to the canonical unit of the vector's
//dimension and returns them.
func (v Vec) Canonical() ([3]float64, error) {
	r, err := v.In(Canonical(v.unit.Dim()))
	if err != nil {
		return [3]float64{}, errDecorate(err, "Canonical")
	}
	return r, nil
}

func (v Vec) String() string {
	return fmt.Sprintf("[%g %g %g] %s", v.value[0], v.value[1], v.value[2], v.unit)
}

//Errors

//Error is the unit-package error. It carries a decoration trail of the
//calls it went through, as the other packages in this module do.
type Error struct {
	message string
	deco    []string
}

func (err Error) Error() string {
	return fmt.Sprintf("unit error: %s", err.message)
}

func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//errDecorate asserts that err carries a Decorate method and decorates it
//with the caller's name before returning it.
func errDecorate(err error, caller string) error {
	err2, ok := err.(Error)
	if !ok {
		return err
	}
	err2.Decorate(caller)
	return err2
}
