/*
 * value.go, part of chembridge.
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

package system

import (
	"fmt"

	"github.com/avillar/chembridge/unit"
)

//Kind enumerates the closed set of value types a property may hold on the
//open side. Converters switch over it exhaustively instead of inspecting
//runtime types.
type Kind int

const (
	Nothing Kind = iota
	Bool
	Int
	Float
	String
	Quantity
	VecQuantity
)

func (k Kind) String() string {
	switch k {
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Float:
		return "float"
	case String:
		return "string"
	case Quantity:
		return "quantity"
	case VecQuantity:
		return "vector quantity"
	}
	return "nothing"
}

//Value is a tagged variant over the property types of the open side.
//The zero value has kind Nothing.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	q    unit.Quantity
	v    unit.Vec
}

func BoolValue(b bool) Value { return Value{kind: Bool, b: b} }

func IntValue(i int64) Value { return Value{kind: Int, i: i} }

func FloatValue(f float64) Value { return Value{kind: Float, f: f} }

func StringValue(s string) Value { return Value{kind: String, s: s} }

func QuantityValue(q unit.Quantity) Value { return Value{kind: Quantity, q: q} }

func VecValue(v unit.Vec) Value { return Value{kind: VecQuantity, v: v} }

//Kind returns the variant tag of the value.
func (v Value) Kind() Kind { return v.kind }

//Bool returns the boolean payload. Meaningful only for kind Bool.
func (v Value) Bool() bool { return v.b }

//Int returns the integer payload. Meaningful only for kind Int.
func (v Value) Int() int64 { return v.i }

//Float returns the floating-point payload. Meaningful only for kind Float.
func (v Value) Float() float64 { return v.f }

//Text returns the string payload. Meaningful only for kind String.
func (v Value) Text() string { return v.s }

//Quantity returns the scalar quantity payload. Meaningful only for
//kind Quantity.
func (v Value) Quantity() unit.Quantity { return v.q }

//Vec returns the vector quantity payload. Meaningful only for
//kind VecQuantity.
func (v Value) Vec() unit.Vec { return v.v }

func (v Value) String() string {
	switch v.kind {
	case Bool:
		return fmt.Sprintf("%v", v.b)
	case Int:
		return fmt.Sprintf("%d", v.i)
	case Float:
		return fmt.Sprintf("%g", v.f)
	case String:
		return v.s
	case Quantity:
		return v.q.String()
	case VecQuantity:
		return v.v.String()
	}
	return "<nothing>"
}
