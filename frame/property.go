/*
 * property.go, part of chembridge.
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

import "fmt"

//PropKind enumerates the three value types the closed schema admits for a
//named property. The zero value marks an unset property.
type PropKind int

const (
	PropNothing PropKind = iota
	PropString
	PropFloat
	PropBool
)

func (k PropKind) String() string {
	switch k {
	case PropString:
		return "string"
	case PropFloat:
		return "float"
	case PropBool:
		return "bool"
	}
	return "nothing"
}

//Property is a tagged variant over the three value types of the closed
//schema. Properties carry no unit metadata: numbers written to a frame are
//bare numbers.
type Property struct {
	kind PropKind
	s    string
	f    float64
	b    bool
}

func StringProp(s string) Property { return Property{kind: PropString, s: s} }

func FloatProp(f float64) Property { return Property{kind: PropFloat, f: f} }

func BoolProp(b bool) Property { return Property{kind: PropBool, b: b} }

//Kind returns the variant tag of the property.
func (p Property) Kind() PropKind { return p.kind }

//Text returns the string payload. Meaningful only for kind PropString.
func (p Property) Text() string { return p.s }

//Float returns the numeric payload. Meaningful only for kind PropFloat.
func (p Property) Float() float64 { return p.f }

//Bool returns the boolean payload. Meaningful only for kind PropBool.
func (p Property) Bool() bool { return p.b }

func (p Property) String() string {
	switch p.kind {
	case PropString:
		return p.s
	case PropFloat:
		return fmt.Sprintf("%g", p.f)
	case PropBool:
		return fmt.Sprintf("%v", p.b)
	}
	return "<nothing>"
}
