/*
 * tosystem.go, part of chembridge.
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

	"github.com/avillar/chembridge/frame"
	"github.com/avillar/chembridge/system"
	"github.com/avillar/chembridge/unit"
)

//ToSystem converts a closed-schema frame back into an open-side system,
//reattaching the canonical units to the mandatory fields. The closed
//schema's three property kinds are all representable on the open side, so
//this direction has no type-filter rejections; numeric properties come
//back as unit-less numbers, since the frame stores no unit metadata. That
//asymmetry, like the derived radii never round-tripping, is a documented
//lossy point of the schema pair.
//
//By default the velocity field is omitted when the frame's velocity array
//is uniformly zero, because a zero-filled array and absent velocities are
//indistinguishable once written to the closed schema. Passing an optional
//trailing true keeps the zero velocities instead: ToSystem(f, true).
func ToSystem(f *frame.Frame, zerovel ...bool) (*system.System, Diagnostics, error) {
	var diags Diagnostics
	if f == nil {
		diags.fatalf(NilFrame)
		return nil, diags, Error{NilFrame, []string{"ToSystem"}}
	}
	keepzero := len(zerovel) > 0 && zerovel[0]
	hasvel := f.HasVelocities() || keepzero
	atoms := make([]*system.Atom, f.Len())
	for i := 0; i < f.Len(); i++ {
		at, err := revertAtom(f, i, hasvel)
		if err != nil {
			diags.fatalf("%s", err.Error())
			return nil, diags, errDecorate(err, "ToSystem")
		}
		atoms[i] = at
	}
	s, err := system.New(atoms, cellToSystem(f.Cell()))
	if err != nil {
		diags.fatalf("%s", err.Error())
		return nil, diags, errDecorate(err, "ToSystem")
	}
	for key, p := range f.Properties() {
		s.Properties[key] = revertProperty(p)
	}
	return s, diags, nil
}

//revertAtom builds an open-side atom from the i-th frame atom.
func revertAtom(f *frame.Frame, i int, hasvel bool) (*system.Atom, error) {
	symbol := f.Name(i)
	if symbol == "" {
		//the name array is free-form on the frame side, so fall back to
		//the element tables before giving up.
		var ok bool
		symbol, ok = frame.Symbol(f.Number(i))
		if !ok {
			return nil, Error{fmt.Sprintf("atom %d: %s and unknown atomic number %d", i, MissingSymbol, f.Number(i)), []string{"revertAtom"}}
		}
	}
	at := system.NewAtom(symbol,
		unit.NewVec(f.Position(i), unit.Angstrom),
		unit.New(f.Mass(i), unit.AMU),
		unit.New(f.Charge(i), unit.ECharge))
	if hasvel {
		at.Velocity = unit.NewVec(f.Velocity(i), unit.AngPerPs)
	}
	for key, p := range f.AtomProperties(i) {
		at.Properties[key] = revertProperty(p)
	}
	return at, nil
}

//revertProperty lifts a closed-side property onto the open side. All
//three closed kinds are representable, so this never fails; numbers come
//back without a unit.
func revertProperty(p frame.Property) system.Value {
	switch p.Kind() {
	case frame.PropString:
		return system.StringValue(p.Text())
	case frame.PropBool:
		return system.BoolValue(p.Bool())
	default:
		return system.FloatValue(p.Float())
	}
}
