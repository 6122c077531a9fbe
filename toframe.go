/*
 * toframe.go, part of chembridge.
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
	"sort"

	"github.com/avillar/chembridge/frame"
	"github.com/avillar/chembridge/system"
	"github.com/avillar/chembridge/unit"
)

//ToFrame converts an open-side system into a closed-schema frame. Every
//point where information is dropped, clamped or rejected produces exactly
//one Warning diagnostic; the only fatal condition is a structural one (a
//mandatory field missing or malformed), which aborts the call with a nil
//frame, a Fatal diagnostic and an error naming the atom and field.
//
//Properties survive through the type filter: strings, floats and bools
//pass as-is, scalar quantities are converted to the canonical unit of
//their dimension (length to Angstrom, velocity to Angstrom/ps, mass to
//AMU, charge to elementary charges) and written as bare numbers, anything
//else is dropped with a warning naming the key and the type. The two
//derived keys (vdw_radius, covalent_radius) are read-only on the frame
//side: a supplied value is offered to the frame, and its rejection is
//reported as a warning naming the atom and key while the conversion
//proceeds.
func ToFrame(s *system.System) (*frame.Frame, Diagnostics, error) {
	var diags Diagnostics
	if s == nil {
		diags.fatalf(NilSystem)
		return nil, diags, Error{NilSystem, []string{"ToFrame"}}
	}
	cell, err := cellToFrame(s.Cell, &diags)
	if err != nil {
		diags.fatalf("%s", err.Error())
		return nil, diags, errDecorate(err, "ToFrame")
	}
	F := frame.New(s.Len())
	F.SetCell(cell)
	for i := 0; i < s.Len(); i++ {
		at := s.Atom(i)
		if err := convertAtom(F, i, at, &diags); err != nil {
			diags.fatalf("%s", err.Error())
			return nil, diags, errDecorate(err, "ToFrame")
		}
	}
	for _, key := range sortedKeys(s.Properties) {
		p, ok, reason := classify(s.Properties[key])
		if !ok {
			diags.warnf("dropping system property %q: %s", key, reason)
			continue
		}
		if err := F.SetProperty(key, p); err != nil {
			diags.warnf("system property %q refused by the frame: %s", key, err.Error())
		}
	}
	return F, diags, nil
}

//convertAtom fills the mandatory arrays of the i-th frame atom and runs
//the atom's open properties through the type filter. Structural problems
//return an error; everything else warns.
func convertAtom(F *frame.Frame, i int, at *system.Atom, diags *Diagnostics) error {
	if at == nil {
		return Error{fmt.Sprintf("atom %d: %s: atom", i, MissingField), []string{"convertAtom"}}
	}
	if at.Symbol == "" {
		return Error{fmt.Sprintf("atom %d: %s", i, MissingSymbol), []string{"convertAtom"}}
	}
	number, ok := frame.AtomicNumber(at.Symbol)
	if !ok {
		return Error{fmt.Sprintf("atom %d: %s %q", i, UnknownElement, at.Symbol), []string{"convertAtom"}}
	}
	F.SetName(i, at.Symbol)
	F.SetNumber(i, number)
	if !at.Position.Valid() {
		return Error{fmt.Sprintf("atom %d: %s: position", i, MissingField), []string{"convertAtom"}}
	}
	pos, err := at.Position.In(unit.Angstrom)
	if err != nil {
		return Error{fmt.Sprintf("atom %d: %s: position (%s)", i, MalformedField, err.Error()), []string{"convertAtom"}}
	}
	F.SetPosition(i, pos)
	if at.HasVelocity() {
		vel, err := at.Velocity.In(unit.AngPerPs)
		if err != nil {
			return Error{fmt.Sprintf("atom %d: %s: velocity (%s)", i, MalformedField, err.Error()), []string{"convertAtom"}}
		}
		F.SetVelocity(i, vel)
	}
	if !at.Mass.Valid() {
		return Error{fmt.Sprintf("atom %d: %s: mass", i, MissingField), []string{"convertAtom"}}
	}
	mass, err := at.Mass.In(unit.AMU)
	if err != nil {
		return Error{fmt.Sprintf("atom %d: %s: mass (%s)", i, MalformedField, err.Error()), []string{"convertAtom"}}
	}
	F.SetMass(i, mass)
	if !at.Charge.Valid() {
		return Error{fmt.Sprintf("atom %d: %s: charge", i, MissingField), []string{"convertAtom"}}
	}
	charge, err := at.Charge.In(unit.ECharge)
	if err != nil {
		return Error{fmt.Sprintf("atom %d: %s: charge (%s)", i, MalformedField, err.Error()), []string{"convertAtom"}}
	}
	F.SetCharge(i, charge)
	for _, key := range sortedKeys(at.Properties) {
		p, ok, reason := classify(at.Properties[key])
		if !ok {
			diags.warnf("dropping atom %d property %q: %s", i, key, reason)
			continue
		}
		//The derived keys are offered to the frame like any other
		//property; the frame refuses them and the refusal becomes a
		//warning naming the atom and key.
		if err := F.SetAtomProperty(i, key, p); err != nil {
			diags.warnf("atom %d property %q refused by the frame: %s", i, key, err.Error())
		}
	}
	return nil
}

//sortedKeys fixes the iteration order of a property map so that the
//diagnostics of a conversion are deterministic.
func sortedKeys(m map[string]system.Value) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
