/*
 * convert_test.go, part of chembridge.
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
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/avillar/chembridge/frame"
	"github.com/avillar/chembridge/system"
	"github.com/avillar/chembridge/unit"
)

const tol = 1e-12

//valueCmp lets go-cmp compare tagged Value variants despite their
//unexported fields.
var valueCmp = cmp.Comparer(func(a, b system.Value) bool { return a == b })

//waterish builds a small periodic two-atom system with a sprinkling of
//properties of every supported kind.
func waterish(t *testing.T) *system.System {
	o := system.NewAtom("O",
		unit.NewVec([3]float64{0, 0, 0}, unit.Angstrom),
		unit.New(16.00, unit.AMU),
		unit.New(-0.8, unit.ECharge))
	o.Properties["resname"] = system.StringValue("HOH")
	o.Properties["backbone"] = system.BoolValue(false)
	h := system.NewAtom("H",
		unit.NewVec([3]float64{0.09572, 0, 0}, unit.Nanometer),
		unit.New(1.0, unit.AMU),
		unit.New(0.4, unit.ECharge))
	h.Velocity = unit.NewVec([3]float64{0, 0.25, 0}, unit.AngPerPs)
	h.Properties["occupancy"] = system.FloatValue(1.0)
	cell := system.NewPeriodic([3]unit.Vec{
		unit.NewVec([3]float64{5, 0, 0}, unit.Angstrom),
		unit.NewVec([3]float64{0, 6, 0}, unit.Angstrom),
		unit.NewVec([3]float64{0, 0, 7}, unit.Angstrom),
	}, [3]bool{true, true, true})
	s, err := system.New([]*system.Atom{o, h}, cell)
	require.NoError(t, err)
	s.Properties["title"] = system.StringValue("waterish")
	s.Properties["solvated"] = system.BoolValue(true)
	return s
}

//TestRoundTrip converts a system without lossy properties to a frame and
//back, and checks it matches within tolerance on numbers and exactly on
//everything else.
func TestRoundTrip(t *testing.T) {
	s := waterish(t)
	f, diags, err := ToFrame(s)
	require.NoError(t, err)
	assert.Empty(t, diags)
	s2, diags2, err := ToSystem(f)
	require.NoError(t, err)
	assert.Empty(t, diags2)
	require.Equal(t, s.Len(), s2.Len())
	for i := 0; i < s.Len(); i++ {
		at, at2 := s.Atom(i), s2.Atom(i)
		assert.Equal(t, at.Symbol, at2.Symbol, "atom %d symbol", i)
		p1, err := at.Position.In(unit.Angstrom)
		require.NoError(t, err)
		p2, err := at2.Position.In(unit.Angstrom)
		require.NoError(t, err)
		assert.True(t, floats.EqualApprox(p1[:], p2[:], tol), "atom %d position: %v vs %v", i, p1, p2)
		m1, err := at.Mass.In(unit.AMU)
		require.NoError(t, err)
		m2, err := at2.Mass.In(unit.AMU)
		require.NoError(t, err)
		assert.InDelta(t, m1, m2, tol, "atom %d mass", i)
		c1, err := at.Charge.In(unit.ECharge)
		require.NoError(t, err)
		c2, err := at2.Charge.In(unit.ECharge)
		require.NoError(t, err)
		assert.InDelta(t, c1, c2, tol, "atom %d charge", i)
		assert.Empty(t, cmp.Diff(at.Properties, at2.Properties, valueCmp), "atom %d properties", i)
	}
	//the H velocity must survive and drag a zero velocity onto the O
	require.True(t, s2.Atom(0).HasVelocity())
	v0, err := s2.Atom(0).Velocity.In(unit.AngPerPs)
	require.NoError(t, err)
	assert.True(t, floats.EqualApprox(v0[:], []float64{0, 0, 0}, tol))
	v1, err := s2.Atom(1).Velocity.In(unit.AngPerPs)
	require.NoError(t, err)
	assert.True(t, floats.EqualApprox(v1[:], []float64{0, 0.25, 0}, tol))
	//cell
	require.True(t, s2.Cell.IsPeriodic())
	assert.Equal(t, [3]bool{true, true, true}, s2.Cell.PBC())
	for i, want := range [][3]float64{{5, 0, 0}, {0, 6, 0}, {0, 0, 7}} {
		got, err := s2.Cell.Vectors()[i].In(unit.Angstrom)
		require.NoError(t, err)
		assert.True(t, floats.EqualApprox(got[:], want[:], tol), "lattice vector %d: %v", i, got)
	}
	//system-level properties
	assert.Empty(t, cmp.Diff(s.Properties, s2.Properties, valueCmp))
}

//TestUnitCorrectness checks that lattice lengths land in the matrix in
//Angstrom regardless of the unit they were declared in.
func TestUnitCorrectness(t *testing.T) {
	cell := system.NewPeriodic([3]unit.Vec{
		unit.NewVec([3]float64{5, 0, 0}, unit.Angstrom),
		unit.NewVec([3]float64{0, 0.5, 0}, unit.Nanometer),
		unit.NewVec([3]float64{0, 0, 5 * unit.A2Bohr}, unit.Bohr),
	}, [3]bool{true, true, true})
	s, err := system.New([]*system.Atom{simpleAtom("H")}, cell)
	require.NoError(t, err)
	f, diags, err := ToFrame(s)
	require.NoError(t, err)
	assert.Empty(t, diags)
	assert.Equal(t, frame.Orthorhombic, f.Cell().Shape())
	m := f.Cell().Matrix()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, 5.0, m.At(i, i), tol, "diagonal entry %d", i)
	}
}

//TestVelocityZeroFill checks both halves of the velocity policy: absent
//velocities zero-fill forward, and uniformly zero velocities are omitted
//on the way back unless explicitly kept.
func TestVelocityZeroFill(t *testing.T) {
	s, err := system.New([]*system.Atom{simpleAtom("H"), simpleAtom("O")}, nil)
	require.NoError(t, err)
	f, _, err := ToFrame(s)
	require.NoError(t, err)
	assert.False(t, f.HasVelocities())
	for i := 0; i < f.Len(); i++ {
		assert.Equal(t, [3]float64{}, f.Velocity(i))
	}
	s2, diags, err := ToSystem(f)
	require.NoError(t, err)
	assert.Empty(t, diags)
	for i := 0; i < s2.Len(); i++ {
		assert.False(t, s2.Atom(i).HasVelocity(), "atom %d grew a velocity", i)
	}
	//opt in to zero velocities
	s3, _, err := ToSystem(f, true)
	require.NoError(t, err)
	for i := 0; i < s3.Len(); i++ {
		require.True(t, s3.Atom(i).HasVelocity())
		v, err := s3.Atom(i).Velocity.In(unit.AngPerPs)
		require.NoError(t, err)
		assert.Equal(t, [3]float64{}, v)
	}
}

//TestIsolatedCell checks the Isolated(3) to Infinite mapping.
func TestIsolatedCell(t *testing.T) {
	s, err := system.New([]*system.Atom{simpleAtom("C")}, system.NewIsolated(3))
	require.NoError(t, err)
	f, diags, err := ToFrame(s)
	require.NoError(t, err)
	assert.Empty(t, diags)
	assert.Equal(t, frame.Infinite, f.Cell().Shape())
	assert.False(t, f.HasVelocities())
	s2, _, err := ToSystem(f)
	require.NoError(t, err)
	assert.False(t, s2.Cell.IsPeriodic())
	assert.Equal(t, 3, s2.Cell.Dim())
}

//TestReadOnlyRejectionNonFatal checks that supplying vdw_radius on an
//atom yields exactly one warning naming the atom and property, and a
//usable frame.
func TestReadOnlyRejectionNonFatal(t *testing.T) {
	at := simpleAtom("C")
	at.Properties[frame.VdwRadiusKey] = system.FloatValue(9.9)
	s, err := system.New([]*system.Atom{at}, nil)
	require.NoError(t, err)
	f, diags, err := ToFrame(s)
	require.NoError(t, err)
	require.NotNil(t, f)
	require.Len(t, diags.Warnings(), 1)
	msg := diags[0].Message
	assert.Contains(t, msg, frame.VdwRadiusKey)
	assert.Contains(t, msg, "atom 0")
	//the frame still answers with the table value, not the refused one
	p, ok := f.AtomProperty(0, frame.VdwRadiusKey)
	require.True(t, ok)
	assert.Equal(t, 1.70, p.Float())
}

//TestUnsupportedTypeDropped checks that an integer system property is
//absent from the frame, with exactly one warning naming key and type.
func TestUnsupportedTypeDropped(t *testing.T) {
	s, err := system.New([]*system.Atom{simpleAtom("H")}, nil)
	require.NoError(t, err)
	s.Properties["step"] = system.IntValue(42)
	f, diags, err := ToFrame(s)
	require.NoError(t, err)
	_, ok := f.Property("step")
	assert.False(t, ok, "integer property leaked into the frame")
	require.Len(t, diags.Warnings(), 1)
	assert.Contains(t, diags[0].Message, `"step"`)
	assert.Contains(t, diags[0].Message, "int")
}

//TestVectorPropertyDropped checks the same for a vector quantity on an
//atom.
func TestVectorPropertyDropped(t *testing.T) {
	at := simpleAtom("H")
	at.Properties["dipole"] = system.VecValue(unit.NewVec([3]float64{1, 0, 0}, unit.Angstrom))
	s, err := system.New([]*system.Atom{at}, nil)
	require.NoError(t, err)
	f, diags, err := ToFrame(s)
	require.NoError(t, err)
	_, ok := f.AtomProperty(0, "dipole")
	assert.False(t, ok)
	require.Len(t, diags.Warnings(), 1)
	assert.Contains(t, diags[0].Message, `"dipole"`)
}

//TestQuantityPropertyCanonicalized checks that a unit-attached scalar
//property lands as a bare number in the canonical unit.
func TestQuantityPropertyCanonicalized(t *testing.T) {
	at := simpleAtom("H")
	at.Properties["bond_cutoff"] = system.QuantityValue(unit.New(0.2, unit.Nanometer))
	s, err := system.New([]*system.Atom{at}, nil)
	require.NoError(t, err)
	f, diags, err := ToFrame(s)
	require.NoError(t, err)
	assert.Empty(t, diags)
	p, ok := f.AtomProperty(0, "bond_cutoff")
	require.True(t, ok)
	assert.InDelta(t, 2.0, p.Float(), tol)
}

//TestPartialPeriodicity checks that a (true, true, false) cell warns
//about boundary conditions and falls back to Infinite.
func TestPartialPeriodicity(t *testing.T) {
	cell := system.NewPeriodic([3]unit.Vec{
		unit.NewVec([3]float64{5, 0, 0}, unit.Angstrom),
		unit.NewVec([3]float64{0, 5, 0}, unit.Angstrom),
		unit.NewVec([3]float64{0, 0, 5}, unit.Angstrom),
	}, [3]bool{true, true, false})
	s, err := system.New([]*system.Atom{simpleAtom("H")}, cell)
	require.NoError(t, err)
	f, diags, err := ToFrame(s)
	require.NoError(t, err)
	assert.Equal(t, frame.Infinite, f.Cell().Shape())
	require.NotEmpty(t, diags.Warnings())
	found := false
	for _, d := range diags.Warnings() {
		if strings.Contains(d.Message, "boundary conditions") {
			found = true
		}
	}
	assert.True(t, found, "no warning mentions boundary conditions: %v", diags)
}

//TestIsolatedFlagsIgnored checks that periodicity flags on an isolated
//cell are ignored with a warning.
func TestIsolatedFlagsIgnored(t *testing.T) {
	cell := system.NewIsolated(2)
	cell.SetPBC([3]bool{true, false, false})
	s, err := system.New([]*system.Atom{simpleAtom("H")}, cell)
	require.NoError(t, err)
	f, diags, err := ToFrame(s)
	require.NoError(t, err)
	assert.Equal(t, frame.Infinite, f.Cell().Shape())
	//one warning for the stray flags, one for the dimensionality
	assert.Len(t, diags.Warnings(), 2)
	for _, d := range diags.Warnings() {
		assert.Contains(t, d.Message, "boundary conditions ignored")
	}
}

//TestMissingMassFatal checks the structural failure policy: no partial
//frame, a Fatal diagnostic and an error naming the atom and field.
func TestMissingMassFatal(t *testing.T) {
	at := simpleAtom("H")
	at.Mass = unit.Quantity{}
	s, err := system.New([]*system.Atom{simpleAtom("O"), at}, nil)
	require.NoError(t, err)
	f, diags, err := ToFrame(s)
	require.Error(t, err)
	assert.Nil(t, f)
	assert.Contains(t, err.Error(), "atom 1")
	assert.Contains(t, err.Error(), "mass")
	require.NotEmpty(t, diags)
	assert.Equal(t, Fatal, diags[len(diags)-1].Severity)
}

//TestUnknownElementFatal checks that a species the element tables don't
//know about can't fill the mandatory atomic-number array.
func TestUnknownElementFatal(t *testing.T) {
	s, err := system.New([]*system.Atom{simpleAtom("Xx")}, nil)
	require.NoError(t, err)
	f, _, err := ToFrame(s)
	require.Error(t, err)
	assert.Nil(t, f)
	assert.Contains(t, err.Error(), "Xx")
}

//TestTriclinicRoundTrip checks the row convention survives a round trip
//for a sheared cell.
func TestTriclinicRoundTrip(t *testing.T) {
	vectors := [3]unit.Vec{
		unit.NewVec([3]float64{5, 0, 0}, unit.Angstrom),
		unit.NewVec([3]float64{2.5, 6, 0}, unit.Angstrom),
		unit.NewVec([3]float64{1, 1.5, 7}, unit.Angstrom),
	}
	cell := system.NewPeriodic(vectors, [3]bool{true, true, true})
	s, err := system.New([]*system.Atom{simpleAtom("H")}, cell)
	require.NoError(t, err)
	f, _, err := ToFrame(s)
	require.NoError(t, err)
	assert.Equal(t, frame.Triclinic, f.Cell().Shape())
	s2, _, err := ToSystem(f)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		want, err := vectors[i].In(unit.Angstrom)
		require.NoError(t, err)
		got, err := s2.Cell.Vectors()[i].In(unit.Angstrom)
		require.NoError(t, err)
		assert.True(t, floats.EqualApprox(got[:], want[:], tol), "lattice vector %d: got %v, want %v", i, got)
	}
}

//TestFrameToSystemCopiesProperties checks the reverse property copy,
//units lost by design.
func TestFrameToSystemCopiesProperties(t *testing.T) {
	f := frame.New(1)
	f.SetName(0, "C")
	f.SetNumber(0, 6)
	f.SetMass(0, 12.01)
	f.SetCharge(0, 0)
	require.NoError(t, f.SetAtomProperty(0, "hybridization", frame.StringProp("sp3")))
	require.NoError(t, f.SetProperty("energy", frame.FloatProp(-76.4)))
	s, diags, err := ToSystem(f)
	require.NoError(t, err)
	assert.Empty(t, diags)
	want := map[string]system.Value{"hybridization": system.StringValue("sp3")}
	assert.Empty(t, cmp.Diff(want, s.Atom(0).Properties, valueCmp))
	wantSys := map[string]system.Value{"energy": system.FloatValue(-76.4)}
	assert.Empty(t, cmp.Diff(wantSys, s.Properties, valueCmp))
}

//simpleAtom returns a hydrogen-like atom at the origin with all the
//mandatory fields filled.
func simpleAtom(symbol string) *system.Atom {
	return system.NewAtom(symbol,
		unit.NewVec([3]float64{0, 0, 0}, unit.Angstrom),
		unit.New(1.0, unit.AMU),
		unit.New(0, unit.ECharge))
}
