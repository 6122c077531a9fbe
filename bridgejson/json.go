/*
 * json.go, part of chembridge.
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

//Package bridgejson serializes conversion results, frame plus
//diagnostics, to JSON so external programs can consume them, and streams
//sequences of snapshots through a zstd-compressed writer/reader pair.
package bridgejson

import (
	"encoding/json"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/avillar/chembridge"
	"github.com/avillar/chembridge/frame"
)

//A ready-to-serialize container for one atom of a frame. Properties hold
//only JSON-native values: string, float64 or bool.
type Atom struct {
	Name       string
	Number     int
	Mass       float64
	Charge     float64
	Position   [3]float64
	Velocity   [3]float64
	Properties map[string]interface{} `json:",omitempty"`
}

//A ready-to-serialize container for one diagnostic.
type Diagnostic struct {
	Severity string
	Message  string
}

//Frame is a flat, ready-to-serialize container for a conversion result.
//Cell holds the 3x3 cell matrix in row-major order, rows being lattice
//vectors in Angstrom; Shape is informational and re-derived from the
//matrix on reassembly.
type Frame struct {
	Atoms       []Atom
	Cell        [9]float64
	Shape       string
	Properties  map[string]interface{} `json:",omitempty"`
	Diagnostics []Diagnostic           `json:",omitempty"`
}

//FromFrame flattens a frame and the diagnostics of the call that produced
//it into a serializable container. The derived read-only radii are not
//included, as they carry no information beyond the atomic number.
func FromFrame(f *frame.Frame, diags chembridge.Diagnostics) *Frame {
	J := new(Frame)
	J.Atoms = make([]Atom, f.Len())
	for i := 0; i < f.Len(); i++ {
		a := Atom{
			Name:     f.Name(i),
			Number:   f.Number(i),
			Mass:     f.Mass(i),
			Charge:   f.Charge(i),
			Position: f.Position(i),
			Velocity: f.Velocity(i),
		}
		props := f.AtomProperties(i)
		if len(props) > 0 {
			a.Properties = make(map[string]interface{}, len(props))
			for k, v := range props {
				a.Properties[k] = flatten(v)
			}
		}
		J.Atoms[i] = a
	}
	m := f.Cell().Matrix()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			J.Cell[3*i+j] = m.At(i, j)
		}
	}
	J.Shape = f.Cell().Shape().String()
	props := f.Properties()
	if len(props) > 0 {
		J.Properties = make(map[string]interface{}, len(props))
		for k, v := range props {
			J.Properties[k] = flatten(v)
		}
	}
	for _, d := range diags {
		J.Diagnostics = append(J.Diagnostics, Diagnostic{Severity: d.Severity.String(), Message: d.Message})
	}
	return J
}

//Reassemble builds a frame back from the container. The cell shape is
//re-derived from the matrix; the Diagnostics records are informational
//and not carried into the frame.
func (J *Frame) Reassemble() (*frame.Frame, error) {
	f := frame.New(len(J.Atoms))
	cell, err := frame.NewCell(mat.NewDense(3, 3, J.Cell[:]))
	if err != nil {
		return nil, errDecorate(err, "Reassemble")
	}
	f.SetCell(cell)
	for i, a := range J.Atoms {
		f.SetName(i, a.Name)
		f.SetNumber(i, a.Number)
		f.SetMass(i, a.Mass)
		f.SetCharge(i, a.Charge)
		f.SetPosition(i, a.Position)
		f.SetVelocity(i, a.Velocity)
		for k, v := range a.Properties {
			p, err := lift(v)
			if err != nil {
				return nil, Error{fmt.Sprintf("atom %d property %q: %s", i, k, err.Error()), []string{"Reassemble"}}
			}
			if err := f.SetAtomProperty(i, k, p); err != nil {
				return nil, errDecorate(err, "Reassemble")
			}
		}
	}
	for k, v := range J.Properties {
		p, err := lift(v)
		if err != nil {
			return nil, Error{fmt.Sprintf("property %q: %s", k, err.Error()), []string{"Reassemble"}}
		}
		if err := f.SetProperty(k, p); err != nil {
			return nil, errDecorate(err, "Reassemble")
		}
	}
	return f, nil
}

//Marshal serializes the container.
func (J *Frame) Marshal() ([]byte, error) {
	b, err := json.Marshal(J)
	if err != nil {
		return nil, Error{err.Error(), []string{"Marshal"}}
	}
	return b, nil
}

//Unmarshal deserializes a container previously produced by Marshal.
func Unmarshal(data []byte) (*Frame, error) {
	J := new(Frame)
	if err := json.Unmarshal(data, J); err != nil {
		return nil, Error{err.Error(), []string{"Unmarshal"}}
	}
	return J, nil
}

//flatten turns a closed-schema property into its JSON-native value.
func flatten(p frame.Property) interface{} {
	switch p.Kind() {
	case frame.PropString:
		return p.Text()
	case frame.PropBool:
		return p.Bool()
	default:
		return p.Float()
	}
}

//lift is the reverse of flatten. JSON numbers always decode as float64,
//which matches the closed schema's single numeric kind.
func lift(v interface{}) (frame.Property, error) {
	switch t := v.(type) {
	case string:
		return frame.StringProp(t), nil
	case bool:
		return frame.BoolProp(t), nil
	case float64:
		return frame.FloatProp(t), nil
	}
	return frame.Property{}, fmt.Errorf("value %v is not a string, number or bool", v)
}

//Errors

//Error is the bridgejson error type.
type Error struct {
	message string
	deco    []string
}

func (err Error) Error() string {
	return fmt.Sprintf("bridgejson error: %s", err.message)
}

func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

type decorator interface {
	error
	Decorate(string) []string
}

func errDecorate(err error, caller string) error {
	err2, ok := err.(decorator)
	if !ok {
		return err
	}
	err2.Decorate(caller)
	return err2
}
