/*
 * errors.go, part of chembridge.
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

import "fmt"

//Error is the structural-error type of the converters. A structural error
//aborts the whole call: no partial frame or system is returned alongside
//it. Per-property and per-boundary problems are never an Error; they
//become Warning diagnostics instead.
type Error struct {
	message string
	deco    []string
}

func (err Error) Error() string {
	return fmt.Sprintf("chembridge: %s", err.message)
}

func (err Error) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver, and tries to alter the receiver,
	//it should work, since err.deco is a slice, and hence a pointer itself.
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//decorator is what the errors of every package in this module implement.
type decorator interface {
	error
	Decorate(string) []string
}

//errDecorate decorates err with the caller's name if err supports it, and
//returns it unchanged otherwise.
func errDecorate(err error, caller string) error {
	err2, ok := err.(decorator)
	if !ok {
		return err
	}
	err2.Decorate(caller)
	return err2
}

//Messages for the structural errors.
const (
	NilSystem      = "supplied a nil system"
	NilFrame       = "supplied a nil frame"
	MissingSymbol  = "missing mandatory species symbol"
	UnknownElement = "unknown element symbol"
	MissingField   = "missing mandatory field"
	MalformedField = "malformed mandatory field"
)
