/*
 * diagnostics.go, part of chembridge.
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

//Severity grades a diagnostic. Warnings mark lossy but recoverable steps;
//Fatal marks the structural failure that aborted a conversion.
type Severity int

const (
	Warning Severity = iota
	Fatal
)

func (s Severity) String() string {
	if s == Fatal {
		return "fatal"
	}
	return "warning"
}

//Diagnostic is one non-fatal (or, for an aborted call, the one fatal)
//record of a lossy or rejected conversion step. Diagnostics are returned
//to the caller, never logged.
type Diagnostic struct {
	Severity Severity
	Message  string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Severity, d.Message)
}

//Diagnostics is the ordered sequence of diagnostics accumulated during one
//conversion call.
type Diagnostics []Diagnostic

//warnf appends a warning built from the given format.
func (D *Diagnostics) warnf(format string, args ...interface{}) {
	*D = append(*D, Diagnostic{Severity: Warning, Message: fmt.Sprintf(format, args...)})
}

//fatalf appends a fatal diagnostic built from the given format.
func (D *Diagnostics) fatalf(format string, args ...interface{}) {
	*D = append(*D, Diagnostic{Severity: Fatal, Message: fmt.Sprintf(format, args...)})
}

//Warnings returns the subset of diagnostics with Warning severity.
func (D Diagnostics) Warnings() []Diagnostic {
	var w []Diagnostic
	for _, d := range D {
		if d.Severity == Warning {
			w = append(w, d)
		}
	}
	return w
}
