/*
 * filter.go, part of chembridge.
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
)

//classify decides whether an open-side value is representable on the
//closed schema. Strings, floats and bools pass as-is. Scalar quantities
//pass after conversion to the canonical unit of their dimension, becoming
//bare numbers. Everything else (integers, vector quantities, unset
//values, quantities with broken units) is rejected with a reason naming
//the offending type.
func classify(v system.Value) (frame.Property, bool, string) {
	switch v.Kind() {
	case system.Bool:
		return frame.BoolProp(v.Bool()), true, ""
	case system.Float:
		return frame.FloatProp(v.Float()), true, ""
	case system.String:
		return frame.StringProp(v.Text()), true, ""
	case system.Quantity:
		n, err := v.Quantity().Canonical()
		if err != nil {
			return frame.Property{}, false, fmt.Sprintf("quantity with unusable unit (%s)", err)
		}
		return frame.FloatProp(n), true, ""
	case system.Int:
		return frame.Property{}, false, "unsupported type int"
	case system.VecQuantity:
		return frame.Property{}, false, "unsupported type vector quantity"
	}
	return frame.Property{}, false, "unsupported type nothing"
}
