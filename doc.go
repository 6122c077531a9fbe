/*
 * doc.go, part of chembridge.
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

/*Package chembridge converts between two atomistic data models: the open,
unit-aware model of the system package (arbitrary named properties per atom
and per system, flexible cell description, quantities with units attached)
and the closed, unit-less model of the frame package (fixed-schema arrays
in canonical units, three cell shapes, properties limited to string, float
and bool).


	**chembridge capabilities**


    Converts a system into a frame (ToFrame) and a frame into a system
	(ToSystem). Both directions are pure: one fully materialized input,
	one newly allocated output, no state kept across calls, so concurrent
	conversions of independent inputs need no locking.

    Converts every unit-attached quantity to the canonical unit of its
	dimension on the way in: lengths to Angstrom, velocities to
	Angstrom/ps, masses to AMU, charges to elementary charges.

    Maps the cell both ways: isolated cells become Infinite, fully
	periodic cells become Orthorhombic or Triclinic matrices whose ROWS
	are the lattice vectors. Partial periodicity is inexpressible on the
	frame side and falls back to Infinite with a warning.

    Reports every lossy step (dropped property types, ignored boundary
	conditions, refused read-only radii) as an ordered list of
	diagnostics returned with the result, never through a log sink the
	caller can't inspect. The only fatal condition is a structural one:
	a mandatory field missing or malformed aborts the call with an error
	naming the atom and field, and no partial output.

    Serializes conversion results to JSON, plainly or through a
	zstd-compressed snapshot stream (the bridgejson package).

Numeric properties read back from a frame carry no unit, and a zero-filled
velocity array is indistinguishable from absent velocities; both are
documented limitations of the closed schema, not of this package.*/
package chembridge
