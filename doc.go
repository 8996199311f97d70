/*
 * doc.go, part of structural-descriptors.
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

/*Package xtal provides crystal structure types and structural descriptors
for periodic solids.

	**Capabilities**

    Represents crystal structures: lattice, fractional/cartesian
	coordinates, occupancies, and site metadata as read from CIF files
	(see the cif subpackage).

    Applies and expands symmetry operations given in the x,y,z notation
	used by CIF symmetry loops.

    Searches for neighbors across periodic boundaries and builds
	supercells.

    Calculates effective coordination numbers (ECoN) with Hoppe's
	exponential bond weights, and O'Keeffe-style weighted coordination
	numbers, per site and averaged per cation species.

    Builds cation-centered coordination polyhedra and classifies the
	connectivity between them (isolated, corner-, edge- or face-sharing)
	by counting shared peripheral anions, periodic images included.

Coordinates are handled with the v3 subpackage, a thin 3-column matrix
type over gonum's mat.Dense. One row of a coordinate matrix is one site.*/
package xtal
