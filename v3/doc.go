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

/*Package v3 implements a 3-column matrix type for sets of points in 3D space,
backed by gonum's mat.Dense. Within the package it is understood that a
"vector" is a row of such a matrix, i.e. the cartesian (or fractional)
coordinates of one atomic site. Functions with "Vec" in their name operate on
rows.*/
package v3
