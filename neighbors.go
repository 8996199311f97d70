/*
 * neighbors.go, part of structural-descriptors.
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

package xtal

import (
	"math"
	"sort"

	v3 "github.com/medgbb/structural-descriptors-repo/v3"
)

//Two periodic images closer than this (Angstrom) are the same position.
const posTol = 1e-3

//Neighbor is one periodic image of a site, as seen from some center
//within a cutoff radius.
type Neighbor struct {
	Site     *Site
	Index    int        //index of the parent site in the structure
	Image    [3]int     //lattice translation of this image
	Pos      *v3.Matrix //absolute cartesian position, 1x3
	Distance float64
}

//Neighbors returns every periodic image of every site lying within
//radius (Angstrom) of site i, sorted by distance. The site itself (zero
//distance) is excluded; its periodic images are not, when the radius
//reaches them. This mirrors pymatgen's Structure.get_neighbors.
func (S *Structure) Neighbors(i int, radius float64) []*Neighbor {
	if radius <= 0 {
		panic("Structure: non-positive neighbor search radius")
	}
	center := S.Coord(i, nil)
	heights := S.lattice.PerpendicularHeights()
	var nmax [3]int
	for j := 0; j < 3; j++ {
		nmax[j] = int(math.Ceil(radius / heights[j]))
	}
	ret := make([]*Neighbor, 0, 12)
	shift := v3.Zeros(1)
	av := v3.Zeros(1)
	bv := v3.Zeros(1)
	cv := v3.Zeros(1)
	d := v3.Zeros(1)
	for ia := -nmax[0]; ia <= nmax[0]; ia++ {
		for ib := -nmax[1]; ib <= nmax[1]; ib++ {
			for ic := -nmax[2]; ic <= nmax[2]; ic++ {
				S.lattice.Vector(0, av)
				S.lattice.Vector(1, bv)
				S.lattice.Vector(2, cv)
				av.Scale(float64(ia), av)
				bv.Scale(float64(ib), bv)
				cv.Scale(float64(ic), cv)
				shift.Add(av, bv)
				shift.Add(shift, cv)
				for j := 0; j < S.Len(); j++ {
					pos := v3.Zeros(1)
					pos.Add(S.coords.VecView(j), shift)
					d.Sub(pos, center)
					dist := d.Norm(2)
					if dist > radius || dist < posTol {
						continue
					}
					ret = append(ret, &Neighbor{
						Site:     S.sites[j],
						Index:    j,
						Image:    [3]int{ia, ib, ic},
						Pos:      pos,
						Distance: dist,
					})
				}
			}
		}
	}
	sort.Slice(ret, func(a, b int) bool { return ret[a].Distance < ret[b].Distance })
	return ret
}

//AnionNeighbors returns the neighbors of site i within radius that host
//anion-forming elements, sorted by distance.
func (S *Structure) AnionNeighbors(i int, radius float64) []*Neighbor {
	all := S.Neighbors(i, radius)
	ret := make([]*Neighbor, 0, len(all))
	for _, n := range all {
		if n.Site.IsAnion() {
			ret = append(ret, n)
		}
	}
	return ret
}
