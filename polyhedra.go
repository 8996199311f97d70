/*
 * polyhedra.go, part of structural-descriptors.
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

//Connectivity between coordination polyhedra in a structure, where
//connectivity is defined by the number of peripheral ions shared by two
//polyhedra: 0 shared ions means no connectivity, 1 means corner
//(point) sharing, 2 means edge sharing, and 3 or more means face
//sharing. Peripheral ions are the anions surrounding a cation site
//whose Hoppe bond weight is large enough to contribute to the ECoN.

package xtal

import (
	"fmt"
	"math"

	v3 "github.com/medgbb/structural-descriptors-repo/v3"
)

//Sharing classifies the relation between two coordination polyhedra.
type Sharing int

const (
	Isolated Sharing = iota
	Corner
	Edge
	Face
)

func (s Sharing) String() string {
	switch s {
	case Isolated:
		return "isolated"
	case Corner:
		return "corner"
	case Edge:
		return "edge"
	case Face:
		return "face"
	}
	return fmt.Sprintf("Sharing(%d)", int(s))
}

//classifySharing turns a shared-ion count into a Sharing class. Negative
//counts (self comparisons) map to Isolated and should be filtered out by
//the caller.
func classifySharing(shared int) Sharing {
	switch {
	case shared >= 3:
		return Face
	case shared == 2:
		return Edge
	case shared == 1:
		return Corner
	}
	return Isolated
}

//ConnCounts accumulates, for one cation species, how many partner
//relations of each class its polyhedra have. Index with the Sharing
//constants; Isolated counts polyhedra with no partner at all.
type ConnCounts [4]int

//Polyhedron is a cation-centered coordination polyhedron: a central
//cation position plus the absolute cartesian positions of its
//peripheral anions.
type Polyhedron struct {
	Center      *Site
	CenterIndex int        //index of the center in the structure
	Pos         *v3.Matrix //center, absolute cartesian, 1x3
	Peripherals *v3.Matrix //one row per peripheral ion, or nil if none
	Weights     []float64  //Hoppe weight of each peripheral ion
}

//NewPolyhedron builds the coordination polyhedron around site i: the
//anion neighbors within radius whose self-consistent Hoppe bond weight
//exceeds MinBondWeight. A polyhedron without peripheral ions is legal
//(Peripherals is nil); asking for a polyhedron around an anion is an
//error.
func NewPolyhedron(S *Structure, i int, radius float64) (*Polyhedron, error) {
	center := S.Site(i)
	if center.IsAnion() {
		return nil, CError{msg: fmt.Sprintf("Site %d (%s) is an anion, not a polyhedron center", i, center.Label), deco: []string{"NewPolyhedron"}}
	}
	P := &Polyhedron{Center: center, CenterIndex: i, Pos: S.Coord(i, nil)}
	neighs := S.AnionNeighbors(i, radius)
	if len(neighs) == 0 {
		return P, nil
	}
	ws := bondWeights(neighs)
	keep := make([]int, 0, len(neighs))
	for k, w := range ws {
		if w > MinBondWeight {
			keep = append(keep, k)
		}
	}
	if len(keep) == 0 {
		return P, nil
	}
	P.Peripherals = v3.Zeros(len(keep))
	P.Weights = make([]float64, 0, len(keep))
	for row, k := range keep {
		P.Peripherals.SetMatrix(row, 0, neighs[k].Pos)
		P.Weights = append(P.Weights, ws[k])
	}
	return P, nil
}

//NPeripherals returns the number of peripheral ions of the polyhedron.
func (P *Polyhedron) NPeripherals() int {
	if P.Peripherals == nil {
		return 0
	}
	return P.Peripherals.NVecs()
}

//CoordinationNumber returns the rounded sum of the peripheral bond
//weights, i.e. the integer ECoN of the polyhedron.
func (P *Polyhedron) CoordinationNumber() int {
	var sum float64
	for _, w := range P.Weights {
		sum += w
	}
	return int(math.Round(sum))
}

//PeripheralDistances returns the distances between the central site and
//each peripheral ion.
func (P *Polyhedron) PeripheralDistances() []float64 {
	ret := make([]float64, P.NPeripherals())
	d := v3.Zeros(1)
	for k := range ret {
		d.Sub(P.Peripherals.VecView(k), P.Pos)
		ret[k] = d.Norm(2)
	}
	return ret
}

//Translated returns a copy of the polyhedron displaced by the lattice
//translation image (in cell units).
func (P *Polyhedron) Translated(lat *Lattice, image [3]int) *Polyhedron {
	shift := v3.Zeros(1)
	t := v3.Zeros(1)
	for j := 0; j < 3; j++ {
		if image[j] == 0 {
			continue
		}
		lat.Vector(j, t)
		t.Scale(float64(image[j]), t)
		shift.Add(shift, t)
	}
	ret := &Polyhedron{Center: P.Center, CenterIndex: P.CenterIndex, Weights: P.Weights}
	ret.Pos = v3.Zeros(1)
	ret.Pos.Add(P.Pos, shift)
	if P.Peripherals != nil {
		n := P.Peripherals.NVecs()
		ret.Peripherals = v3.Zeros(n)
		for k := 0; k < n; k++ {
			row := ret.Peripherals.VecView(k)
			row.Add(P.Peripherals.VecView(k), shift)
		}
	}
	return ret
}

//Shared counts the peripheral ions common to P and Q (positions
//matching within posTol). It returns -1 when P and Q have the same
//center position, i.e. when a polyhedron is compared against itself.
func (P *Polyhedron) Shared(Q *Polyhedron) int {
	d := v3.Zeros(1)
	d.Sub(P.Pos, Q.Pos)
	if d.Norm(2) < posTol {
		return -1
	}
	shared := 0
	for k := 0; k < P.NPeripherals(); k++ {
		pk := P.Peripherals.VecView(k)
		for l := 0; l < Q.NPeripherals(); l++ {
			d.Sub(pk, Q.Peripherals.VecView(l))
			if d.Norm(2) < posTol {
				shared++
				break
			}
		}
	}
	return shared
}

//CationPolyhedra returns the coordination polyhedron of every cation
//site in the cell.
func CationPolyhedra(S *Structure, radius float64) ([]*Polyhedron, error) {
	cations := S.CationIndexes()
	if len(cations) == 0 {
		return nil, CError{msg: "Structure has no cation sites", deco: []string{"CationPolyhedra"}}
	}
	ret := make([]*Polyhedron, 0, len(cations))
	for _, i := range cations {
		p, err := NewPolyhedron(S, i, radius)
		if err != nil {
			return nil, errDecorate(err, "CationPolyhedra")
		}
		ret = append(ret, p)
	}
	return ret, nil
}

//imageRange returns, per axis, how many cell translations must be
//visited so that no pair of polyhedra that could share an ion is missed.
//Two polyhedra built with cutoff radius can only share ions if their
//centers are within 2*radius.
func imageRange(lat *Lattice, radius float64) [3]int {
	heights := lat.PerpendicularHeights()
	var ret [3]int
	for j := 0; j < 3; j++ {
		ret[j] = int(math.Ceil(2*radius/heights[j])) + 1
	}
	return ret
}

//allImages returns every polyhedron in polys translated to every image
//within the given per-axis range, the identity image included.
func allImages(polys []*Polyhedron, lat *Lattice, nmax [3]int) []*Polyhedron {
	ret := make([]*Polyhedron, 0, len(polys)*(2*nmax[0]+1)*(2*nmax[1]+1)*(2*nmax[2]+1))
	for ia := -nmax[0]; ia <= nmax[0]; ia++ {
		for ib := -nmax[1]; ib <= nmax[1]; ib++ {
			for ic := -nmax[2]; ic <= nmax[2]; ic++ {
				for _, p := range polys {
					ret = append(ret, p.Translated(lat, [3]int{ia, ib, ic}))
				}
			}
		}
	}
	return ret
}

//Connectivity returns, for each cation species, the counts of corner-,
//edge- and face-sharing partner relations over all polyhedra of that
//species in the cell, periodic images included. A polyhedron with no
//sharing partner at all adds one to the Isolated slot of its species.
func Connectivity(S *Structure, radius float64) (map[string]*ConnCounts, error) {
	polys, err := CationPolyhedra(S, radius)
	if err != nil {
		return nil, errDecorate(err, "Connectivity")
	}
	images := allImages(polys, S.lattice, imageRange(S.lattice, radius))
	ret := map[string]*ConnCounts{}
	for _, p := range polys {
		counts, ok := ret[p.Center.Symbol]
		if !ok {
			counts = new(ConnCounts)
			ret[p.Center.Symbol] = counts
		}
		connected := false
		for _, q := range images {
			shared := p.Shared(q)
			if shared <= 0 {
				continue
			}
			counts[classifySharing(shared)]++
			connected = true
		}
		if !connected {
			counts[Isolated]++
		}
	}
	return ret, nil
}

//ConnectivityMatrix returns, for each ordered pair of cation sites in
//the cell, the counts of [corner, edge, face] sharing instances between
//the polyhedron of the first site and all periodic images of the
//polyhedron of the second (images of the first site itself included on
//the diagonal). Keys are site indexes in the structure.
func ConnectivityMatrix(S *Structure, radius float64) (map[int]map[int]*[3]int, error) {
	polys, err := CationPolyhedra(S, radius)
	if err != nil {
		return nil, errDecorate(err, "ConnectivityMatrix")
	}
	nmax := imageRange(S.lattice, radius)
	ret := map[int]map[int]*[3]int{}
	for _, p := range polys {
		row := map[int]*[3]int{}
		ret[p.CenterIndex] = row
		for _, q := range polys {
			cell := new([3]int)
			row[q.CenterIndex] = cell
			for _, qi := range allImages([]*Polyhedron{q}, S.lattice, nmax) {
				shared := p.Shared(qi)
				if shared <= 0 {
					continue
				}
				switch classifySharing(shared) {
				case Corner:
					cell[0]++
				case Edge:
					cell[1]++
				case Face:
					cell[2]++
				}
			}
		}
	}
	return ret, nil
}
