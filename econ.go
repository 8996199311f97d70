/*
 * econ.go, part of structural-descriptors.
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

//Effective coordination numbers after Hoppe (1979): every candidate bond
//gets a weight exp(1-(l/lav)^6) against a weighted-average bond length
//that is iterated to self-consistency, and the ECoN of a site is the sum
//of those weights.

package xtal

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

const (
	//bonds with weights below this do not count as contributing to a
	//coordination polyhedron
	MinBondWeight = 1e-5
	//DefaultRadius is the neighbor-search cutoff (Angstrom) within which
	//peripheral ions are collected when none is given.
	DefaultRadius = 3.2
	econTol       = 1e-10
	econMaxIter   = 100
)

//BondWeight returns the Hoppe bond weight exp(1-(l/lav)^6) for a bond of
//length l against the (weighted) average bond length lav.
func BondWeight(l, lav float64) float64 {
	return math.Exp(1 - math.Pow(l/lav, 6))
}

//WeightedAvgBondLength iterates the Hoppe weighted average of the given
//bond lengths to self-consistency, starting from the shortest bond.
//Panics on an empty slice.
func WeightedAvgBondLength(lengths []float64) float64 {
	if len(lengths) == 0 {
		panic("WeightedAvgBondLength: no bond lengths given")
	}
	lav := lengths[0]
	for _, l := range lengths {
		if l < lav {
			lav = l
		}
	}
	for i := 0; i < econMaxIter; i++ {
		var num, den float64
		for _, l := range lengths {
			w := BondWeight(l, lav)
			num += l * w
			den += w
		}
		next := num / den
		if math.Abs(next-lav) < econTol {
			return next
		}
		lav = next
	}
	return lav
}

//bondWeights returns the converged Hoppe weights for the distances of
//the given neighbors.
func bondWeights(neighbors []*Neighbor) []float64 {
	if len(neighbors) == 0 {
		return nil
	}
	lengths := make([]float64, len(neighbors))
	for i, n := range neighbors {
		lengths[i] = n.Distance
	}
	lav := WeightedAvgBondLength(lengths)
	ws := make([]float64, len(lengths))
	for i, l := range lengths {
		ws[i] = BondWeight(l, lav)
	}
	return ws
}

//coordinating returns the neighbors considered when computing the
//coordination of site i: the anions around a cation, or the cations
//around an anion.
func (S *Structure) coordinating(i int, radius float64) []*Neighbor {
	all := S.Neighbors(i, radius)
	wantAnion := !S.Site(i).IsAnion()
	ret := make([]*Neighbor, 0, len(all))
	for _, n := range all {
		if n.Site.IsAnion() == wantAnion {
			ret = append(ret, n)
		}
	}
	return ret
}

//ECoN returns the effective coordination number of site i: the sum of
//the self-consistent Hoppe bond weights over the coordinating ions
//within radius. It fails if no coordinating ion lies within the radius.
func (S *Structure) ECoN(i int, radius float64) (float64, error) {
	neighs := S.coordinating(i, radius)
	if len(neighs) == 0 {
		return 0, CError{msg: fmt.Sprintf("Site %d (%s) has no coordinating ions within %4.2f A", i, S.Site(i).Label, radius), deco: []string{"ECoN"}}
	}
	var ret float64
	for _, w := range bondWeights(neighs) {
		ret += w
	}
	return ret, nil
}

//AvgECoN returns the mean ECoN for each cation species in the structure.
func (S *Structure) AvgECoN(radius float64) (map[string]float64, error) {
	perSpecies := map[string][]float64{}
	for _, i := range S.CationIndexes() {
		econ, err := S.ECoN(i, radius)
		if err != nil {
			return nil, errDecorate(err, "AvgECoN")
		}
		sym := S.Site(i).Symbol
		perSpecies[sym] = append(perSpecies[sym], econ)
	}
	ret := make(map[string]float64, len(perSpecies))
	for sym, cns := range perSpecies {
		ret[sym] = stat.Mean(cns, nil)
	}
	return ret, nil
}
