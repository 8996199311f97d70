/*
 * okeeffe.go, part of structural-descriptors.
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

//O'Keeffe (1979) proposed defining the coordination number of a site
//from a set of bond weights as n = (sum w)^2 / sum w^2, so that n equal
//weights give exactly n, and small weights barely count. The weights
//used here are the self-consistent Hoppe weights from econ.go.

package xtal

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

//OKeeffeCN returns the O'Keeffe weighted coordination number of site i,
//computed from the Hoppe bond weights of the coordinating ions within
//radius. It fails if no coordinating ion lies within the radius.
func (S *Structure) OKeeffeCN(i int, radius float64) (float64, error) {
	neighs := S.coordinating(i, radius)
	if len(neighs) == 0 {
		return 0, CError{msg: fmt.Sprintf("Site %d (%s) has no coordinating ions within %4.2f A", i, S.Site(i).Label, radius), deco: []string{"OKeeffeCN"}}
	}
	var sum, sumsq float64
	for _, w := range bondWeights(neighs) {
		sum += w
		sumsq += w * w
	}
	return sum * sum / sumsq, nil
}

//AvgOKeeffeCN returns the mean O'Keeffe weighted coordination number for
//each cation species in the structure.
func (S *Structure) AvgOKeeffeCN(radius float64) (map[string]float64, error) {
	perSpecies := map[string][]float64{}
	for _, i := range S.CationIndexes() {
		cn, err := S.OKeeffeCN(i, radius)
		if err != nil {
			return nil, errDecorate(err, "AvgOKeeffeCN")
		}
		sym := S.Site(i).Symbol
		perSpecies[sym] = append(perSpecies[sym], cn)
	}
	ret := make(map[string]float64, len(perSpecies))
	for sym, cns := range perSpecies {
		ret[sym] = stat.Mean(cns, nil)
	}
	return ret, nil
}
