/*
 * xtal.go, part of structural-descriptors.
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
	"fmt"
	"sort"
	"strings"

	v3 "github.com/medgbb/structural-descriptors-repo/v3"
)

//Tolerance (in fractional units) under which two positions are regarded
//as the same crystallographic site.
const SiteTol = 1e-4

//Site contains everything about an atomic site except its cartesian
//coordinates, which live in a matrix owned by the Structure.
type Site struct {
	Symbol       string     //element symbol, charge labels stripped
	Species      string     //species as given in the source file, e.g. "Na+"
	Label        string
	Frac         [3]float64 //fractional coordinates, wrapped to [0,1)
	Occupancy    float64
	Multiplicity int
	AttachedH    int        //attached hydrogens
	Biso         float64    //isotropic displacement
}

//Copy returns a copy of the Site.
func (S *Site) Copy() *Site {
	if S == nil {
		panic("Attempted to copy a nil site")
	}
	ns := *S
	return &ns
}

//IsAnion returns whether the site hosts an anion-forming element.
func (S *Site) IsAnion() bool {
	return IsAnion(S.Symbol)
}

//Structure is a periodic arrangement of sites in a lattice. The
//cartesian coordinates, which are derived data, are kept in a v3.Matrix
//with one row per site.
type Structure struct {
	Name       string //the data block name, if read from a file
	SpaceGroup string //Hermann-Mauguin symbol, if known
	lattice    *Lattice
	sites      []*Site
	coords     *v3.Matrix
}

//NewStructure builds a Structure from a lattice and a list of sites. The
//fractional coordinates of the sites are wrapped into [0,1) and the
//cartesian coordinate matrix is built from them. Occupancies outside
//(0,1] are an error. Nil arguments are an error.
func NewStructure(lat *Lattice, sites []*Site) (*Structure, error) {
	if lat == nil || sites == nil {
		return nil, CError{msg: "Supplied a nil lattice or site list", deco: []string{"NewStructure"}}
	}
	if len(sites) == 0 {
		return nil, CError{msg: "Supplied an empty site list", deco: []string{"NewStructure"}}
	}
	S := &Structure{lattice: lat, sites: make([]*Site, 0, len(sites))}
	frac := v3.Zeros(len(sites))
	for i, s := range sites {
		if s.Occupancy <= 0 || s.Occupancy > 1 {
			return nil, CError{msg: fmt.Sprintf("Site %s has occupancy %4.2f, out of (0,1]", s.Label, s.Occupancy), deco: []string{"NewStructure"}}
		}
		ns := s.Copy()
		for j := 0; j < 3; j++ {
			ns.Frac[j] = wrapFrac(ns.Frac[j])
			frac.Set(i, j, ns.Frac[j])
		}
		S.sites = append(S.sites, ns)
	}
	S.coords = lat.Cart(frac)
	return S, nil
}

//wrapFrac wraps a fractional coordinate into [0,1), snapping values
//within SiteTol of an integer onto it.
func wrapFrac(x float64) float64 {
	x = x - float64(int(x))
	if x < 0 {
		x++
	}
	if x > 1-SiteTol || x < SiteTol {
		x = 0
	}
	return x
}

//Len returns the number of sites in the structure.
func (S *Structure) Len() int {
	return len(S.sites)
}

//Site returns the site with index i. Panics if out of range.
func (S *Structure) Site(i int) *Site {
	if i < 0 || i >= S.Len() {
		panic("Structure: requested site out of bounds")
	}
	return S.sites[i]
}

//Lattice returns the lattice of the structure.
func (S *Structure) Lattice() *Lattice {
	return S.lattice
}

//Coords returns the cartesian coordinate matrix of the structure, one
//row per site. The matrix is owned by the structure: callers that need
//to modify it should copy it first.
func (S *Structure) Coords() *v3.Matrix {
	return S.coords
}

//Coord puts the cartesian coordinates of site i in dest, which is also
//returned. If dest is nil a new matrix is allocated. Panics if out of
//range.
func (S *Structure) Coord(i int, dest *v3.Matrix) *v3.Matrix {
	if i < 0 || i >= S.Len() {
		panic("Structure: requested coordinate out of bounds")
	}
	if dest == nil {
		dest = v3.Zeros(1)
	}
	dest.Copy(S.coords.VecView(i))
	return dest
}

//CationIndexes returns the indexes of all sites not hosting an
//anion-forming element.
func (S *Structure) CationIndexes() []int {
	ret := make([]int, 0, S.Len())
	for i, s := range S.sites {
		if !s.IsAnion() {
			ret = append(ret, i)
		}
	}
	return ret
}

//FormulaSum returns the chemical formula of the cell contents in the
//"sum" convention: element symbols in alphabetical order, each followed
//by its count when larger than one, e.g. "Cl4 Na4" or "Ca O3 Ti".
func (S *Structure) FormulaSum() string {
	counts := map[string]int{}
	for _, s := range S.sites {
		counts[s.Symbol]++
	}
	symbols := make([]string, 0, len(counts))
	for k := range counts {
		symbols = append(symbols, k)
	}
	sort.Strings(symbols)
	parts := make([]string, 0, len(symbols))
	for _, s := range symbols {
		if counts[s] == 1 {
			parts = append(parts, s)
		} else {
			parts = append(parts, fmt.Sprintf("%s%d", s, counts[s]))
		}
	}
	return strings.Join(parts, " ")
}

//Mass returns the total mass of the cell contents, occupancy-weighted.
//It fails if any element lacks a tabulated mass.
func (S *Structure) Mass() (float64, error) {
	var ret float64
	for _, s := range S.sites {
		m, err := AtomicMass(s.Symbol)
		if err != nil {
			return 0, errDecorate(err, "Mass")
		}
		ret += m * s.Occupancy
	}
	return ret, nil
}

//Supercell returns a new structure with the cell repeated nx,ny,nz times
//along the respective axes. Panics on non-positive multipliers.
func (S *Structure) Supercell(nx, ny, nz int) (*Structure, error) {
	if nx < 1 || ny < 1 || nz < 1 {
		panic("Structure: non-positive supercell multiplier")
	}
	a, b, c, al, be, ga := S.lattice.Parameters()
	lat, err := NewLattice(a*float64(nx), b*float64(ny), c*float64(nz), al, be, ga)
	if err != nil {
		return nil, errDecorate(err, "Supercell")
	}
	mult := [3]int{nx, ny, nz}
	sites := make([]*Site, 0, S.Len()*nx*ny*nz)
	for ix := 0; ix < nx; ix++ {
		for iy := 0; iy < ny; iy++ {
			for iz := 0; iz < nz; iz++ {
				shift := [3]int{ix, iy, iz}
				for _, s := range S.sites {
					ns := s.Copy()
					for j := 0; j < 3; j++ {
						ns.Frac[j] = (s.Frac[j] + float64(shift[j])) / float64(mult[j])
					}
					sites = append(sites, ns)
				}
			}
		}
	}
	ret, err := NewStructure(lat, sites)
	if err != nil {
		return nil, errDecorate(err, "Supercell")
	}
	ret.Name = S.Name
	ret.SpaceGroup = S.SpaceGroup
	return ret, nil
}
