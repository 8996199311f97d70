/*
 * lattice.go, part of structural-descriptors.
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
	"math"

	v3 "github.com/medgbb/structural-descriptors-repo/v3"
	"gonum.org/v1/gonum/mat"
)

//Deg2Rad is a multiplier to transform degree to radians.
const Deg2Rad = math.Pi / 180.0

//Lattice represents the unit cell of a periodic structure. Lengths are
//in Angstrom, angles in degrees. The cell basis is stored row-wise: the
//first row of the basis matrix is the a vector in cartesian coordinates,
//and so on.
type Lattice struct {
	a, b, c            float64
	alpha, beta, gamma float64
	basis              *mat.Dense //3x3, rows are the cell vectors
	inv                *mat.Dense //cached inverse of basis
}

//NewLattice builds a Lattice from the six cell parameters. It returns an
//error on non-positive lengths or angles outside (0,180). The cell
//vectors are built in the usual crystallographic frame: a along x, b in
//the xy plane.
func NewLattice(a, b, c, alpha, beta, gamma float64) (*Lattice, error) {
	if a <= 0 || b <= 0 || c <= 0 {
		return nil, CError{msg: fmt.Sprintf("Non-positive cell length: %4.2f %4.2f %4.2f", a, b, c), deco: []string{"NewLattice"}}
	}
	for _, ang := range []float64{alpha, beta, gamma} {
		if ang <= 0 || ang >= 180 {
			return nil, CError{msg: fmt.Sprintf("Cell angle out of range: %4.2f", ang), deco: []string{"NewLattice"}}
		}
	}
	ca := math.Cos(alpha * Deg2Rad)
	cb := math.Cos(beta * Deg2Rad)
	cg := math.Cos(gamma * Deg2Rad)
	sg := math.Sin(gamma * Deg2Rad)
	cx := c * cb
	cy := c * (ca - cb*cg) / sg
	czsq := c*c - cx*cx - cy*cy
	if czsq <= 0 {
		return nil, CError{msg: "Cell angles are not compatible with a 3D lattice", deco: []string{"NewLattice"}}
	}
	basis := mat.NewDense(3, 3, []float64{
		a, 0, 0,
		b * cg, b * sg, 0,
		cx, cy, math.Sqrt(czsq),
	})
	inv := mat.NewDense(3, 3, nil)
	if err := inv.Inverse(basis); err != nil {
		return nil, CError{msg: "Singular cell basis: " + err.Error(), deco: []string{"NewLattice"}}
	}
	return &Lattice{a: a, b: b, c: c, alpha: alpha, beta: beta, gamma: gamma, basis: basis, inv: inv}, nil
}

//Parameters returns the cell lengths and angles, in that order.
func (L *Lattice) Parameters() (a, b, c, alpha, beta, gamma float64) {
	return L.a, L.b, L.c, L.alpha, L.beta, L.gamma
}

//Basis returns a copy of the row-wise cell basis matrix.
func (L *Lattice) Basis() *mat.Dense {
	ret := mat.NewDense(3, 3, nil)
	ret.Copy(L.basis)
	return ret
}

//Volume returns the cell volume in cubic Angstrom.
func (L *Lattice) Volume() float64 {
	return math.Abs(mat.Det(L.basis))
}

//Vector puts the ith cell vector (0 for a, 1 for b, 2 for c) in the
//first vector of the given matrix, which is also returned. If given nil,
//a new matrix is allocated. Panics if i is out of range.
func (L *Lattice) Vector(i int, dest *v3.Matrix) *v3.Matrix {
	if i < 0 || i > 2 {
		panic("Lattice: requested cell vector out of range")
	}
	if dest == nil {
		dest = v3.Zeros(1)
	}
	for j := 0; j < 3; j++ {
		dest.Set(0, j, L.basis.At(i, j))
	}
	return dest
}

//Cart transforms the fractional coordinates in frac (one point per row)
//to cartesian coordinates. A new matrix is returned.
func (L *Lattice) Cart(frac *v3.Matrix) *v3.Matrix {
	ret := v3.Zeros(frac.NVecs())
	ret.Mul(frac.Dense, L.basis)
	return ret
}

//Frac transforms the cartesian coordinates in cart (one point per row)
//to fractional coordinates. A new matrix is returned.
func (L *Lattice) Frac(cart *v3.Matrix) *v3.Matrix {
	ret := v3.Zeros(cart.NVecs())
	ret.Mul(cart.Dense, L.inv)
	return ret
}

//PerpendicularHeights returns, for each axis, the distance between the
//lattice planes spanned by the other two cell vectors. It is used to
//decide how many periodic images a neighbor search must visit.
func (L *Lattice) PerpendicularHeights() [3]float64 {
	vol := L.Volume()
	var ret [3]float64
	cross := v3.Zeros(1)
	u := v3.Zeros(1)
	w := v3.Zeros(1)
	for i := 0; i < 3; i++ {
		L.Vector((i+1)%3, u)
		L.Vector((i+2)%3, w)
		cross.Cross(u, w)
		ret[i] = vol / cross.Norm(2)
	}
	return ret
}
