/*
 * symmetry.go, part of structural-descriptors.
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
	"strconv"
	"strings"
)

//SymOp is a symmetry operation in fractional space: a rotation (or
//rotoinversion) matrix plus a translation, as written in CIF symmetry
//loops in the "x,y,z" notation.
type SymOp struct {
	Rot   [3][3]float64
	Trans [3]float64
}

//Identity returns the identity operation.
func Identity() *SymOp {
	return &SymOp{Rot: [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}}
}

//Apply applies the operation to a point in fractional coordinates. The
//result is NOT wrapped into the cell.
func (op *SymOp) Apply(p [3]float64) [3]float64 {
	var ret [3]float64
	for i := 0; i < 3; i++ {
		ret[i] = op.Trans[i]
		for j := 0; j < 3; j++ {
			ret[i] += op.Rot[i][j] * p[j]
		}
	}
	return ret
}

//String returns the operation back in the x,y,z notation, translations
//first, as in "1/2+x,y,-z".
func (op *SymOp) String() string {
	letters := []string{"x", "y", "z"}
	comps := make([]string, 3)
	for i := 0; i < 3; i++ {
		var b strings.Builder
		if op.Trans[i] != 0 {
			b.WriteString(fracString(op.Trans[i]))
		}
		for j := 0; j < 3; j++ {
			switch {
			case op.Rot[i][j] == 1:
				if b.Len() > 0 {
					b.WriteString("+")
				}
				b.WriteString(letters[j])
			case op.Rot[i][j] == -1:
				b.WriteString("-" + letters[j])
			case op.Rot[i][j] != 0:
				if op.Rot[i][j] > 0 && b.Len() > 0 {
					b.WriteString("+")
				}
				b.WriteString(fmt.Sprintf("%g", op.Rot[i][j]) + letters[j])
			}
		}
		comps[i] = b.String()
	}
	return strings.Join(comps, ",")
}

//fracString writes a translation as the usual n/m fraction when it is
//one, or as a decimal otherwise.
func fracString(x float64) string {
	for _, den := range []int{2, 3, 4, 6} {
		for num := 1; num < den; num++ {
			if x == float64(num)/float64(den) {
				return fmt.Sprintf("%d/%d", num, den)
			}
		}
	}
	return fmt.Sprintf("%g", x)
}

//ParseSymOp parses one symmetry operation in the x,y,z notation used by
//CIF symmetry loops, e.g. "x,1/2+y,-z" or "-x+0.5, y, z". Coefficients
//other than +-1 ("2x") are accepted. The notation is case-insensitive.
func ParseSymOp(s string) (*SymOp, error) {
	comps := strings.Split(strings.ToLower(s), ",")
	if len(comps) != 3 {
		return nil, CError{msg: fmt.Sprintf("Symmetry operation '%s' does not have 3 components", s), deco: []string{"ParseSymOp"}}
	}
	op := new(SymOp)
	for i, comp := range comps {
		if err := parseSymComponent(strings.TrimSpace(comp), op, i); err != nil {
			return nil, errDecorate(err, "ParseSymOp")
		}
	}
	return op, nil
}

//parseSymComponent parses a single component ("1/2+y") into row i of op.
func parseSymComponent(comp string, op *SymOp, i int) error {
	if comp == "" {
		return CError{msg: "Empty symmetry operation component", deco: []string{"parseSymComponent"}}
	}
	sign := 1.0
	coeff := 0.0
	havecoeff := false
	k := 0
	flushNumber := func(end int) error {
		num := comp[k:end]
		var v float64
		var err error
		if slash := strings.Index(num, "/"); slash >= 0 {
			var numer, denom float64
			numer, err = strconv.ParseFloat(num[:slash], 64)
			if err == nil {
				denom, err = strconv.ParseFloat(num[slash+1:], 64)
				if err == nil && denom == 0 {
					err = fmt.Errorf("zero denominator")
				}
				v = numer / denom
			}
		} else {
			v, err = strconv.ParseFloat(num, 64)
		}
		if err != nil {
			return CError{msg: fmt.Sprintf("Can't parse number '%s' in symmetry operation component '%s'", num, comp), deco: []string{"parseSymComponent"}}
		}
		coeff = v
		havecoeff = true
		return nil
	}
	for k < len(comp) {
		c := comp[k]
		switch {
		case c == ' ':
			k++
		case c == '+':
			sign = 1
			k++
		case c == '-':
			sign = -1
			k++
		case c == 'x' || c == 'y' || c == 'z':
			j := int(c - 'x')
			if !havecoeff {
				coeff = 1
			}
			op.Rot[i][j] += sign * coeff
			sign = 1
			coeff = 0
			havecoeff = false
			k++
		case (c >= '0' && c <= '9') || c == '.':
			end := k
			for end < len(comp) && ((comp[end] >= '0' && comp[end] <= '9') || comp[end] == '.' || comp[end] == '/') {
				end++
			}
			if err := flushNumber(end); err != nil {
				return err
			}
			k = end
			//a number immediately followed by a letter is a coefficient,
			//otherwise it is a translation term
			if k >= len(comp) || (comp[k] != 'x' && comp[k] != 'y' && comp[k] != 'z') {
				op.Trans[i] += sign * coeff
				sign = 1
				coeff = 0
				havecoeff = false
			}
		default:
			return CError{msg: fmt.Sprintf("Unexpected character '%c' in symmetry operation component '%s'", c, comp), deco: []string{"parseSymComponent"}}
		}
	}
	if havecoeff {
		return CError{msg: fmt.Sprintf("Dangling coefficient in symmetry operation component '%s'", comp), deco: []string{"parseSymComponent"}}
	}
	return nil
}

//Expand applies every operation to every site and returns the resulting
//full list of sites, with duplicated positions (same element within
//SiteTol, minimum-image) removed. The Multiplicity of each returned site
//is set to the size of its orbit. The input sites are not modified.
func Expand(sites []*Site, ops []*SymOp) []*Site {
	if len(ops) == 0 {
		ops = []*SymOp{Identity()}
	}
	ret := make([]*Site, 0, len(sites)*len(ops))
	for _, s := range sites {
		orbit := make([]*Site, 0, len(ops))
		for _, op := range ops {
			p := op.Apply(s.Frac)
			for j := 0; j < 3; j++ {
				p[j] = wrapFrac(p[j])
			}
			if containsPosition(orbit, p) {
				continue
			}
			ns := s.Copy()
			ns.Frac = p
			orbit = append(orbit, ns)
		}
		for _, ns := range orbit {
			ns.Multiplicity = len(orbit)
		}
		ret = append(ret, orbit...)
	}
	return ret
}

//containsPosition reports whether any site in the list sits at p, within
//SiteTol and under minimum image.
func containsPosition(sites []*Site, p [3]float64) bool {
	for _, s := range sites {
		same := true
		for j := 0; j < 3; j++ {
			d := s.Frac[j] - p[j]
			if d > 0.5 {
				d--
			} else if d < -0.5 {
				d++
			}
			if d > SiteTol || d < -SiteTol {
				same = false
				break
			}
		}
		if same {
			return true
		}
	}
	return false
}
