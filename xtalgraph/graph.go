package xtalgraph

import (
	"fmt"

	xtal "github.com/medgbb/structural-descriptors-repo"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/topo"
)

//Poly is a node of the polyhedral network: one cation-centered
//coordination polyhedron of the cell.
type Poly struct {
	*xtal.Polyhedron
	IDFunc func(*Poly) int64
}

func (P *Poly) ID() int64 {
	if P.IDFunc == nil {
		return int64(P.CenterIndex)
	}
	return P.IDFunc(P)
}

//Link is an edge of the polyhedral network: a sharing relation between
//two polyhedra. Corner, Edge and Face count the sharing instances of
//each class between the two polyhedra, periodic images included.
type Link struct {
	P1, P2             *Poly
	Corner, Edge, Face int
	Weightfunc         func(*Link) float64
}

//Weight defaults to the total number of shared-ion contacts: one per
//corner instance, two per edge, three per face.
func (L *Link) Weight() float64 {
	if L.Weightfunc == nil {
		return float64(L.Corner + 2*L.Edge + 3*L.Face)
	}
	return L.Weightfunc(L)
}

func (L *Link) From() graph.Node {
	return L.P1
}

func (L *Link) To() graph.Node {
	return L.P2
}

// sharing is not directional, so the edge is just switched in place
func (L *Link) ReversedEdge() graph.Edge {
	L.P1, L.P2 = L.P2, L.P1
	return L
}

//Polys implements gonum's graph.Nodes iterator.
type Polys struct {
	Polys []*Poly
	curr  int
}

func (P *Polys) Len() int {
	return len(P.Polys)
}
func (P *Polys) Reset() {
	P.curr = -1
}
func (P *Polys) Next() bool {
	if P.curr+1 >= len(P.Polys) {
		return false
	}
	P.curr++
	return true
}
func (P *Polys) Node() graph.Node {
	return P.Polys[P.curr]
}

//Network is the polyhedral connectivity network of a structure. It
//implements gonum's graph.Graph, graph.Undirected and graph.Weighted
//interfaces, so the gonum graph machinery (paths, components, and so
//on) works on it directly.
type Network struct {
	polys []*Poly
	links []*Link
}

func (N *Network) Node(id int64) graph.Node {
	for _, p := range N.polys {
		if p.ID() == id {
			return p
		}
	}
	return nil
}

func (N *Network) Nodes() graph.Nodes {
	if len(N.polys) == 0 {
		panic("Network has no polyhedra")
	}
	return &Polys{Polys: N.polys, curr: -1}
}

func (N *Network) From(id int64) graph.Nodes {
	ret := make([]*Poly, 0)
	for _, l := range N.links {
		//undirected
		if l.From().ID() == id {
			ret = append(ret, l.P2)
		} else if l.To().ID() == id {
			ret = append(ret, l.P1)
		}
	}
	return &Polys{Polys: ret, curr: -1}
}

func (N *Network) HasEdgeBetween(id1, id2 int64) bool {
	return N.Edge(id1, id2) != nil
}

func (N *Network) Edge(id1, id2 int64) graph.Edge {
	for _, l := range N.links {
		//the network is always undirected
		if (l.From().ID() == id1 && l.To().ID() == id2) || (l.From().ID() == id2 && l.To().ID() == id1) {
			return l
		}
	}
	return nil
}

func (N *Network) EdgeBetween(id1, id2 int64) graph.Edge {
	return N.Edge(id1, id2)
}

func (N *Network) WeightedEdge(id1, id2 int64) graph.WeightedEdge {
	l := N.Edge(id1, id2)
	if l == nil {
		return nil
	}
	return l.(*Link)
}

func (N *Network) Weight(id1, id2 int64) (w float64, ok bool) {
	if id1 == id2 {
		return 0.0, true
	}
	l := N.Edge(id1, id2)
	if l == nil {
		return -1, false
	}
	return l.(*Link).Weight(), true
}

//Links returns the sharing relations of the network.
func (N *Network) Links() []*Link {
	return N.links
}

//Components returns the connected components of the network, as slices
//of polyhedra. A single component means all cation polyhedra of the
//cell belong to one connected framework.
func (N *Network) Components() [][]*Poly {
	comps := topo.ConnectedComponents(N)
	ret := make([][]*Poly, 0, len(comps))
	for _, comp := range comps {
		polys := make([]*Poly, 0, len(comp))
		for _, n := range comp {
			polys = append(polys, n.(*Poly))
		}
		ret = append(ret, polys)
	}
	return ret
}

//FromStructure builds the polyhedral network of a structure: one node
//per cation polyhedron of the cell, one link per pair of polyhedra that
//share at least one peripheral ion, counting sharing against all
//periodic images. Sharing of a polyhedron with its own images does not
//produce a link (gonum graphs have no self edges); it is still visible
//through xtal.ConnectivityMatrix.
func FromStructure(S *xtal.Structure, radius float64) (*Network, error) {
	polys, err := xtal.CationPolyhedra(S, radius)
	if err != nil {
		return nil, err
	}
	m, err := xtal.ConnectivityMatrix(S, radius)
	if err != nil {
		return nil, err
	}
	N := new(Network)
	byIndex := map[int]*Poly{}
	for _, p := range polys {
		node := &Poly{Polyhedron: p}
		byIndex[p.CenterIndex] = node
		N.polys = append(N.polys, node)
	}
	for i, row := range m {
		for j, counts := range row {
			if j <= i { //one link per pair
				continue
			}
			if counts[0] == 0 && counts[1] == 0 && counts[2] == 0 {
				continue
			}
			p1, ok1 := byIndex[i]
			p2, ok2 := byIndex[j]
			if !ok1 || !ok2 {
				panic(fmt.Sprintf("FromStructure: connectivity matrix names a polyhedron (%d,%d) that was not built", i, j))
			}
			N.links = append(N.links, &Link{P1: p1, P2: p2, Corner: counts[0], Edge: counts[1], Face: counts[2]})
		}
	}
	return N, nil
}
