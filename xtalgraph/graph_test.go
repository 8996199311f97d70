package xtalgraph

import (
	"testing"

	xtal "github.com/medgbb/structural-descriptors-repo"
	"github.com/medgbb/structural-descriptors-repo/cif"
)

//In rock salt every pair of distinct Na sites edge-shares through 4
//periodic images, so the network is the complete graph on the 4 cation
//sites, with every link of weight 2*4=8.
func TestRockSaltNetwork(Te *testing.T) {
	S, err := cif.StructureRead("../test/NaCl.cif")
	if err != nil {
		Te.Fatal(err)
	}
	N, err := FromStructure(S, xtal.DefaultRadius)
	if err != nil {
		Te.Fatal(err)
	}
	cations := S.CationIndexes()
	if N.Nodes().Len() != len(cations) {
		Te.Fatalf("Network should have %d nodes, got %d", len(cations), N.Nodes().Len())
	}
	if nl := len(N.Links()); nl != 6 {
		Te.Errorf("Complete graph on 4 nodes should have 6 links, got %d", nl)
	}
	for _, l := range N.Links() {
		if l.Corner != 0 || l.Edge != 4 || l.Face != 0 {
			Te.Errorf("Wrong sharing counts in link %d-%d: %d %d %d", l.P1.ID(), l.P2.ID(), l.Corner, l.Edge, l.Face)
		}
		if l.Weight() != 8 {
			Te.Errorf("Wrong link weight: %f", l.Weight())
		}
	}
	id1 := int64(cations[0])
	id2 := int64(cations[1])
	if !N.HasEdgeBetween(id1, id2) {
		Te.Error("Cation sites should be linked")
	}
	if N.Node(id1) == nil {
		Te.Error("Node lookup by ID failed")
	}
	if w, ok := N.Weight(id1, id2); !ok || w != 8 {
		Te.Errorf("Wrong weight between linked nodes: %f %v", w, ok)
	}
	if w, ok := N.Weight(id1, id1); !ok || w != 0 {
		Te.Errorf("Self weight should be 0: %f %v", w, ok)
	}
	if N.WeightedEdge(id1, id2) == nil {
		Te.Error("WeightedEdge should return the link")
	}
	comps := N.Components()
	if len(comps) != 1 {
		Te.Fatalf("Rock salt polyhedra should form a single framework, got %d components", len(comps))
	}
	if len(comps[0]) != len(cations) {
		Te.Errorf("The framework should span all %d polyhedra, got %d", len(cations), len(comps[0]))
	}
}

func TestCustomWeight(Te *testing.T) {
	l := &Link{Corner: 1, Edge: 2, Face: 3}
	if l.Weight() != 1+2*2+3*3 {
		Te.Errorf("Wrong default weight: %f", l.Weight())
	}
	l.Weightfunc = func(x *Link) float64 { return float64(x.Face) }
	if l.Weight() != 3 {
		Te.Errorf("Wrong custom weight: %f", l.Weight())
	}
}
