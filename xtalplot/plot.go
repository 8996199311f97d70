package xtalplot

import (
	"fmt"
	"sort"

	xtal "github.com/medgbb/structural-descriptors-repo"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//BondLengthHistogram plots a histogram of the cation-anion bond lengths
//of all coordination polyhedra in the structure and saves it as
//plotname.png.
func BondLengthHistogram(S *xtal.Structure, radius float64, bins int, title, plotname string) error {
	polys, err := xtal.CationPolyhedra(S, radius)
	if err != nil {
		return err
	}
	var lengths plotter.Values
	for _, p := range polys {
		lengths = append(lengths, p.PeripheralDistances()...)
	}
	if len(lengths) == 0 {
		return fmt.Errorf("xtalplot: no cation-anion bonds within %4.2f A", radius)
	}
	p := plot.New()
	p.Title.Text = title
	p.Title.Padding = 3 * vg.Millimeter
	p.X.Label.Text = "Bond length (A)"
	p.Y.Label.Text = "Counts"
	h, err := plotter.NewHist(lengths, bins)
	if err != nil {
		return err
	}
	p.Add(h)
	return p.Save(5*vg.Inch, 5*vg.Inch, plotname+".png")
}

//CoordNumBars plots the given per-species coordination numbers (as
//returned by AvgECoN or AvgOKeeffeCN) as a bar chart and saves it as
//plotname.png. Species go on the X axis in alphabetical order.
func CoordNumBars(cns map[string]float64, title, plotname string) error {
	if len(cns) == 0 {
		return fmt.Errorf("xtalplot: given no coordination numbers")
	}
	species := make([]string, 0, len(cns))
	for s := range cns {
		species = append(species, s)
	}
	sort.Strings(species)
	values := make(plotter.Values, 0, len(species))
	for _, s := range species {
		values = append(values, cns[s])
	}
	p := plot.New()
	p.Title.Text = title
	p.Title.Padding = 3 * vg.Millimeter
	p.Y.Label.Text = "Coordination number"
	bars, err := plotter.NewBarChart(values, vg.Points(30))
	if err != nil {
		return err
	}
	p.Add(bars)
	p.NominalX(species...)
	return p.Save(5*vg.Inch, 5*vg.Inch, plotname+".png")
}
