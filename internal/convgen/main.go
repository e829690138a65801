// Command convgen generates the pairwise unit-conversion helpers in
// unit/convert_gen.go. For every dimension with more than one unit it emits
// one conversion function per ordered pair of sibling units.
//
// Units are sorted alphabetically before pairing, so the output is symmetric
// and independent of declaration order: A->B and B->A always both exist.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"sort"
	"text/template"
)

type unitDef struct {
	Type   string // marker type name, e.g. "Meter"
	Plural string // constructor/function name part, e.g. "Meters"
	Lower  string // prose name, e.g. "metres"
}

type dimDef struct {
	Name    string // dimension type name, e.g. "Length"
	Article string // "a length", "an angle"
	Units   []unitDef
}

// dims mirrors the concrete units declared in unit/units.go. Unitless is
// omitted: it is the only unit of its dimension.
var dims = []dimDef{
	{
		Name: "Length", Article: "a length",
		Units: []unitDef{
			{"Meter", "Meters", "metres"},
			{"Kilometer", "Kilometers", "kilometres"},
		},
	},
	{
		Name: "Time", Article: "a time",
		Units: []unitDef{
			{"Second", "Seconds", "seconds"},
			{"Minute", "Minutes", "minutes"},
			{"Hour", "Hours", "hours"},
			{"Day", "Days", "days"},
		},
	},
	{
		Name: "Angle", Article: "an angle",
		Units: []unitDef{
			{"Radian", "Radians", "radians"},
			{"Degree", "Degrees", "degrees"},
			{"Arcminute", "Arcminutes", "arcminutes"},
			{"Arcsecond", "Arcseconds", "arcseconds"},
		},
	},
	{
		Name: "Mass", Article: "a mass",
		Units: []unitDef{
			{"Kilogram", "Kilograms", "kilograms"},
			{"Gram", "Grams", "grams"},
		},
	},
	{
		Name: "Power", Article: "a power",
		Units: []unitDef{
			{"Watt", "Watts", "watts"},
			{"Kilowatt", "Kilowatts", "kilowatts"},
		},
	},
}

type pair struct {
	Dim     string
	Article string
	From    unitDef
	To      unitDef
}

const fileTemplate = `// Code generated by internal/convgen. DO NOT EDIT.

package unit

// Pairwise conversions between sibling units of each dimension. Every pair is
// emitted in both directions; the two functions are inverses up to
// floating-point rounding.
{{range .Dims}}
// {{.Name}}
{{range .Pairs}}
// {{.From.Plural}}To{{.To.Plural}} converts {{.Article}} from {{.From.Lower}} to {{.To.Lower}}.
func {{.From.Plural}}To{{.To.Plural}}(q Quantity[{{.Dim}}, {{.From.Type}}]) Quantity[{{.Dim}}, {{.To.Type}}] {
	return To[{{.To.Type}}](q)
}
{{end}}{{end}}`

type dimPairs struct {
	Name  string
	Pairs []pair
}

func main() {
	out := flag.String("out", "convert_gen.go", "output file path")
	flag.Parse()

	var data struct{ Dims []dimPairs }
	for _, d := range dims {
		units := append([]unitDef(nil), d.Units...)
		sort.Slice(units, func(i, j int) bool { return units[i].Type < units[j].Type })

		dp := dimPairs{Name: d.Name}
		for _, from := range units {
			for _, to := range units {
				if from.Type == to.Type {
					continue
				}
				dp.Pairs = append(dp.Pairs, pair{Dim: d.Name, Article: d.Article, From: from, To: to})
			}
		}
		data.Dims = append(data.Dims, dp)
	}

	tmpl := template.Must(template.New("convert_gen").Parse(fileTemplate))
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		log.Fatalf("convgen: execute template: %v", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalf("convgen: format output: %v", err)
	}

	if err := os.WriteFile(*out, src, 0o644); err != nil {
		log.Fatalf("convgen: write %s: %v", *out, err)
	}
	fmt.Printf("convgen: wrote %s\n", *out)
}
