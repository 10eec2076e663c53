package main

import (
	"fmt"
	"os"

	"github.com/tdewolff/argp"
	"github.com/vgc/intersect"
)

type Main struct {
	Output string `short:"o" default:"" desc:"Output SVG file with the segments and their intersections"`
	Path   string `index:"0" desc:"SVG path data restricted to line commands, e.g. 'M0 0L2 2M0 2L2 0'"`
}

func main() {
	root := argp.NewCmd(&Main{}, "Report all points where two or more 2D line segments intersect")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Main) Run() error {
	if cmd.Path == "" {
		return argp.ShowUsage
	}

	polylines, err := intersect.ParsePath(cmd.Path)
	if err != nil {
		return err
	}

	si := intersect.New()
	for _, points := range polylines {
		si.AddPolyline(points)
	}
	si.Compute()

	for _, z := range si.PointIntersections() {
		fmt.Printf("%v:", z.Point)
		for _, c := range z.Contributions {
			fmt.Printf(" seg%d@%g", c.Segment, c.T)
		}
		fmt.Println()
	}

	if cmd.Output != "" {
		f, err := os.Create(cmd.Output)
		if err != nil {
			return err
		}
		if err := intersect.WriteSVG(f, si.Segments(), si.PointIntersections()); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}
	return nil
}
