package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

func writeText(w io.Writer, rep report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "SDL version:\t%s\n", rep.Version)
	fmt.Fprintf(tw, "Revision:\t%s\n", rep.Revision)
	fmt.Fprintf(tw, "Render drivers:\t%d\n", len(rep.RenderDrivers))
	for i, d := range rep.RenderDrivers {
		fmt.Fprintf(tw, "  %d\t%s\n", i, d)
	}
	fmt.Fprintf(tw, "Joysticks:\t%d\n", len(rep.Joysticks))
	for _, j := range rep.Joysticks {
		fmt.Fprintf(tw, "  %d\t%s\t%s\n", j.ID, j.Name, j.GUID)
	}
	return tw.Flush()
}

func writeYAML(w io.Writer, rep report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return err
	}
	return enc.Close()
}
