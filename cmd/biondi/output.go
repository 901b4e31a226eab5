package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/philipparndt/biondi/internal/measurement"
	"github.com/philipparndt/biondi/internal/store"
	"github.com/philipparndt/biondi/pkg/analysis"
	"gopkg.in/yaml.v3"
)

// report is the machine-readable form of a body and its measurements
type report struct {
	Record  int64    `json:"record" yaml:"record"`
	GridID  string   `json:"grid_id" yaml:"grid_id"`
	X       int      `json:"x" yaml:"x"`
	Y       int      `json:"y" yaml:"y"`
	Kind    string   `json:"kind,omitempty" yaml:"kind,omitempty"`
	Angle   *float64 `json:"angle,omitempty" yaml:"angle,omitempty"`
	Log     *float64 `json:"log,omitempty" yaml:"log,omitempty"`
	DProng1 *float64 `json:"dprong1,omitempty" yaml:"dprong1,omitempty"`
	LProng2 *float64 `json:"lprong2,omitempty" yaml:"lprong2,omitempty"`
}

func newReport(id int64, loc store.Location, fields store.Fields) report {
	r := report{
		Record:  id,
		GridID:  loc.GridID,
		X:       loc.X,
		Y:       loc.Y,
		Angle:   fields.Angle,
		Log:     fields.Log,
		DProng1: fields.DProng1,
		LProng2: fields.LProng2,
	}
	switch {
	case fields.Angle != nil:
		r.Kind = measurement.KindAngler.String()
	case fields.Log != nil:
		r.Kind = measurement.KindRinger.String()
	}
	return r
}

func writeReport(w io.Writer, format string, r report, precision int) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "text", "":
		writeText(w, r, precision)
		return nil
	}
	return fmt.Errorf("unknown output format %q (use text, yaml or json)", format)
}

func writeText(w io.Writer, r report, precision int) {
	fmt.Fprintf(w, "Body %d\n", r.Record)
	fmt.Fprintf(w, "  Grid: %s (%d, %d)\n", r.GridID, r.X, r.Y)

	switch r.Kind {
	case "angler":
		fmt.Fprintln(w, "\nAngler:")
		fmt.Fprintf(w, "  Angle: %s\n", analysis.FormatAngle(*r.Angle, precision))
		fmt.Fprintf(w, "  Prong 1: %s\n", formatOptional(r.DProng1, precision))
		fmt.Fprintf(w, "  Prong 2: %s\n", formatOptional(r.LProng2, precision))
	case "ringer":
		fmt.Fprintln(w, "\nRinger:")
		fmt.Fprintf(w, "  Distance: %s\n", formatOptional(r.DProng1, precision))
		fmt.Fprintf(w, "  Length: %s\n", formatOptional(r.LProng2, precision))
		fmt.Fprintf(w, "  log10(length/distance): %.*f\n", precision, *r.Log)
	default:
		fmt.Fprintln(w, "\nNot measured")
	}
}

func formatOptional(v *float64, precision int) string {
	if v == nil {
		return "-"
	}
	return analysis.FormatMeasurement(*v, precision, "")
}
