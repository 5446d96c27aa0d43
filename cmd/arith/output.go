package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/alexshd/arith"
	"gopkg.in/yaml.v3"
)

// reportVersion is the version of the JSON/YAML report layout.
const reportVersion = "1.0.0"

// Report is the top-level structured output of every command.
// Exactly one of the result fields is set.
type Report struct {
	Version  string            `json:"version" yaml:"version"`
	Command  string            `json:"command" yaml:"command"`
	Sum      *SumResult        `json:"sum,omitempty" yaml:"sum,omitempty"`
	Square   *SquareResult     `json:"square,omitempty" yaml:"square,omitempty"`
	Addition *AdditionResult   `json:"addition,omitempty" yaml:"addition,omitempty"`
	Names    *NamesResult      `json:"names,omitempty" yaml:"names,omitempty"`
	Laws     []arith.LawReport `json:"laws,omitempty" yaml:"laws,omitempty"`
}

// SumResult carries both result channels of SumInto.
type SumResult struct {
	X        int32  `json:"x" yaml:"x"`
	Y        int32  `json:"y" yaml:"y"`
	Result   int32  `json:"result" yaml:"result"`
	Stored   int32  `json:"stored" yaml:"stored"`
	Checked  *int32 `json:"checked,omitempty" yaml:"checked,omitempty"`
	Overflow bool   `json:"overflow" yaml:"overflow"`
}

// SquareResult omits Square when the input was rejected.
type SquareResult struct {
	X      int32  `json:"x" yaml:"x"`
	OK     bool   `json:"ok" yaml:"ok"`
	Square *int32 `json:"square,omitempty" yaml:"square,omitempty"`
}

// AdditionResult shows an Addition and its copy.
type AdditionResult struct {
	X       int32 `json:"x" yaml:"x"`
	Y       int32 `json:"y" yaml:"y"`
	Sum     int32 `json:"sum" yaml:"sum"`
	CopySum int32 `json:"copy_sum" yaml:"copy_sum"`
}

// NamesResult lists the registry and any membership checks.
type NamesResult struct {
	Names  []string    `json:"names" yaml:"names"`
	Checks []NameCheck `json:"checks,omitempty" yaml:"checks,omitempty"`
}

// NameCheck is one membership query.
type NameCheck struct {
	Name   string `json:"name" yaml:"name"`
	Member bool   `json:"member" yaml:"member"`
}

// writeReport renders rpt to w in format.
func writeReport(w io.Writer, format string, rpt Report, s Styles) error {
	rpt.Version = reportVersion

	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rpt)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rpt); err != nil {
			return err
		}
		return enc.Close()
	default:
		return writeText(w, rpt, s)
	}
}

func writeText(w io.Writer, rpt Report, s Styles) error {
	var err error
	switch {
	case rpt.Sum != nil:
		err = writeSumText(w, rpt.Sum, s)
	case rpt.Square != nil:
		err = writeSquareText(w, rpt.Square, s)
	case rpt.Addition != nil:
		a := rpt.Addition
		_, err = fmt.Fprintf(w, "%s %d + %d = %d\n%s %d + %d = %d\n",
			s.Label.Render("addition:"), a.X, a.Y, a.Sum,
			s.Label.Render("copy:"), a.X, a.Y, a.CopySum)
	case rpt.Names != nil:
		err = writeNamesText(w, rpt.Names, s)
	case rpt.Laws != nil:
		err = writeLawsText(w, rpt.Laws, s)
	}
	return err
}

func writeSumText(w io.Writer, r *SumResult, s Styles) error {
	if _, err := fmt.Fprintf(w, "%s %d\n%s %d\n",
		s.Label.Render(fmt.Sprintf("sum(%d, %d) =", r.X, r.Y)), r.Result,
		s.Label.Render("stored ="), r.Stored); err != nil {
		return err
	}
	switch {
	case r.Overflow:
		_, err := fmt.Fprintf(w, "%s %s\n", s.Fail.Render("checked:"), "overflow")
		return err
	case r.Checked != nil:
		_, err := fmt.Fprintf(w, "%s %d\n", s.Pass.Render("checked:"), *r.Checked)
		return err
	}
	return nil
}

func writeSquareText(w io.Writer, r *SquareResult, s Styles) error {
	if !r.OK {
		_, err := fmt.Fprintf(w, "%s square(%d) rejected: negative input\n", s.Verdict(false), r.X)
		return err
	}
	_, err := fmt.Fprintf(w, "%s square(%d) = %d\n", s.Verdict(true), r.X, *r.Square)
	return err
}

func writeNamesText(w io.Writer, r *NamesResult, s Styles) error {
	if len(r.Checks) == 0 {
		fmt.Fprintln(w, s.Header.Render("Valid names"))
		for _, n := range r.Names {
			fmt.Fprintf(w, "  %s\n", n)
		}
		return nil
	}
	for _, c := range r.Checks {
		state := s.Muted.Render("not a valid name")
		if c.Member {
			state = s.Muted.Render("valid")
		}
		if _, err := fmt.Fprintf(w, "%s %s %s\n", s.Verdict(c.Member), c.Name, state); err != nil {
			return err
		}
	}
	return nil
}

func writeLawsText(w io.Writer, reports []arith.LawReport, s Styles) error {
	for i, r := range reports {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, s.Header.Render(fmt.Sprintf("=== %s ===", r.Op)))
		fmt.Fprintln(w, s.Muted.Render(fmt.Sprintf("    %d samples", r.Samples)))
		for _, law := range arith.AllLaws {
			fmt.Fprintf(w, "  %s %s\n", s.Verdict(r.Holds(law)), law)
		}
		for _, ce := range r.Failures {
			fmt.Fprintf(w, "    %s operands %v: %d != %d\n",
				s.Fail.Render(string(ce.Law)), ce.Operands, ce.Left, ce.Right)
		}
	}
	return nil
}
