package main

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/alexshd/arith"
	"github.com/spf13/cobra"
)

// lawSamples spans both int32 boundaries so overflow is exercised.
var lawSamples = []int32{
	math.MinInt32, math.MinInt32 + 1, -65536, -7, -1, 0, 1, 2, 7, 65536,
	math.MaxInt32 - 1, math.MaxInt32,
}

// parseInt32 parses s at the reference width.
func parseInt32(name, s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return 0, fmt.Errorf("%s %q out of int32 range", name, s)
		}
		return 0, fmt.Errorf("%s %q is not an integer", name, s)
	}
	return int32(v), nil
}

func parsePair(args []string) (int32, int32, error) {
	x, err := parseInt32("x", args[0])
	if err != nil {
		return 0, 0, err
	}
	y, err := parseInt32("y", args[1])
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

// ---------------------------------------------------------------------------
// sum
// ---------------------------------------------------------------------------

type sumParams struct {
	x, y    int32
	checked bool
}

// runSum is the extracted, testable body of the sum command.
func runSum(a *app, p sumParams) error {
	var stored int32
	res := &SumResult{
		X:      p.x,
		Y:      p.y,
		Result: arith.SumInto(p.x, p.y, &stored),
	}
	res.Stored = stored

	if p.checked {
		s, err := arith.CheckedSum(p.x, p.y)
		switch {
		case errors.Is(err, arith.ErrOverflow):
			res.Overflow = true
			a.logger.Info("sum overflowed", "x", p.x, "y", p.y, "wrapped", res.Result)
		case err != nil:
			return err
		default:
			res.Checked = &s
		}
	}

	a.logger.Debug("sum", "x", p.x, "y", p.y, "result", res.Result)
	return writeReport(a.stdout, a.format, Report{Command: "sum", Sum: res}, a.styles)
}

func newSumCmd(a *app) *cobra.Command {
	var checked bool

	cmd := &cobra.Command{
		Use:   "sum X Y",
		Short: "Add two int32 values",
		Long: `Add two int32 values. The result wraps on overflow; --checked
also reports whether the true sum fits.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, y, err := parsePair(args)
			if err != nil {
				return err
			}
			return runSum(a, sumParams{x: x, y: y, checked: checked})
		},
	}
	cmd.Flags().BoolVar(&checked, "checked", false, "report overflow of the true sum")
	return cmd
}

// ---------------------------------------------------------------------------
// square
// ---------------------------------------------------------------------------

// runSquare reports the square of x. Negative x is rejected with exit
// status 1 after the report is written.
func runSquare(a *app, x int32) error {
	res := &SquareResult{X: x}

	var sq int32
	if arith.SquareInto(x, &sq) {
		res.OK = true
		res.Square = &sq
	}

	a.logger.Debug("square", "x", x, "ok", res.OK)
	if err := writeReport(a.stdout, a.format, Report{Command: "square", Square: res}, a.styles); err != nil {
		return err
	}
	if !res.OK {
		return &exitError{code: 1}
	}
	return nil
}

func newSquareCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "square X",
		Short: "Square a non-negative int32 value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseInt32("x", args[0])
			if err != nil {
				return err
			}
			return runSquare(a, x)
		},
	}
}

// ---------------------------------------------------------------------------
// add
// ---------------------------------------------------------------------------

func runAdd(a *app, x, y int32) error {
	add := arith.NewAddition(x, y)
	cp := add.Copy()

	a.logger.Debug("addition", "value", add.String())
	return writeReport(a.stdout, a.format, Report{
		Command: "add",
		Addition: &AdditionResult{
			X:       add.X(),
			Y:       add.Y(),
			Sum:     add.Sum(),
			CopySum: cp.Sum(),
		},
	}, a.styles)
}

func newAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add X Y",
		Short: "Build an Addition and its copy",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, y, err := parsePair(args)
			if err != nil {
				return err
			}
			return runAdd(a, x, y)
		},
	}
}

// ---------------------------------------------------------------------------
// names
// ---------------------------------------------------------------------------

// runNames lists the registry, or checks each query against it. Any
// query that is not a member yields exit status 1.
func runNames(a *app, queries []string) error {
	res := &NamesResult{Names: a.names.Names()}

	missing := 0
	for _, q := range queries {
		ok := a.names.Contains(q)
		if !ok {
			missing++
		}
		res.Checks = append(res.Checks, NameCheck{Name: q, Member: ok})
	}

	a.logger.Debug("names", "queries", len(queries), "missing", missing)
	if err := writeReport(a.stdout, a.format, Report{Command: "names", Names: res}, a.styles); err != nil {
		return err
	}
	if missing > 0 {
		return &exitError{code: 1}
	}
	return nil
}

func newNamesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "names [NAME...]",
		Short: "List valid names or check membership",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNames(a, args)
		},
	}
}

// ---------------------------------------------------------------------------
// laws
// ---------------------------------------------------------------------------

// runLaws verifies sum and Addition over lawSamples, registers both and
// requires every law of sum.
func runLaws(a *app) error {
	viaAddition := func(x, y int32) int32 { return arith.NewAddition(x, y).Sum() }

	ops := []struct {
		name string
		op   arith.BinaryOp[int32]
	}{
		{"sum", arith.Sum[int32]},
		{"addition", viaAddition},
	}

	reports := make([]arith.LawReport, 0, len(ops))
	for _, o := range ops {
		rpt, err := arith.VerifyLaws(o.name, o.op, lawSamples)
		if err != nil {
			return err
		}
		a.laws.Register(rpt)
		a.logger.Info("laws verified", "op", o.name, "holds", rpt.Laws, "failures", len(rpt.Failures))
		reports = append(reports, rpt)
	}

	if err := writeReport(a.stdout, a.format, Report{Command: "laws", Laws: reports}, a.styles); err != nil {
		return err
	}

	for _, o := range ops {
		if err := a.laws.Require(o.name, arith.AllLaws...); err != nil {
			return err
		}
	}
	return nil
}

func newLawsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "laws",
		Short: "Verify algebraic laws of sum",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLaws(a)
		},
	}
}

// ---------------------------------------------------------------------------
// finish
// ---------------------------------------------------------------------------

// runFinish hands v to a.exit, which is FinishPositively outside tests.
func runFinish(a *app, v int) error {
	a.logger.Info("finishing", "value", v, "status", arith.ExitStatus(v))
	a.exit(v)
	return nil
}

func newFinishCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "finish V",
		Short: "Exit 0 when V >= 0, 1 otherwise",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseInt32("value", args[0])
			if err != nil {
				return err
			}
			return runFinish(a, int(v))
		},
	}
}

// ---------------------------------------------------------------------------
// schema
// ---------------------------------------------------------------------------

func newSchemaCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema for --format=json output",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(a.stdout, Schema)
			return err
		},
	}
}
