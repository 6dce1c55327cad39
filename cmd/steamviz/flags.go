package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/lixenwraith/steamviz/selection"
)

// rangeFlag is a "lo:hi" bound pair. An empty side is open
type rangeFlag struct {
	lo, hi float64
	set    bool
}

var _ pflag.Value = (*rangeFlag)(nil)

func newRangeFlag() *rangeFlag {
	return &rangeFlag{lo: math.Inf(-1), hi: math.Inf(1)}
}

func (f *rangeFlag) String() string {
	if !f.set {
		return ""
	}
	return bound(f.lo) + ":" + bound(f.hi)
}

func bound(v float64) string {
	if math.IsInf(v, 0) {
		return ""
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func (f *rangeFlag) Set(s string) error {
	loStr, hiStr, ok := strings.Cut(s, ":")
	if !ok {
		return fmt.Errorf("want lo:hi, got %q", s)
	}
	lo, hi := math.Inf(-1), math.Inf(1)
	var err error
	if loStr = strings.TrimSpace(loStr); loStr != "" {
		if lo, err = strconv.ParseFloat(loStr, 64); err != nil {
			return fmt.Errorf("lower bound: %w", err)
		}
	}
	if hiStr = strings.TrimSpace(hiStr); hiStr != "" {
		if hi, err = strconv.ParseFloat(hiStr, 64); err != nil {
			return fmt.Errorf("upper bound: %w", err)
		}
	}
	if math.IsNaN(lo) || math.IsNaN(hi) {
		return fmt.Errorf("NaN bound in %q", s)
	}
	f.lo, f.hi, f.set = lo, hi, true
	return nil
}

func (f *rangeFlag) Type() string {
	return "lo:hi"
}

// selectionFlags binds --price and --rate onto a command
type selectionFlags struct {
	price *rangeFlag
	rate  *rangeFlag
}

func addSelectionFlags(cmd *cobra.Command) *selectionFlags {
	sf := &selectionFlags{price: newRangeFlag(), rate: newRangeFlag()}
	cmd.Flags().Var(sf.price, "price", "Price range in USD, e.g. 0:20 or 40:")
	cmd.Flags().Var(sf.rate, "rate", "Positive rate range in 0..1, e.g. 0.8:")
	return sf
}

// rect returns nil when neither flag was given
func (sf *selectionFlags) rect() *selection.Rect {
	if !sf.price.set && !sf.rate.set {
		return nil
	}
	return &selection.Rect{
		PriceMin: sf.price.lo,
		PriceMax: sf.price.hi,
		RateMin:  sf.rate.lo,
		RateMax:  sf.rate.hi,
	}
}
