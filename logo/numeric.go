//
// Copyright 2024 The Goglyph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package logo

import (
	"math"
	"strconv"
	"strings"
)

// number is the result of coercing a word argument through the
// integer-then-float parse contract named in spec.md §4.6: int is
// tried first, falling back to float. Keeping the distinction lets
// arithmetic preserve Python-style int/float type promotion (int op
// int stays int; anything touching a float promotes to float), which
// in turn keeps rendered results ("14" vs "4.0") matching across
// equivalent expressions.
type number struct {
	isInt bool
	i     int64
	f     float64
}

func (n number) asFloat() float64 {
	if n.isInt {
		return float64(n.i)
	}
	return n.f
}

// toNum coerces a word to a number, trying an integer parse before
// falling back to float, matching original_source/logo_primitives.py's
// to_num.
func toNum(s string) (number, error) {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return number{isInt: true, i: i}, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return number{}, newError(s + " is not a number")
	}
	return number{f: f}, nil
}

// formatNumber renders n the way Python's str() renders an int or
// float: ints print bare, floats always carry a decimal point (or
// exponent) even when integral, e.g. 4.0 not 4.
func formatNumber(n number) string {
	if n.isInt {
		return strconv.FormatInt(n.i, 10)
	}
	format := byte('f')
	if a := math.Abs(n.f); a != 0 && (a < 1e-4 || a >= 1e16) {
		format = 'g'
	}
	s := strconv.FormatFloat(n.f, format, -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// toBool coerces a word to a boolean, accepting only the literals
// "True" and "False" (spec.md §4.6: "boolean primitives coerce through
// the literals True/False only").
func toBool(s string) (bool, error) {
	switch s {
	case "True":
		return true, nil
	case "False":
		return false, nil
	default:
		return false, newError(s + " is not a boolean value")
	}
}

// numericBinary applies an int-preserving binary operator to two word
// arguments, coercing each through toNum first.
func numericBinary(x, y string, intOp func(a, b int64) int64, floatOp func(a, b float64) float64) (string, error) {
	nx, err := toNum(x)
	if err != nil {
		return "", err
	}
	ny, err := toNum(y)
	if err != nil {
		return "", err
	}
	if nx.isInt && ny.isInt {
		return formatNumber(number{isInt: true, i: intOp(nx.i, ny.i)}), nil
	}
	return formatNumber(number{f: floatOp(nx.asFloat(), ny.asFloat())}), nil
}

// numericDivide always yields a float result, mirroring Python 3's
// true division used by the original's "div"/"quotient".
func numericDivide(x, y string) (string, error) {
	nx, err := toNum(x)
	if err != nil {
		return "", err
	}
	ny, err := toNum(y)
	if err != nil {
		return "", err
	}
	return formatNumber(number{f: nx.asFloat() / ny.asFloat()}), nil
}

// numericCompare applies a float comparison to two word arguments.
func numericCompare(x, y string, cmp func(a, b float64) bool) (bool, error) {
	nx, err := toNum(x)
	if err != nil {
		return false, err
	}
	ny, err := toNum(y)
	if err != nil {
		return false, err
	}
	return cmp(nx.asFloat(), ny.asFloat()), nil
}
