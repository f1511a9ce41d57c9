package jsom

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
)

// number is the common representation numbers are compared and coerced
// through.
type number struct {
	i     int64
	f     float64
	isInt bool
}

func numberOf(v any) (number, bool) {
	switch x := v.(type) {
	case int:
		return intNumber(int64(x)), true
	case int8:
		return intNumber(int64(x)), true
	case int16:
		return intNumber(int64(x)), true
	case int32:
		return intNumber(int64(x)), true
	case int64:
		return intNumber(x), true
	case uint:
		return uintNumber(uint64(x)), true
	case uint8:
		return intNumber(int64(x)), true
	case uint16:
		return intNumber(int64(x)), true
	case uint32:
		return intNumber(int64(x)), true
	case uint64:
		return uintNumber(x), true
	case float32:
		return number{f: float64(x)}, true
	case float64:
		return number{f: x}, true
	case json.Number:
		return parseNumber(string(x))
	}
	return number{}, false
}

// parseNumber reads a decimal literal. Literals beyond float64 range keep
// their sign as an infinity.
func parseNumber(s string) (number, bool) {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return intNumber(i), true
	}
	if u, err := strconv.ParseUint(s, 10, 64); err == nil {
		return uintNumber(u), true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return number{}, false
	}
	return number{f: f}, true
}

func intNumber(i int64) number {
	return number{i: i, f: float64(i), isInt: true}
}

func uintNumber(u uint64) number {
	if u > math.MaxInt64 {
		return number{f: float64(u)}
	}
	return intNumber(int64(u))
}

func (n number) int64() (int64, bool) {
	if n.isInt {
		return n.i, true
	}
	if n.f != math.Trunc(n.f) || n.f < math.MinInt64 || n.f >= math.MaxInt64 {
		return 0, false
	}
	return int64(n.f), true
}

func compareNumbers(a, b number) int {
	if a.isInt && b.isInt {
		switch {
		case a.i < b.i:
			return -1
		case a.i > b.i:
			return 1
		}
		return 0
	}
	switch {
	case a.f < b.f:
		return -1
	case a.f > b.f:
		return 1
	}
	return 0
}
