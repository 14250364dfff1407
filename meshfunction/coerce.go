/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package meshfunction

import (
	"fmt"
	"math"
	"strconv"

	"github.com/suparena/meshstore/errors"
)

const (
	twoPow53 = 1 << 53
	twoPow63 = 9223372036854775808.0
	twoPow64 = 18446744073709551616.0
)

type number struct {
	signed   int64
	unsigned uint64
	float    float64
	kind     byte // 'i', 'u' or 'f'
}

func classify(v any) (number, bool) {
	switch n := v.(type) {
	case int:
		return number{signed: int64(n), kind: 'i'}, true
	case int8:
		return number{signed: int64(n), kind: 'i'}, true
	case int16:
		return number{signed: int64(n), kind: 'i'}, true
	case int32:
		return number{signed: int64(n), kind: 'i'}, true
	case int64:
		return number{signed: n, kind: 'i'}, true
	case uint:
		return number{unsigned: uint64(n), kind: 'u'}, true
	case uint8:
		return number{unsigned: uint64(n), kind: 'u'}, true
	case uint16:
		return number{unsigned: uint64(n), kind: 'u'}, true
	case uint32:
		return number{unsigned: uint64(n), kind: 'u'}, true
	case uint64:
		return number{unsigned: n, kind: 'u'}, true
	case uintptr:
		return number{unsigned: uint64(n), kind: 'u'}, true
	case float32:
		return number{float: float64(n), kind: 'f'}, true
	case float64:
		return number{float: n, kind: 'f'}, true
	}
	return number{}, false
}

// Coerce converts v to T without losing information. Bool targets accept
// only bool; numeric targets accept any Go integer or float whose value is
// representable in T.
func Coerce[T Scalar](v any) (T, error) {
	var zero T
	if t, ok := v.(T); ok {
		return t, nil
	}

	target := ValueTypeOf[T]()
	n, ok := classify(v)
	if !ok || target == Bool {
		return zero, mismatch(v, target)
	}

	var out any
	switch target {
	case SizeT:
		u, ok := n.toUint64()
		if !ok {
			return zero, mismatch(v, target)
		}
		out = u
	case Int:
		i, ok := n.toInt()
		if !ok {
			return zero, mismatch(v, target)
		}
		out = i
	default:
		f, ok := n.toFloat64()
		if !ok {
			return zero, mismatch(v, target)
		}
		out = f
	}
	return out.(T), nil
}

func (n number) toUint64() (uint64, bool) {
	switch n.kind {
	case 'i':
		return uint64(n.signed), n.signed >= 0
	case 'u':
		return n.unsigned, true
	default:
		f := n.float
		if f != math.Trunc(f) || f < 0 || f >= twoPow64 {
			return 0, false
		}
		return uint64(f), true
	}
}

func (n number) toInt() (int, bool) {
	switch n.kind {
	case 'i':
		return int(n.signed), n.signed >= math.MinInt && n.signed <= math.MaxInt
	case 'u':
		return int(n.unsigned), n.unsigned <= math.MaxInt
	default:
		f := n.float
		if f != math.Trunc(f) || f < float64(math.MinInt) || f >= -float64(math.MinInt) {
			return 0, false
		}
		return int(f), true
	}
}

func (n number) toFloat64() (float64, bool) {
	switch n.kind {
	case 'i':
		if n.signed >= -twoPow53 && n.signed <= twoPow53 {
			return float64(n.signed), true
		}
		f := float64(n.signed)
		return f, f < twoPow63 && int64(f) == n.signed
	case 'u':
		if n.unsigned <= twoPow53 {
			return float64(n.unsigned), true
		}
		f := float64(n.unsigned)
		return f, f < twoPow64 && uint64(f) == n.unsigned
	default:
		return n.float, true
	}
}

func mismatch(v any, target ValueType) error {
	return errors.NewValidationError("value", fmt.Sprintf("%v (%T) is not assignable to %s", v, v, target))
}

// formatScalar renders a value in the text form used by snapshots.
func formatScalar[T Scalar](v T) string {
	switch x := any(v).(type) {
	case bool:
		return strconv.FormatBool(x)
	case uint64:
		return strconv.FormatUint(x, 10)
	case int:
		return strconv.Itoa(x)
	default:
		return strconv.FormatFloat(any(v).(float64), 'g', -1, 64)
	}
}

// parseScalar is the inverse of formatScalar.
func parseScalar[T Scalar](s string) (T, error) {
	var zero T
	var (
		out any
		err error
	)
	switch ValueTypeOf[T]() {
	case Bool:
		out, err = strconv.ParseBool(s)
	case SizeT:
		out, err = strconv.ParseUint(s, 10, 64)
	case Int:
		out, err = strconv.Atoi(s)
	default:
		out, err = strconv.ParseFloat(s, 64)
	}
	if err != nil {
		return zero, errors.NewValidationError("value", fmt.Sprintf("cannot parse %q as %s", s, ValueTypeOf[T]()))
	}
	return out.(T), nil
}
