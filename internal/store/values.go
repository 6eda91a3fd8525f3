package store

import (
	"strings"
	"time"
)

// Document values arrive in two shapes: the types the converters wrote
// (string, int, float64, time.Time, []string) when served from memory, and
// the attributevalue round-trip shapes (float64 for every number, RFC3339
// strings for times, []any for lists) when served from DynamoDB. The
// coercions below accept both.

func AsString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func AsFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func AsInt(v any) (int, bool) {
	f, ok := AsFloat(v)
	return int(f), ok
}

func AsTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case string:
		parsed, err := time.Parse(time.RFC3339Nano, t)
		if err != nil {
			return time.Time{}, false
		}
		return parsed, true
	}
	return time.Time{}, false
}

func AsStringSlice(v any) ([]string, bool) {
	switch s := v.(type) {
	case []string:
		return s, true
	case []any:
		out := make([]string, 0, len(s))
		for _, item := range s {
			str, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, str)
		}
		return out, true
	}
	return nil, false
}

// Compare orders two document values, reporting false when the pair is not
// comparable. Times order chronologically, numbers numerically, strings
// lexically.
func Compare(a any, b any) (int, bool) {
	if _, ok := a.(time.Time); ok {
		return compareTimes(a, b)
	}
	if _, ok := b.(time.Time); ok {
		return compareTimes(a, b)
	}
	if af, ok := AsFloat(a); ok {
		bf, bok := AsFloat(b)
		if !bok {
			return 0, false
		}
		switch {
		case af < bf:
			return -1, true
		case af > bf:
			return 1, true
		}
		return 0, true
	}
	as, aok := AsString(a)
	bs, bok := AsString(b)
	if aok && bok {
		return strings.Compare(as, bs), true
	}
	return 0, false
}

func compareTimes(a any, b any) (int, bool) {
	at, aok := AsTime(a)
	bt, bok := AsTime(b)
	if !aok || !bok {
		return 0, false
	}
	switch {
	case at.Before(bt):
		return -1, true
	case at.After(bt):
		return 1, true
	}
	return 0, true
}

func Equal(a any, b any) bool {
	order, ok := Compare(a, b)
	return ok && order == 0
}
