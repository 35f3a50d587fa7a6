// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package keys

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// codec converts between raw store values and the Go value of one ValueType.
type codec struct {
	decode func(raw any) (any, bool)
	encode func(v any) (string, bool)
}

// codecs is the conversion table. decode accepts the text produced by
// property, XML and environment stores and the native values produced by
// YAML, TOML and JSON decoders.
var codecs = map[ValueType]codec{
	TypeString: {
		decode: decodeString,
		encode: func(v any) (string, bool) {
			s, ok := v.(string)
			return s, ok
		},
	},
	TypeInteger: {
		decode: func(raw any) (any, bool) {
			n, ok := decodeInt(raw, 32)
			return int(n), ok
		},
		encode: func(v any) (string, bool) {
			n, ok := v.(int)
			if !ok || n < math.MinInt32 || n > math.MaxInt32 {
				return "", false
			}
			return strconv.Itoa(n), true
		},
	},
	TypeLong: {
		decode: func(raw any) (any, bool) {
			return decodeInt(raw, 64)
		},
		encode: func(v any) (string, bool) {
			n, ok := v.(int64)
			return strconv.FormatInt(n, 10), ok
		},
	},
	TypeDouble: {
		decode: decodeFloat,
		encode: func(v any) (string, bool) {
			f, ok := v.(float64)
			return strconv.FormatFloat(f, 'g', -1, 64), ok
		},
	},
	TypeBoolean: {
		decode: decodeBool,
		encode: func(v any) (string, bool) {
			b, ok := v.(bool)
			return strconv.FormatBool(b), ok
		},
	},
}

// Coerce converts raw into the Go value of vt. The error wraps
// ErrTypeMismatch and is never replaced by a default.
func Coerce(vt ValueType, raw any) (any, error) {
	c, ok := codecs[vt]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported value type %d", ErrTypeMismatch, vt)
	}
	v, ok := c.decode(raw)
	if !ok {
		return nil, fmt.Errorf("%w: cannot convert %#v to %s", ErrTypeMismatch, raw, vt)
	}
	return v, nil
}

// Format renders v in the canonical text form of vt.
func Format(vt ValueType, v any) (string, error) {
	c, ok := codecs[vt]
	if !ok {
		return "", fmt.Errorf("%w: unsupported value type %d", ErrTypeMismatch, vt)
	}
	s, ok := c.encode(v)
	if !ok {
		return "", fmt.Errorf("%w: cannot format %#v as %s", ErrTypeMismatch, v, vt)
	}
	return s, nil
}

func decodeString(raw any) (any, bool) {
	switch v := raw.(type) {
	case string:
		return v, true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), true
	case bool:
		return strconv.FormatBool(v), true
	default:
		return nil, false
	}
}

func decodeInt(raw any, bits int) (int64, bool) {
	var n int64
	switch v := raw.(type) {
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(v), 10, bits)
		if err != nil {
			return 0, false
		}
		return parsed, true
	case int:
		n = int64(v)
	case int32:
		n = int64(v)
	case int64:
		n = v
	case float64:
		if v != math.Trunc(v) || v < math.MinInt64 || v >= math.MaxInt64 {
			return 0, false
		}
		n = int64(v)
	default:
		return 0, false
	}
	if bits == 32 && (n < math.MinInt32 || n > math.MaxInt32) {
		return 0, false
	}
	return n, true
}

func decodeFloat(raw any) (any, bool) {
	switch v := raw.(type) {
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil, false
		}
		return f, true
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return nil, false
	}
}

func decodeBool(raw any) (any, bool) {
	switch v := raw.(type) {
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return nil, false
		}
		return b, true
	case bool:
		return v, true
	default:
		return nil, false
	}
}
