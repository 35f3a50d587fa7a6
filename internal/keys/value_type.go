// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package keys

// ValueType is the coercion domain of a key.
type ValueType uint8

const (
	TypeString ValueType = iota + 1
	TypeInteger
	TypeLong
	TypeDouble
	TypeBoolean
)

// String returns the type name used in reference documentation.
func (v ValueType) String() string {
	switch v {
	case TypeString:
		return "string"
	case TypeInteger:
		return "integer"
	case TypeLong:
		return "long"
	case TypeDouble:
		return "double"
	case TypeBoolean:
		return "boolean"
	default:
		return "unknown"
	}
}

// Scalar lists the Go types a key may carry. Each maps to exactly one
// ValueType: string, int (Integer, 32-bit range), int64 (Long), float64
// (Double) and bool (Boolean).
type Scalar interface {
	string | int | int64 | float64 | bool
}

// valueTypeOf maps a type parameter to its ValueType. It runs once per
// declaration; coercion itself is driven by the codec table.
func valueTypeOf[T Scalar]() ValueType {
	var zero T
	switch any(zero).(type) {
	case string:
		return TypeString
	case int:
		return TypeInteger
	case int64:
		return TypeLong
	case float64:
		return TypeDouble
	case bool:
		return TypeBoolean
	}
	return 0
}
