// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"fmt"
	"strings"
)

// flatten turns nested documents into dotted key names:
//
//	web: {port: 8082}  ->  "web.port": 8082
//
// Scalar lists become comma-separated strings. json.Number values are kept
// as text so that 64-bit integers survive. A name reached twice, e.g. both
// "web.port" and web: {port}, is an error.
func flatten(doc map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(doc))
	if err := flattenInto(out, "", doc); err != nil {
		return nil, err
	}
	return out, nil
}

func flattenInto(out map[string]any, prefix string, doc map[string]any) error {
	for k, v := range doc {
		name := k
		if prefix != "" {
			name = prefix + "." + k
		}

		if nested, ok := v.(map[string]any); ok {
			if err := flattenInto(out, name, nested); err != nil {
				return err
			}
			continue
		}
		if v == nil {
			// null leaves the key unset
			continue
		}

		if _, dup := out[name]; dup {
			return fmt.Errorf("%w: key %q is defined more than once", ErrParsingFile, name)
		}

		switch value := v.(type) {
		case []any:
			parts := make([]string, 0, len(value))
			for _, item := range value {
				parts = append(parts, fmt.Sprint(item))
			}
			out[name] = strings.Join(parts, ",")
		case json.Number:
			out[name] = value.String()
		default:
			out[name] = value
		}
	}
	return nil
}
