// Package config loads the bootstrap settings of the configuration server:
// where the key values live, how the HTTP API listens and how writes are
// authorised.
//
// Settings come from three sources. A field set by an earlier source is
// kept; later sources only fill what is still empty:
//  1. Command-line flags
//  2. Environment variables
//  3. JSON config file (path from -c/-config or CONFIG)
//
// These are process settings, not registry keys; registry keys are resolved
// through package keys.
package config
