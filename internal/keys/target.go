// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package keys

// Target is the runtime identity a value is resolved for. The zero value is
// the global target. Methods return modified copies.
type Target struct {
	protocol string
	device   string
}

// GlobalTarget resolves against the server-wide tier only.
func GlobalTarget() Target {
	return Target{}
}

// ProtocolTarget resolves for one protocol instance.
func ProtocolTarget(protocol string) Target {
	return Target{protocol: protocol}
}

// DeviceTarget resolves for one device.
func DeviceTarget(deviceID string) Target {
	return Target{device: deviceID}
}

// WithProtocol returns a copy of t naming protocol.
func (t Target) WithProtocol(protocol string) Target {
	t.protocol = protocol
	return t
}

// WithDevice returns a copy of t naming deviceID.
func (t Target) WithDevice(deviceID string) Target {
	t.device = deviceID
	return t
}

// Identity returns the instance identity t carries for tier scope. The
// global tier always matches with an empty identity.
func (t Target) Identity(scope KeyType) (string, bool) {
	switch scope {
	case Global:
		return "", true
	case Protocol:
		return t.protocol, t.protocol != ""
	case Device:
		return t.device, t.device != ""
	default:
		return "", false
	}
}

// IsGlobal reports whether t carries no instance identity.
func (t Target) IsGlobal() bool {
	return t.protocol == "" && t.device == ""
}
