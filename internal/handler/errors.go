// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when the services are
// missing or incomplete. This is a wiring bug and fails the startup.
var errNoHandlersAreCreated = errors.New("no handlers are created")
