// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoServersAreCreated is returned by NewServer when the handlers and the
// configured addresses leave no transport to run.
var errNoServersAreCreated = errors.New("no servers are created")
