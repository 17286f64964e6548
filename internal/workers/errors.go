// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import "errors"

// ErrInvalidSchedule is returned for a cron spec that cannot be parsed.
var ErrInvalidSchedule = errors.New("invalid worker schedule")
