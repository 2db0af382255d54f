// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"context"
	"time"

	"github.com/idxctl/idxctl/internal/config"
)

// Meta contains runtime metadata shared by commands. It carries CLI arguments,
// the loaded configuration, the root context and the instant the invocation
// started, which every age comparison is reckoned from.
type Meta struct {
	Args    []string
	Config  config.Type
	Context context.Context
	Now     time.Time
}
