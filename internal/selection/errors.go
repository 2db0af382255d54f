// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package selection

import "errors"

var (
	ErrNoIndicesAvailable       = errors.New("unable to get indices from the cluster")
	ErrNoMatchingIndices        = errors.New("no indices matched provided args")
	ErrInvalidFilterCombination = errors.New("invalid filter combination")
)
