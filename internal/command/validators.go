// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/idxctl/idxctl/internal/log"
	"github.com/idxctl/idxctl/internal/output"
	"github.com/idxctl/idxctl/internal/selection"
)

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

// SelectionValidator checks the selection flags of an action before anything
// is fetched. Problems are reported as selection.ErrInvalidFilterCombination.
func SelectionValidator(_ context.Context, c *cli.Command) error {
	specs := SelectionFromCommand(c).Specs
	log.Debugf("validating filters: %v", specs)
	return selection.Validate(specs, GetMeta(c).Now)
}

func OutputValidator(value any) error {
	if !slices.Contains(output.Formats, fmt.Sprint(value)) {
		return fmt.Errorf("must be one of %v", output.Formats)
	}
	return nil
}

func TimeUnitValidator(value any) error {
	if !slices.Contains(units(), fmt.Sprint(value)) {
		return fmt.Errorf("must be one of %v", units())
	}
	return nil
}

func PositiveDurationValidator(value any) error {
	if d, ok := value.(time.Duration); !ok || d <= 0 {
		return fmt.Errorf("must be a positive duration, got %v", value)
	}
	return nil
}

func NonNegativeValidator(value any) error {
	if n, ok := value.(int); !ok || n < 0 {
		return fmt.Errorf("must not be negative, got %v", value)
	}
	return nil
}
