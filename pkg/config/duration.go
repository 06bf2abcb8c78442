package config

import (
	"fmt"
	"time"
)

// ValidatePositiveDuration rejects zero and negative durations. Used
// for rate limit windows and timeouts where zero would mean disabled.
//
//	if err := ValidatePositiveDuration(window); err != nil {
//	    window = time.Minute
//	}
func ValidatePositiveDuration(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("duration must be positive, got %v", d)
	}
	return nil
}

// ValidateDurationRange checks that d lies within [min, max] inclusive.
func ValidateDurationRange(d, min, max time.Duration) error {
	if min > max {
		return fmt.Errorf("invalid range: min (%v) cannot be greater than max (%v)", min, max)
	}

	if d < min {
		return fmt.Errorf("duration %v is below minimum %v", d, min)
	}

	if d > max {
		return fmt.Errorf("duration %v exceeds maximum %v", d, max)
	}

	return nil
}

// ValidateNonNegativeDuration rejects negative durations but allows
// zero, for optional delays where zero disables the wait.
func ValidateNonNegativeDuration(d time.Duration) error {
	if d < 0 {
		return fmt.Errorf("duration must be non-negative, got %v", d)
	}
	return nil
}
