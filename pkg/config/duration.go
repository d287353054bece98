package config

import (
	"fmt"
	"net/netip"
	"strings"
	"time"
)

// ValidatePositiveDuration rejects zero and negative durations.
func ValidatePositiveDuration(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("duration must be positive, got %v", d)
	}
	return nil
}

// ValidateDurationRange requires min <= d <= max.
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

// ValidateCIDRs checks that every entry is a CIDR prefix or a bare IP address.
func ValidateCIDRs(entries []string) error {
	for _, e := range entries {
		if strings.Contains(e, "/") {
			if _, err := netip.ParsePrefix(e); err != nil {
				return fmt.Errorf("invalid CIDR %q: %w", e, err)
			}
			continue
		}
		if _, err := netip.ParseAddr(e); err != nil {
			return fmt.Errorf("invalid IP %q: %w", e, err)
		}
	}
	return nil
}
