package pricing

import (
	"fmt"
	"strings"
)

// ParseMarginType converts a configuration string into a MarginType,
// case-insensitively. Unknown values are rejected at the configuration
// boundary; the compute path itself never fails on an unknown type.
func ParseMarginType(s string) (MarginType, error) {
	switch {
	case strings.EqualFold(s, string(MarginGrossDifference)):
		return MarginGrossDifference, nil
	case strings.EqualFold(s, string(MarginPercentOfSale)):
		return MarginPercentOfSale, nil
	case strings.EqualFold(s, string(MarginFixedAmount)):
		return MarginFixedAmount, nil
	}
	return "", fmt.Errorf("unknown margin type %q (expected %s, %s, or %s)",
		s, MarginGrossDifference, MarginPercentOfSale, MarginFixedAmount)
}
