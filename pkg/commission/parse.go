package commission

import (
	"fmt"
	"strings"
)

// ParseMode converts a configuration string into a Mode. Matching is
// case-insensitive; unknown values are rejected so that typos surface at the
// configuration boundary instead of silently computing a zero commission.
func ParseMode(s string) (Mode, error) {
	switch {
	case strings.EqualFold(s, string(ModePercentOfSale)):
		return ModePercentOfSale, nil
	case strings.EqualFold(s, string(ModeOwnerOffer)):
		return ModeOwnerOffer, nil
	case strings.EqualFold(s, string(ModeGrossDifference)):
		return ModeGrossDifference, nil
	}
	return "", fmt.Errorf("unknown commission mode %q (expected %s, %s, or %s)",
		s, ModePercentOfSale, ModeOwnerOffer, ModeGrossDifference)
}

// ParseRole converts a configuration string into a Role, case-insensitively.
func ParseRole(s string) (Role, error) {
	switch {
	case strings.EqualFold(s, string(RoleHouse)):
		return RoleHouse, nil
	case strings.EqualFold(s, string(RoleBroker)):
		return RoleBroker, nil
	case strings.EqualFold(s, string(RoleReferrer)):
		return RoleReferrer, nil
	case strings.EqualFold(s, string(RoleOther)):
		return RoleOther, nil
	}
	return "", fmt.Errorf("unknown participant role %q (expected %s, %s, %s, or %s)",
		s, RoleHouse, RoleBroker, RoleReferrer, RoleOther)
}
