package yearrange

import (
	"fmt"
	"time"

	"github.com/brokerdesk/dealmargin/pkg/constants"
)

// ValidateEntry checks one year entry against the global year bounds and an
// optional production window. It returns an empty string when the entry is
// valid; callers rely on that sentinel (`if msg != ""`). The checks are
// ordered and the first failure is returned immediately.
func ValidateEntry(entry Entry, productionStart, productionEnd *int) string {
	return ValidateEntryAt(entry, productionStart, productionEnd, time.Now())
}

// ValidateEntryAt is ValidateEntry with an injectable current time, so tests
// can pin the upper year bound.
func ValidateEntryAt(entry Entry, productionStart, productionEnd *int, now time.Time) string {
	maxYear := now.Year() + constants.MaxYearOffset

	if entry.ManufactureYear < constants.MinVehicleYear || entry.ManufactureYear > maxYear {
		return fmt.Sprintf("manufacture year must be between %d and %d", constants.MinVehicleYear, maxYear)
	}
	if entry.ModelYear < constants.MinVehicleYear || entry.ModelYear > maxYear {
		return fmt.Sprintf("model year must be between %d and %d", constants.MinVehicleYear, maxYear)
	}
	if entry.ModelYear < entry.ManufactureYear {
		return "model year cannot be less than manufacture year"
	}

	if productionStart != nil && entry.ManufactureYear < *productionStart {
		return fmt.Sprintf("manufacture year cannot be before production start (%d)", *productionStart)
	}
	if productionEnd != nil && entry.ManufactureYear > *productionEnd {
		return fmt.Sprintf("manufacture year cannot be after production end (%d)", *productionEnd)
	}
	if productionStart != nil && entry.ModelYear < *productionStart {
		return fmt.Sprintf("model year cannot be before production start (%d)", *productionStart)
	}
	if productionEnd != nil && entry.ModelYear > *productionEnd {
		return fmt.Sprintf("model year cannot be after production end (%d)", *productionEnd)
	}

	return ""
}

// ValidateProductionYears checks that a production window is not inverted.
// Partial or absent bounds are always accepted; an open-ended window is
// legal. Empty string means valid.
func ValidateProductionYears(start, end *int) string {
	if start != nil && end != nil && *start > *end {
		return "production start cannot be greater than production end"
	}
	return ""
}
