package commission

import (
	"fmt"
	"math"

	"github.com/brokerdesk/dealmargin/pkg/constants"
)

// ParticipantsResult is the outcome of ValidateParticipants. Error is empty
// when Valid is true.
type ParticipantsResult struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// ValidateParticipants checks that a participant list can carry a meaningful
// split. The checks are ordered and the first failure wins; this validator
// gates a single concern (the split itself) and is surfaced on its own in
// callers, unlike ValidateConfig which accumulates.
func ValidateParticipants(participants []Participant) ParticipantsResult {
	if len(participants) == 0 {
		return ParticipantsResult{Error: "add at least one participant (house)"}
	}

	if _, ok := houseParticipant(participants); !ok {
		return ParticipantsResult{Error: "must have at least one house-role participant"}
	}

	sum := 0.0
	for _, p := range participants {
		sum += p.PercentShare
	}
	if math.Abs(sum-constants.ShareSumTarget) > constants.ShareSumTolerance {
		return ParticipantsResult{Error: fmt.Sprintf("participant shares must total 100%%, got %.2f%%", sum)}
	}

	return ParticipantsResult{Valid: true}
}

// ValidateConfig checks a full commission configuration and accumulates
// every applicable error so a form can show all problems at once. A valid
// config returns (true, nil).
func ValidateConfig(cfg Config) (bool, []string) {
	var errors []string

	if cfg.FinalSalePrice <= 0 {
		errors = append(errors, "final sale price must be greater than zero")
	}

	switch cfg.Mode {
	case ModePercentOfSale:
		if cfg.PercentCommission == nil || *cfg.PercentCommission <= 0 || *cfg.PercentCommission > 100 {
			errors = append(errors, "percent commission must be greater than 0 and at most 100")
		}
	case ModeOwnerOffer:
		if cfg.OwnerOfferedAmount == nil || *cfg.OwnerOfferedAmount < 0 {
			errors = append(errors, "owner offered amount must be zero or greater")
		}
	case ModeGrossDifference:
		if cfg.OwnerDesiredAmount == nil || *cfg.OwnerDesiredAmount < 0 {
			errors = append(errors, "owner desired amount must be zero or greater")
		}
	default:
		errors = append(errors, fmt.Sprintf("unknown commission mode %q", string(cfg.Mode)))
	}

	if result := ValidateParticipants(cfg.Participants); !result.Valid {
		errors = append(errors, result.Error)
	}

	return len(errors) == 0, errors
}
