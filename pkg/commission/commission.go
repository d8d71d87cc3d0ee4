// Package commission implements the participant-based commission engine for
// brokered vehicle sales: gross commission under one of three pricing modes,
// percentage splits across participants, and the brokerage's own tax and net
// figures.
//
// The compute functions never fail. Malformed or missing numeric input is
// coerced to zero at every boundary (mathutil.NumberOrZero), because the
// normal caller is a form that recomputes on every keystroke over partial
// state. Whether the resulting totals are meaningful is a separate question
// answered by the validators in validate.go.
package commission

import (
	"github.com/brokerdesk/dealmargin/pkg/mathutil"
)

// Mode selects which formula computes the gross commission.
type Mode string

const (
	// ModePercentOfSale takes a straight percentage of the final sale price.
	ModePercentOfSale Mode = "percentOfSale"

	// ModeOwnerOffer uses a flat amount offered by the vehicle owner.
	ModeOwnerOffer Mode = "ownerOffer"

	// ModeGrossDifference takes the spread between the final sale price and
	// the amount the owner wants to receive.
	ModeGrossDifference Mode = "grossDifference"
)

// Role identifies a participant's relationship to the brokerage.
type Role string

const (
	// RoleHouse is the brokerage itself. Tax applies only to this role.
	RoleHouse Role = "house"

	// RoleBroker is a broker sharing the commission.
	RoleBroker Role = "broker"

	// RoleReferrer is a referrer sharing the commission.
	RoleReferrer Role = "referrer"

	// RoleOther is any other third party sharing the commission.
	RoleOther Role = "other"
)

// Participant is one party sharing the commission on a single deal.
// GrossCommission, TaxAmount, and NetCommission are derived; callers set
// only ID, Name, Role, and PercentShare.
type Participant struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Role         Role    `json:"role"`
	PercentShare float64 `json:"percentShare"`

	GrossCommission float64 `json:"grossCommission"`
	TaxAmount       float64 `json:"taxAmount"`
	NetCommission   float64 `json:"netCommission"`
}

// Config is the commission configuration for one sales transaction.
// GrossCommissionAmount, TaxDue, and NetCommissionReceived are derived and
// overwritten by Recalculate; they are never independently settable.
type Config struct {
	FinalSalePrice float64 `json:"finalSalePrice"`
	Mode           Mode    `json:"commissionMode"`

	// Mode-specific inputs. Each is required only by its own mode; nil
	// degrades to a zero gross commission rather than failing.
	PercentCommission  *float64 `json:"percentCommission,omitempty"`
	OwnerOfferedAmount *float64 `json:"ownerOfferedAmount,omitempty"`
	OwnerDesiredAmount *float64 `json:"ownerDesiredAmount,omitempty"`

	GrossCommissionAmount float64 `json:"grossCommissionAmount"`

	Participants []Participant `json:"participants"`

	// Inputs for the house participant's tax line. RBT12 is carried for
	// display alongside the tax figures but does not enter the arithmetic.
	RBT12            *float64 `json:"rbt12,omitempty"`
	EffectiveTaxRate *float64 `json:"effectiveTaxRate,omitempty"`

	TaxDue                float64 `json:"taxDue"`
	NetCommissionReceived float64 `json:"netCommissionReceived"`
}

// Share holds the derived figures for one participant.
type Share struct {
	GrossCommission float64 `json:"grossCommission"`
	TaxAmount       float64 `json:"taxAmount"`
	NetCommission   float64 `json:"netCommission"`
}

// Totals holds the configuration-level derived figures, i.e. the house
// participant's tax and net take.
type Totals struct {
	TaxDue                float64 `json:"taxDue"`
	NetCommissionReceived float64 `json:"netCommissionReceived"`
}

// GrossCommission computes the gross commission margin for the config's
// mode. Missing or non-positive mode inputs yield 0 rather than an error.
func GrossCommission(cfg Config) float64 {
	sale := mathutil.NumberOrZero(cfg.FinalSalePrice)
	switch cfg.Mode {
	case ModePercentOfSale:
		pct := mathutil.OptionalOrZero(cfg.PercentCommission)
		if pct <= 0 {
			return 0
		}
		return mathutil.ApplyPercentage(sale, pct)
	case ModeOwnerOffer:
		return mathutil.OptionalOrZero(cfg.OwnerOfferedAmount)
	case ModeGrossDifference:
		if cfg.OwnerDesiredAmount == nil {
			return 0
		}
		// Negative margins are not representable in this mode; the spread
		// clamps at zero. The opportunity-level engine in pkg/pricing
		// deliberately does NOT clamp.
		return mathutil.Max(0, sale-mathutil.NumberOrZero(*cfg.OwnerDesiredAmount))
	default:
		return 0
	}
}

// ParticipantShare computes one participant's cut of the gross commission.
// Tax applies only to the house role; every other role always carries a zero
// tax amount regardless of the effective rate.
func ParticipantShare(p Participant, grossCommissionAmount, effectiveTaxRate float64) Share {
	gross := mathutil.ApplyPercentage(
		mathutil.NumberOrZero(grossCommissionAmount),
		mathutil.NumberOrZero(p.PercentShare),
	)

	tax := 0.0
	if p.Role == RoleHouse && mathutil.NumberOrZero(effectiveTaxRate) > 0 {
		tax = mathutil.ApplyPercentage(gross, effectiveTaxRate)
	}

	return Share{
		GrossCommission: gross,
		TaxAmount:       tax,
		NetCommission:   gross - tax,
	}
}

// houseParticipant returns the first participant with the house role in list
// order. Nothing prevents more than one house participant; only the first
// one counts toward the config totals.
func houseParticipant(participants []Participant) (*Participant, bool) {
	for i := range participants {
		if participants[i].Role == RoleHouse {
			return &participants[i], true
		}
	}
	return nil, false
}

// ConfigTotals surfaces the house participant's tax and net figures as the
// configuration-level totals. A missing house participant yields zero totals
// rather than an error; ValidateParticipants reports that condition.
func ConfigTotals(cfg Config) Totals {
	house, ok := houseParticipant(cfg.Participants)
	if !ok {
		return Totals{}
	}
	return Totals{
		TaxDue:                house.TaxAmount,
		NetCommissionReceived: house.NetCommission,
	}
}

// Recalculate recomputes every derived field on the config in place: the
// gross commission from the mode inputs, each participant's share, and the
// config totals. It is cheap and idempotent; callers run it whenever any
// input changes.
func (cfg *Config) Recalculate() {
	cfg.GrossCommissionAmount = GrossCommission(*cfg)
	rate := mathutil.OptionalOrZero(cfg.EffectiveTaxRate)
	for i := range cfg.Participants {
		share := ParticipantShare(cfg.Participants[i], cfg.GrossCommissionAmount, rate)
		cfg.Participants[i].GrossCommission = share.GrossCommission
		cfg.Participants[i].TaxAmount = share.TaxAmount
		cfg.Participants[i].NetCommission = share.NetCommission
	}
	totals := ConfigTotals(*cfg)
	cfg.TaxDue = totals.TaxDue
	cfg.NetCommissionReceived = totals.NetCommissionReceived
}
