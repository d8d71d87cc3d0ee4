// Package config defines conversion utilities for configuration objects.
package config

import (
	"fmt"
	"math"

	"github.com/brokerdesk/dealmargin/pkg/commission"
	"github.com/brokerdesk/dealmargin/pkg/pricing"
	"github.com/brokerdesk/dealmargin/pkg/yearrange"
	"github.com/google/uuid"
)

// ToCommissionConfig converts a config Deal into a commission.Config with
// parsed enums and assigned participant IDs. Derived fields are left zero;
// the caller runs Recalculate.
func (d *Deal) ToCommissionConfig() (commission.Config, error) {
	mode, err := commission.ParseMode(d.CommissionMode)
	if err != nil {
		return commission.Config{}, fmt.Errorf("deal %q: %w", d.Name, err)
	}

	cfg := commission.Config{
		FinalSalePrice:     d.FinalSalePrice,
		Mode:               mode,
		PercentCommission:  d.PercentCommission,
		OwnerOfferedAmount: d.OwnerOfferedAmount,
		OwnerDesiredAmount: d.OwnerDesiredAmount,
		RBT12:              d.RBT12,
		EffectiveTaxRate:   d.EffectiveTaxRate,
	}

	for _, p := range d.Participants {
		role, err := commission.ParseRole(p.Role)
		if err != nil {
			return commission.Config{}, fmt.Errorf("deal %q participant %q: %w", d.Name, p.Name, err)
		}
		id := p.ID
		if id == "" {
			id = uuid.NewString()
		}
		cfg.Participants = append(cfg.Participants, commission.Participant{
			ID:           id,
			Name:         p.Name,
			Role:         role,
			PercentShare: p.PercentShare,
		})
	}

	return cfg, nil
}

// ToPricingData converts a config Opportunity into pricing.Data.
func (o *Opportunity) ToPricingData() (pricing.Data, error) {
	marginType, err := pricing.ParseMarginType(o.MarginType)
	if err != nil {
		return pricing.Data{}, fmt.Errorf("opportunity %q: %w", o.Name, err)
	}

	return pricing.Data{
		SaleValue:               o.SaleValue,
		CostValue:               o.CostValue,
		MarginType:              marginType,
		MarginParameter:         o.MarginParameter,
		SellerCommissionPercent: o.SellerCommissionPercent,
		OtherParticipantsCost:   o.OtherParticipantsCost,
		RBT12:                   o.RBT12,
		EffectiveTaxRate:        o.EffectiveTaxRate,
	}, nil
}

// YearEntries converts a model's configured year pairs into yearrange
// entries, generating entries from the production window when requested.
// Non-integer year values cannot be represented as entries; each one is
// skipped and reported as a warning, so a bad row degrades the result
// instead of failing the whole model.
func (m *VehicleModel) YearEntries() ([]yearrange.Entry, []string) {
	var entries []yearrange.Entry
	var warnings []string

	for i, year := range m.Years {
		if !isIntegral(year.ManufactureYear) || !isIntegral(year.ModelYear) {
			warnings = append(warnings, fmt.Sprintf("entry %d: years must be integers", i+1))
			continue
		}
		entries = append(entries, yearrange.Entry{
			ManufactureYear: int(year.ManufactureYear),
			ModelYear:       int(year.ModelYear),
		})
	}

	if m.FillFromProduction && m.ProductionStart != nil && m.ProductionEnd != nil {
		entries = append(entries, yearrange.EntriesFromRange(*m.ProductionStart, *m.ProductionEnd)...)
	}

	return entries, warnings
}

func isIntegral(v float64) bool {
	return v == math.Trunc(v) && !math.IsInf(v, 0) && !math.IsNaN(v)
}
