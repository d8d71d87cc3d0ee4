// Package report runs every deal, opportunity, and vehicle model in a loaded
// configuration through the calculation engines and collects the results.
package report

import (
	"fmt"

	"github.com/brokerdesk/dealmargin/internal/config"
	"github.com/brokerdesk/dealmargin/pkg/commission"
	"github.com/brokerdesk/dealmargin/pkg/pricing"
	"github.com/brokerdesk/dealmargin/pkg/yearrange"
	"go.uber.org/zap"
)

// Report holds the computed results for one configuration.
type Report struct {
	Deals         []DealResult        `json:"deals"`
	Opportunities []OpportunityResult `json:"opportunities"`
	Models        []ModelResult       `json:"models"`
}

// DealResult is one deal with all derived commission figures filled in,
// plus the accumulated validation errors. Errors are advisory; the figures
// are always computed.
type DealResult struct {
	Name   string            `json:"name"`
	Config commission.Config `json:"config"`
	Valid  bool              `json:"valid"`
	Errors []string          `json:"errors,omitempty"`
}

// OpportunityResult is one opportunity with its computed margins.
type OpportunityResult struct {
	Name    string                    `json:"name"`
	Margins pricing.CalculatedMargins `json:"margins"`
}

// ModelResult is one vehicle model's normalized production window. Warnings
// carry per-entry validation messages; flagged entries are reported but
// still flow into the ranges, matching the advisory role of the validators.
type ModelResult struct {
	Name     string           `json:"name"`
	Years    yearrange.Result `json:"years"`
	Warnings []string         `json:"warnings,omitempty"`
}

// GetReport processes the results for all deals, opportunities, and models.
func GetReport(logger *zap.Logger, conf config.Configuration) (*Report, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var report Report

	for i := range conf.Deals {
		deal := &conf.Deals[i]
		cfg, err := deal.ToCommissionConfig()
		if err != nil {
			return nil, err
		}

		cfg.Recalculate()
		valid, errors := commission.ValidateConfig(cfg)

		logger.Debug(fmt.Sprintf("computed deal %s", deal.Name),
			zap.String("op", "report.GetReport"),
			zap.Float64("grossCommission", cfg.GrossCommissionAmount),
			zap.Float64("netCommissionReceived", cfg.NetCommissionReceived),
			zap.Bool("valid", valid),
		)

		report.Deals = append(report.Deals, DealResult{
			Name:   deal.Name,
			Config: cfg,
			Valid:  valid,
			Errors: errors,
		})
	}

	for i := range conf.Opportunities {
		opportunity := &conf.Opportunities[i]
		data, err := opportunity.ToPricingData()
		if err != nil {
			return nil, err
		}

		margins := pricing.ComputeMargins(data)

		logger.Debug(fmt.Sprintf("computed opportunity %s", opportunity.Name),
			zap.String("op", "report.GetReport"),
			zap.Float64("grossMargin", margins.GrossMargin),
			zap.Float64("netAdvisoryProfit", margins.NetAdvisoryProfit),
		)

		report.Opportunities = append(report.Opportunities, OpportunityResult{
			Name:    opportunity.Name,
			Margins: margins,
		})
	}

	for i := range conf.Models {
		model := &conf.Models[i]
		result := computeModel(logger, model)
		report.Models = append(report.Models, result)
	}

	return &report, nil
}

func computeModel(logger *zap.Logger, model *config.VehicleModel) ModelResult {
	entries, warnings := model.YearEntries()

	if msg := yearrange.ValidateProductionYears(model.ProductionStart, model.ProductionEnd); msg != "" {
		warnings = append(warnings, msg)
	}

	for _, entry := range entries {
		if msg := yearrange.ValidateEntry(entry, model.ProductionStart, model.ProductionEnd); msg != "" {
			warnings = append(warnings, fmt.Sprintf("(%d, %d): %s", entry.ManufactureYear, entry.ModelYear, msg))
		}
	}

	result := yearrange.FromEntries(entries)

	logger.Debug(fmt.Sprintf("computed model %s", model.Name),
		zap.String("op", "report.GetReport"),
		zap.Int("sourceCount", result.SourceCount),
		zap.Int("ranges", len(result.YearRanges)),
		zap.Int("warnings", len(warnings)),
	)

	return ModelResult{
		Name:     model.Name,
		Years:    result,
		Warnings: warnings,
	}
}
