// Package config defines the data structures related to configuration and
// includes functions for loading and parsing the config.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Configuration holds all configuration for dealmargin.
type Configuration struct {
	Deals         []Deal
	Opportunities []Opportunity
	Models        []VehicleModel
	Logging       LoggingConfig `yaml:"logging,omitempty"`
	Output        OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json
}

// Deal is one sales transaction being priced, with its commission split.
type Deal struct {
	Name               string
	FinalSalePrice     float64
	CommissionMode     string
	PercentCommission  *float64
	OwnerOfferedAmount *float64
	OwnerDesiredAmount *float64
	RBT12              *float64
	EffectiveTaxRate   *float64
	Participants       []Participant
}

// Participant is one party sharing the commission on a deal. ID may be left
// empty in the config file; a fresh one is assigned during conversion.
type Participant struct {
	ID           string
	Name         string
	Role         string
	PercentShare float64
}

// Opportunity is one sales opportunity priced with the single-seller margin
// model.
type Opportunity struct {
	Name                    string
	SaleValue               float64
	CostValue               float64
	MarginType              string
	MarginParameter         *float64
	SellerCommissionPercent float64
	OtherParticipantsCost   float64
	RBT12                   *float64
	EffectiveTaxRate        *float64
}

// VehicleModel describes one vehicle model's production years. When
// FillFromProduction is set and both production bounds are present, one
// entry per production year is generated and appended to Years before the
// ranges are computed.
type VehicleModel struct {
	Name               string
	ProductionStart    *int
	ProductionEnd      *int
	FillFromProduction bool
	Years              []YearEntry
}

// YearEntry is one (manufacture year, model year) pair. The fields decode as
// float64 so that non-integer values in the config can be detected and
// reported rather than silently truncated.
type YearEntry struct {
	ManufactureYear float64
	ModelYear       float64
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. Warnings are advisory; they do not prevent the report
// from being computed.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	seen := make(map[string]bool)
	for _, deal := range c.Deals {
		if seen[deal.Name] {
			warnings = append(warnings, fmt.Sprintf("Duplicate deal name '%s' - results will be ambiguous", deal.Name))
		}
		seen[deal.Name] = true

		if len(deal.Participants) == 0 {
			warnings = append(warnings, fmt.Sprintf("Deal '%s' has no participants - totals will be zero", deal.Name))
		}
	}

	for _, model := range c.Models {
		if len(model.Years) == 0 && !model.FillFromProduction {
			warnings = append(warnings, fmt.Sprintf("Model '%s' has no year entries and no production window fill", model.Name))
		}
		if model.FillFromProduction && (model.ProductionStart == nil || model.ProductionEnd == nil) {
			warnings = append(warnings, fmt.Sprintf("Model '%s' requests production window fill but the window is open-ended", model.Name))
		}
	}

	return warnings
}
