package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testConfig = `---
deals:
  - name: Defender 90
    finalSalePrice: 120000.00
    commissionMode: percentOfSale
    percentCommission: 10.0
    effectiveTaxRate: 5.0
    participants:
      - name: Brokerage
        role: house
        percentShare: 60.0
      - name: Alex
        role: broker
        percentShare: 40.0
opportunities:
  - name: Porsche 911
    saleValue: 950000.00
    costValue: 880000.00
    marginType: grossDifference
    sellerCommissionPercent: 40.0
    otherParticipantsCost: 5000.00
    effectiveTaxRate: 6.0
models:
  - name: Defender 90
    productionStart: 1990
    productionEnd: 2016
    years:
      - manufactureYear: 1991
        modelYear: 1991
      - manufactureYear: 1992
        modelYear: 1992
logging:
  level: debug
  format: console
output:
  format: csv
`

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return path
}

func TestLoadConfiguration(t *testing.T) {
	conf, err := LoadConfiguration(writeTestConfig(t, testConfig))
	if err != nil {
		t.Fatalf("LoadConfiguration() error: %v", err)
	}

	if len(conf.Deals) != 1 {
		t.Fatalf("got %d deals, expected 1", len(conf.Deals))
	}
	deal := conf.Deals[0]
	if deal.Name != "Defender 90" {
		t.Errorf("deal name = %q", deal.Name)
	}
	if deal.FinalSalePrice != 120000 {
		t.Errorf("finalSalePrice = %v", deal.FinalSalePrice)
	}
	if deal.PercentCommission == nil || *deal.PercentCommission != 10 {
		t.Errorf("percentCommission = %v", deal.PercentCommission)
	}
	if deal.OwnerOfferedAmount != nil {
		t.Errorf("ownerOfferedAmount should be nil when absent, got %v", *deal.OwnerOfferedAmount)
	}
	if len(deal.Participants) != 2 {
		t.Fatalf("got %d participants, expected 2", len(deal.Participants))
	}
	if deal.Participants[0].Role != "house" || deal.Participants[0].PercentShare != 60 {
		t.Errorf("first participant = %+v", deal.Participants[0])
	}

	if len(conf.Opportunities) != 1 {
		t.Fatalf("got %d opportunities, expected 1", len(conf.Opportunities))
	}
	if conf.Opportunities[0].MarginType != "grossDifference" {
		t.Errorf("marginType = %q", conf.Opportunities[0].MarginType)
	}

	if len(conf.Models) != 1 {
		t.Fatalf("got %d models, expected 1", len(conf.Models))
	}
	model := conf.Models[0]
	if model.ProductionStart == nil || *model.ProductionStart != 1990 {
		t.Errorf("productionStart = %v", model.ProductionStart)
	}
	if len(model.Years) != 2 {
		t.Errorf("got %d year entries, expected 2", len(model.Years))
	}

	if conf.Logging.Level != "debug" || conf.Logging.Format != "console" {
		t.Errorf("logging config = %+v", conf.Logging)
	}
	if conf.Output.Format != "csv" {
		t.Errorf("output format = %q", conf.Output.Format)
	}
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	_, err := LoadConfiguration(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestValidateConfiguration(t *testing.T) {
	tests := []struct {
		name            string
		conf            Configuration
		warningContains []string
	}{
		{
			name: "Clean configuration",
			conf: Configuration{
				Deals: []Deal{
					{Name: "a", Participants: []Participant{{Role: "house", PercentShare: 100}}},
				},
			},
		},
		{
			name: "Duplicate deal names",
			conf: Configuration{
				Deals: []Deal{
					{Name: "a", Participants: []Participant{{Role: "house"}}},
					{Name: "a", Participants: []Participant{{Role: "house"}}},
				},
			},
			warningContains: []string{"Duplicate deal name 'a'"},
		},
		{
			name: "Deal with no participants",
			conf: Configuration{
				Deals: []Deal{{Name: "empty"}},
			},
			warningContains: []string{"no participants"},
		},
		{
			name: "Model with nothing to compute",
			conf: Configuration{
				Models: []VehicleModel{{Name: "bare"}},
			},
			warningContains: []string{"no year entries"},
		},
		{
			name: "Fill requested with open-ended window",
			conf: Configuration{
				Models: []VehicleModel{{Name: "open", FillFromProduction: true}},
			},
			warningContains: []string{"open-ended"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := tt.conf.ValidateConfiguration()
			if len(tt.warningContains) == 0 && len(warnings) != 0 {
				t.Errorf("unexpected warnings: %v", warnings)
			}
			for _, expected := range tt.warningContains {
				found := false
				for _, warning := range warnings {
					if strings.Contains(warning, expected) {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("warnings %v missing one containing %q", warnings, expected)
				}
			}
		})
	}
}
