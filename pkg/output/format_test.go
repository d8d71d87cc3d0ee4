package output

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/brokerdesk/dealmargin/internal/report"
	"github.com/brokerdesk/dealmargin/pkg/commission"
	"github.com/brokerdesk/dealmargin/pkg/pricing"
	"github.com/brokerdesk/dealmargin/pkg/yearrange"
	json "github.com/goccy/go-json"
)

func testReport() *report.Report {
	return &report.Report{
		Deals: []report.DealResult{
			{
				Name: "Defender 90",
				Config: commission.Config{
					FinalSalePrice:        120000,
					Mode:                  commission.ModePercentOfSale,
					GrossCommissionAmount: 12000,
					TaxDue:                360,
					NetCommissionReceived: 6840,
					Participants: []commission.Participant{
						{
							Name:            "Brokerage",
							Role:            commission.RoleHouse,
							PercentShare:    60,
							GrossCommission: 7200,
							TaxAmount:       360,
							NetCommission:   6840,
						},
					},
				},
				Valid: true,
			},
		},
		Opportunities: []report.OpportunityResult{
			{
				Name: "911",
				Margins: pricing.CalculatedMargins{
					GrossMargin:           70000,
					GrossCommissionAmount: 28000,
					NetAdvisoryProfit:     37000,
					TaxDue:                1680,
					NetCommissionReceived: 26320,
				},
			},
		},
		Models: []report.ModelResult{
			{
				Name: "Defender 90",
				Years: yearrange.Result{
					YearRanges:  []yearrange.Range{{Start: 1991, End: 1996}, {Start: 1999, End: 1999}},
					SourceCount: 7,
				},
			},
		},
	}
}

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

func TestPrettyFormat(t *testing.T) {
	output := captureStdout(t, func() {
		PrettyFormat(testReport())
	})

	for _, expected := range []string{
		"--- Results for deal Defender 90 ---",
		"$120,000.00",
		"$12,000.00",
		"Brokerage",
		"--- Results for opportunity 911 ---",
		"$37,000.00",
		"--- Production years for model Defender 90 ---",
		"1991-1996, 1999",
		"7 source entries",
	} {
		if !strings.Contains(output, expected) {
			t.Errorf("PrettyFormat missing %q in output:\n%s", expected, output)
		}
	}
}

func TestPrettyFormatShowsValidationErrors(t *testing.T) {
	rep := testReport()
	rep.Deals[0].Valid = false
	rep.Deals[0].Errors = []string{"must have at least one house-role participant"}

	output := captureStdout(t, func() {
		PrettyFormat(rep)
	})

	if !strings.Contains(output, "Validation errors: must have at least one house-role participant") {
		t.Errorf("PrettyFormat missing validation errors:\n%s", output)
	}
}

func TestCsvFormat(t *testing.T) {
	output := captureStdout(t, func() {
		CsvFormat(testReport())
	})

	for _, expected := range []string{
		`"deal","participant","role","share","gross","tax","net"`,
		`"Defender 90","Brokerage","house","60.00","7200.00","360.00","6840.00"`,
		`"911","70000.00","28000.00","37000.00","1680.00","26320.00"`,
		`"Defender 90","1991-1996, 1999","7"`,
	} {
		if !strings.Contains(output, expected) {
			t.Errorf("CsvFormat missing %q in output:\n%s", expected, output)
		}
	}
}

func TestJsonFormat(t *testing.T) {
	output := captureStdout(t, func() {
		if err := JsonFormat(testReport()); err != nil {
			t.Errorf("JsonFormat() error: %v", err)
		}
	})

	var decoded report.Report
	if err := json.Unmarshal([]byte(output), &decoded); err != nil {
		t.Fatalf("JsonFormat produced invalid JSON: %v\n%s", err, output)
	}
	if len(decoded.Deals) != 1 || decoded.Deals[0].Name != "Defender 90" {
		t.Errorf("decoded report = %+v", decoded)
	}
	if decoded.Models[0].Years.SourceCount != 7 {
		t.Errorf("sourceCount = %d, expected 7", decoded.Models[0].Years.SourceCount)
	}
}

func TestRangeString(t *testing.T) {
	tests := []struct {
		name     string
		ranges   []yearrange.Range
		expected string
	}{
		{"Empty", nil, "none"},
		{"Single year", []yearrange.Range{{Start: 1999, End: 1999}}, "1999"},
		{"Single span", []yearrange.Range{{Start: 1991, End: 1996}}, "1991-1996"},
		{"Mixed", []yearrange.Range{{Start: 1991, End: 1996}, {Start: 1999, End: 1999}}, "1991-1996, 1999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := RangeString(tt.ranges); result != tt.expected {
				t.Errorf("RangeString(%v) = %q, expected %q", tt.ranges, result, tt.expected)
			}
		})
	}
}
