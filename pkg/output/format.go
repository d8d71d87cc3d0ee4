// Package output provides utilities for formatting and displaying report results.
package output

import (
	"fmt"
	"strings"

	"github.com/brokerdesk/dealmargin/internal/report"
	"github.com/brokerdesk/dealmargin/pkg/format"
	"github.com/brokerdesk/dealmargin/pkg/yearrange"
	json "github.com/goccy/go-json"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable report.
func PrettyFormat(rep *report.Report) {
	p := message.NewPrinter(language.English)

	for _, deal := range rep.Deals {
		fmt.Printf("--- Results for deal %s ---\n", deal.Name)
		fmt.Printf("Final sale price:  %s\n", format.Currency(deal.Config.FinalSalePrice))
		fmt.Printf("Gross commission:  %s\n", format.Currency(deal.Config.GrossCommissionAmount))
		fmt.Printf("Tax due:           %s\n", format.Currency(deal.Config.TaxDue))
		fmt.Printf("Net commission:    %s\n", format.Currency(deal.Config.NetCommissionReceived))
		if len(deal.Config.Participants) > 0 {
			fmt.Printf("Participant          | Role     | Share   | Gross         | Tax           | Net\n")
			fmt.Printf("___________          | ____     | _____   | _____         | ___           | ___\n")
			for _, participant := range deal.Config.Participants {
				_, _ = p.Printf("%-20s | %-8s | %6.2f%% | $%.2f | $%.2f | $%.2f\n",
					participant.Name, string(participant.Role), participant.PercentShare,
					participant.GrossCommission, participant.TaxAmount, participant.NetCommission)
			}
		}
		if !deal.Valid {
			fmt.Printf("Validation errors: %s\n", strings.Join(deal.Errors, "; "))
		}
		fmt.Printf("\n")
	}

	for _, opportunity := range rep.Opportunities {
		fmt.Printf("--- Results for opportunity %s ---\n", opportunity.Name)
		fmt.Printf("Gross margin:        %s\n", format.Currency(opportunity.Margins.GrossMargin))
		fmt.Printf("Gross commission:    %s\n", format.Currency(opportunity.Margins.GrossCommissionAmount))
		fmt.Printf("Net advisory profit: %s\n", format.Currency(opportunity.Margins.NetAdvisoryProfit))
		fmt.Printf("Tax due:             %s\n", format.Currency(opportunity.Margins.TaxDue))
		fmt.Printf("Net commission:      %s\n", format.Currency(opportunity.Margins.NetCommissionReceived))
		fmt.Printf("\n")
	}

	for _, model := range rep.Models {
		fmt.Printf("--- Production years for model %s ---\n", model.Name)
		fmt.Printf("Ranges: %s (%d source entries)\n", RangeString(model.Years.YearRanges), model.Years.SourceCount)
		for _, warning := range model.Warnings {
			fmt.Printf("Warning: %s\n", warning)
		}
		fmt.Printf("\n")
	}
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(rep *report.Report) {
	fmt.Printf("\"deal\",\"participant\",\"role\",\"share\",\"gross\",\"tax\",\"net\"\n")
	for _, deal := range rep.Deals {
		for _, participant := range deal.Config.Participants {
			fmt.Printf("\"%s\",\"%s\",\"%s\",\"%.2f\",\"%.2f\",\"%.2f\",\"%.2f\"\n",
				deal.Name, participant.Name, string(participant.Role), participant.PercentShare,
				participant.GrossCommission, participant.TaxAmount, participant.NetCommission)
		}
	}

	fmt.Printf("\n\"opportunity\",\"grossMargin\",\"grossCommission\",\"netAdvisoryProfit\",\"taxDue\",\"netCommission\"\n")
	for _, opportunity := range rep.Opportunities {
		fmt.Printf("\"%s\",\"%.2f\",\"%.2f\",\"%.2f\",\"%.2f\",\"%.2f\"\n",
			opportunity.Name, opportunity.Margins.GrossMargin, opportunity.Margins.GrossCommissionAmount,
			opportunity.Margins.NetAdvisoryProfit, opportunity.Margins.TaxDue, opportunity.Margins.NetCommissionReceived)
	}

	fmt.Printf("\n\"model\",\"ranges\",\"sourceCount\"\n")
	for _, model := range rep.Models {
		fmt.Printf("\"%s\",\"%s\",\"%d\"\n", model.Name, RangeString(model.Years.YearRanges), model.Years.SourceCount)
	}
}

// JsonFormat outputs the full report as indented JSON.
func JsonFormat(rep *report.Report) error {
	encoded, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	fmt.Printf("%s\n", encoded)
	return nil
}

// RangeString renders year ranges as a comma-separated list, with single
// years rendered bare (e.g., "1991-1996, 1999").
func RangeString(ranges []yearrange.Range) string {
	if len(ranges) == 0 {
		return "none"
	}
	parts := make([]string, 0, len(ranges))
	for _, r := range ranges {
		if r.Start == r.End {
			parts = append(parts, fmt.Sprintf("%d", r.Start))
		} else {
			parts = append(parts, fmt.Sprintf("%d-%d", r.Start, r.End))
		}
	}
	return strings.Join(parts, ", ")
}
