package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/investsim/internal/domain"
)

// CSVDetailedExporter provides month-by-month balances of the compound and comparison tabs.
// Columns of a tab that was not run are left empty.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(report *domain.SimulationReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Month", "CompoundBalance", "GuidedBalance", "ChaoticBalance", "MarketReturn"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	var compound domain.BalanceSchedule
	if report.Projection != nil {
		compound = report.Projection.Schedule
	}
	var cmp domain.ScenarioComparison
	if report.Comparison != nil {
		cmp = *report.Comparison
	}
	months := max(len(compound), len(cmp.Guided))

	for i := 0; i < months; i++ {
		row := []string{intToString(i + 1), "", "", "", ""}
		if i < len(compound) {
			row[1] = fixed(compound[i].Balance, 2)
		}
		if i < len(cmp.Guided) {
			row[2] = fixed(cmp.Guided[i].Balance, 2)
			row[3] = fixed(cmp.Chaotic[i].Balance, 2)
			row[4] = floatToString(cmp.Market[i])
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
