package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/investsim/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per metric).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(report *domain.SimulationReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Section", "Metric", "Value"}); err != nil {
		return nil, err
	}
	var rows [][]string
	if p := report.Projection; p != nil {
		rows = append(rows,
			[]string{"compound", "months", intToString(p.Input.Months)},
			[]string{"compound", "total_contributed", FormatAmount(p.TotalContributed, report.Currency)},
			[]string{"compound", "final_balance", FormatAmount(p.FinalBalance, report.Currency)},
			[]string{"compound", "gain", ProjectionGain(p, report.Currency).String()},
		)
		if p.ClosedFormBalance != nil {
			rows = append(rows, []string{"compound", "closed_form_balance", FormatAmount(*p.ClosedFormBalance, report.Currency)})
		}
	}
	if p := report.Portfolio; p != nil {
		t := p.Terminal
		rows = append(rows,
			[]string{"portfolio", "expected_return", floatToString(p.Statistics.ExpectedReturn)},
			[]string{"portfolio", "volatility", floatToString(p.Statistics.Volatility)},
			[]string{"portfolio", "sharpe_ratio", floatToString(p.Statistics.SharpeRatio)},
			[]string{"portfolio", "terminal_mean", floatToString(t.Mean)},
			[]string{"portfolio", "terminal_p10", floatToString(t.Percentiles.P10)},
			[]string{"portfolio", "terminal_p50", floatToString(t.Percentiles.P50)},
			[]string{"portfolio", "terminal_p90", floatToString(t.Percentiles.P90)},
		)
	}
	if cmp := report.Comparison; cmp != nil {
		totals := TotalComparison(cmp, report.Currency)
		rows = append(rows,
			[]string{"comparison", "chaotic_final", totals.ChaoticFinal.String()},
			[]string{"comparison", "guided_final", totals.GuidedFinal.String()},
			[]string{"comparison", "difference", totals.Difference.String()},
			[]string{"comparison", "chaotic_contributed", totals.ChaoticContributed.String()},
			[]string{"comparison", "guided_contributed", totals.GuidedContributed.String()},
			[]string{"comparison", "chaotic_withdrawn", totals.Withdrawn.String()},
			[]string{"comparison", "chaotic_net_invested", totals.ChaoticNetInvested.String()},
			[]string{"comparison", "withdrawal_months", intToString(cmp.WithdrawalMonths)},
		)
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
