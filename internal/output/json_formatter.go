package output

import (
	"encoding/json"

	"github.com/rpgo/investsim/internal/domain"
)

// JSONFormatter serializes the simulation report as pretty-printed JSON.
// Full path matrices are omitted; sample paths are kept.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(report *domain.SimulationReport) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}
