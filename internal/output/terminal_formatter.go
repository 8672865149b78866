package output

import (
	"fmt"

	"github.com/charmbracelet/glamour"

	"github.com/rpgo/investsim/internal/domain"
)

const terminalWordWrap = 100

// TerminalFormatter renders the markdown report with ANSI styling for a terminal.
// Style "" picks the style from the terminal background; "notty" disables colors.
type TerminalFormatter struct {
	Style string
}

func (t TerminalFormatter) Name() string { return "terminal" }

func (t TerminalFormatter) Format(report *domain.SimulationReport) ([]byte, error) {
	styleOpt := glamour.WithAutoStyle()
	if t.Style != "" {
		styleOpt = glamour.WithStandardStyle(t.Style)
	}
	r, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(terminalWordWrap))
	if err != nil {
		return nil, fmt.Errorf("failed to create terminal renderer: %w", err)
	}
	out, err := r.Render(buildMarkdown(report))
	if err != nil {
		return nil, fmt.Errorf("failed to render markdown: %w", err)
	}
	return []byte(out), nil
}
