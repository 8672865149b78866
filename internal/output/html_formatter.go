package output

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/rpgo/investsim/internal/domain"
)

// HTMLFormatter produces a standalone HTML report from the markdown document.
// With Charts set, the PNG charts are embedded inline.
type HTMLFormatter struct {
	Charts bool
}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Parse(htmlTemplateSource))

var markdownRenderer = goldmark.New(goldmark.WithExtensions(extension.GFM))

type htmlChart struct {
	Name string
	Src  template.URL
}

func (h HTMLFormatter) Format(report *domain.SimulationReport) ([]byte, error) {
	var body bytes.Buffer
	if err := markdownRenderer.Convert([]byte(buildMarkdown(report)), &body); err != nil {
		return nil, fmt.Errorf("failed to convert markdown: %w", err)
	}

	var embedded []htmlChart
	if h.Charts {
		pngs, err := RenderCharts(report)
		if err != nil {
			return nil, err
		}
		for _, name := range []string{"growth", "paths", "histogram", "comparison"} {
			if b, ok := pngs[name]; ok {
				embedded = append(embedded, htmlChart{Name: name, Src: pngDataURL(b)})
			}
		}
	}

	data := struct {
		Title     string
		RunID     string
		Generated string
		Body      template.HTML
		Charts    []htmlChart
	}{
		Title:     "Investment Simulation Report",
		RunID:     report.RunID,
		Generated: report.GeneratedAt.Format("2006-01-02 15:04:05"),
		Body:      template.HTML(body.String()),
		Charts:    embedded,
	}
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
