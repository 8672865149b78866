package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/rpgo/investsim/internal/domain"
)

// allFormats are the formats written by GenerateReport with format "all".
var allFormats = []string{"console", "markdown", "csv", "detailed-csv", "json", "html"}

// GenerateReport writes the report in the given format into dir and returns
// the written file paths. Format "all" writes every file format plus the PNG charts.
func GenerateReport(report *domain.SimulationReport, format, dir string) ([]string, error) {
	if NormalizeFormatName(format) == "all" {
		var written []string
		for _, name := range allFormats {
			path, err := WriteFormatted(GetFormatterByName(name), report, dir, extensionFor(name))
			if err != nil {
				return written, fmt.Errorf("%s report: %w", name, err)
			}
			written = append(written, path)
		}
		charts, err := WriteCharts(report, dir)
		if err != nil {
			return written, err
		}
		return append(written, charts...), nil
	}

	f := GetFormatterByName(format)
	if f == nil {
		return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	path, err := WriteFormatted(f, report, dir, extensionFor(f.Name()))
	if err != nil {
		return nil, err
	}
	return []string{path}, nil
}

// SaveConfiguration writes a configuration file, TOML for a .toml extension
// and YAML otherwise.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	var (
		b   []byte
		err error
	)
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		b, err = toml.Marshal(config)
	default:
		b, err = yaml.Marshal(config)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}
	return os.WriteFile(filename, b, 0644)
}
