package output

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"
)

// Formatter renders a solve report in one output format
type Formatter interface {
	Name() string
	Format(report *Report) ([]byte, error)
}

// FormatterFunc adapts a function to the Formatter interface
type FormatterFunc struct {
	ID string
	F  func(report *Report) ([]byte, error)
}

func (f FormatterFunc) Name() string { return f.ID }

func (f FormatterFunc) Format(report *Report) ([]byte, error) { return f.F(report) }

var registry = map[string]Formatter{}

var aliases = map[string]string{
	"text": "console",
	"yml":  "yaml",
}

func register(f Formatter) { registry[f.Name()] = f }

func init() {
	register(ConsoleFormatter{})
	register(CSVBandsFormatter{})
	register(JSONFormatter{Pretty: true})
	register(YAMLFormatter{})
	register(HTMLFormatter{})
}

// GetFormatterByName returns the registered formatter for a name or alias, or nil
func GetFormatterByName(name string) Formatter {
	name = strings.ToLower(strings.TrimSpace(name))
	if target, ok := aliases[name]; ok {
		name = target
	}
	return registry[name]
}

// AvailableFormatterNames lists registered formatter names in sorted order
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases lists accepted aliases that are not formatter names
func AvailableFormatAliases() []string {
	out := make([]string, 0, len(aliases))
	for alias := range aliases {
		if _, isName := registry[alias]; !isName {
			out = append(out, alias)
		}
	}
	sort.Strings(out)
	return out
}

// WriteFormatted formats the report and saves it to a timestamped file in the
// working directory, returning the file name.
func WriteFormatted(f Formatter, report *Report, ext string) (string, error) {
	data, err := f.Format(report)
	if err != nil {
		return "", fmt.Errorf("%s formatter failed: %w", f.Name(), err)
	}
	filename := fmt.Sprintf("swr_report_%s.%s", time.Now().Format("20060102_150405"), ext)
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return filename, nil
}

// Extension returns the conventional file extension for a formatter name
func Extension(name string) string {
	switch name {
	case "console":
		return "txt"
	default:
		return name
	}
}
