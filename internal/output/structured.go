package output

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// structuredReport is the machine readable shape shared by JSON and YAML
type structuredReport struct {
	Report  `yaml:",inline"`
	Summary Summary `json:"summary" yaml:"summary"`
}

// JSONFormatter formats a report as JSON
type JSONFormatter struct {
	Pretty bool // If true, format with indentation
}

func (JSONFormatter) Name() string { return "json" }

func (jf JSONFormatter) Format(report *Report) ([]byte, error) {
	out := structuredReport{Report: *report, Summary: report.Summarize()}

	var data []byte
	var err error
	if jf.Pretty {
		data, err = json.MarshalIndent(out, "", "  ")
	} else {
		data, err = json.Marshal(out)
	}
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// YAMLFormatter formats a report as YAML
type YAMLFormatter struct{}

func (YAMLFormatter) Name() string { return "yaml" }

func (YAMLFormatter) Format(report *Report) ([]byte, error) {
	return yaml.Marshal(structuredReport{Report: *report, Summary: report.Summarize()})
}
