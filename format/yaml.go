package format

import (
	"io"

	"github.com/goccy/go-yaml"
)

type YAMLEncoder struct {
	w      io.Writer
	report Report
}

func NewYAMLEncoder(w io.Writer) *YAMLEncoder {
	return &YAMLEncoder{w: w}
}

func (e *YAMLEncoder) Encode(report Report) error {
	e.report = report
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

type yamlReport struct {
	File        string       `yaml:"file,omitempty"`
	OK          bool         `yaml:"ok"`
	Value       string       `yaml:"value,omitempty"`
	Tree        *jsonNode    `yaml:"tree,omitempty"`
	Diagnostics []Diagnostic `yaml:"diagnostics,omitempty"`
}

func (e *YAMLEncoder) MarshalText() ([]byte, error) {
	r := e.report
	return yaml.Marshal(yamlReport{
		File:        r.File,
		OK:          r.OK(),
		Value:       r.Value,
		Tree:        nodeToJSON(r.Tree),
		Diagnostics: r.Diagnostics,
	})
}
