package format

import (
	"encoding/json"
	"io"
)

type JSONEncoder struct {
	w      io.Writer
	report Report
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(report Report) error {
	e.report = report
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	text = append(text, '\n')
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(e.buildReportData(), "", "  ")
}

type jsonReport struct {
	Report
	OK   bool      `json:"ok"`
	Tree *jsonNode `json:"tree,omitempty"`
}

func (e *JSONEncoder) buildReportData() jsonReport {
	return jsonReport{
		Report: e.report,
		OK:     e.report.OK(),
		Tree:   nodeToJSON(e.report.Tree),
	}
}
