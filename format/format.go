package format

import (
	"encoding"
	"fmt"
)

// Encoder writes a Report in one output format.
type Encoder interface {
	encoding.TextMarshaler
	Encode(report Report) error
}

// New returns the encoder for the named format: json, yaml or text.
func New(name string, opts Options) (Encoder, error) {
	switch name {
	case "json":
		return NewJSONEncoder(opts.Writer), nil
	case "yaml":
		return NewYAMLEncoder(opts.Writer), nil
	case "text", "":
		return NewLineEncoder(opts.Writer, opts.Color), nil
	}
	return nil, fmt.Errorf("unknown format: %s", name)
}
