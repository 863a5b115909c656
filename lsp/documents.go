package lsp

import (
	"sync"

	"github.com/dhamidi/chomp/calc"
	"github.com/dhamidi/chomp/format"
)

// Document is an open calc document and the result of evaluating it.
type Document struct {
	URI     string
	Version int32
	Text    string
	Report  format.Report
}

// Documents holds open documents keyed by URI. Handlers run on the
// server's connection goroutine, but hover and change may interleave.
type Documents struct {
	mu   sync.RWMutex
	docs map[string]*Document
	env  calc.Env
}

func NewDocuments(env calc.Env) *Documents {
	return &Documents{
		docs: make(map[string]*Document),
		env:  env,
	}
}

// Update replaces the text of uri and re-evaluates it.
func (d *Documents) Update(uri string, version int32, text string) *Document {
	doc := &Document{
		URI:     uri,
		Version: version,
		Text:    text,
		Report:  Check(text, d.env),
	}
	d.mu.Lock()
	d.docs[uri] = doc
	d.mu.Unlock()
	return doc
}

func (d *Documents) Get(uri string) *Document {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.docs[uri]
}

func (d *Documents) Close(uri string) {
	d.mu.Lock()
	delete(d.docs, uri)
	d.mu.Unlock()
}

// Check parses and evaluates text.
func Check(text string, env calc.Env) format.Report {
	r := format.Report{Source: text}
	tree, err := calc.Parse(text)
	if err != nil {
		r.Diagnostics = format.Diagnose(err)
		return r
	}
	r.Tree = tree
	v, err := calc.Eval(tree, env)
	if err != nil {
		r.Diagnostics = format.Diagnose(err)
		return r
	}
	r.Value = v.String()
	return r
}
