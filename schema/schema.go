// Package schema defines the document schema of codepad documents and
// converts editor states to schema documents.
//
// The editor edits plain lines; the schema form is what hosts persist or
// exchange with other ProseMirror-compatible tooling. A codepad document
// is a doc holding a single code_block whose text is the editor text.
package schema

import (
	"fmt"

	"github.com/cozy/prosemirror-go/model"

	"github.com/iw2rmb/codepad/state"
)

var noMarks = ""

// Nodes are the node specs of the schema.
var Nodes = []*model.NodeSpec{
	// The top level document node.
	{Key: "doc", Content: "block+"},

	// A code listing: plain text, newlines included, no marks.
	{Key: "code_block", Content: "text*", Marks: &noMarks, Group: "block"},

	// A plain paragraph textblock.
	{Key: "paragraph", Content: "inline*", Group: "block"},

	// The text node.
	{Key: "text", Group: "inline"},

	// A hard line break inside a paragraph. Only text is inline by
	// default, so the flag is required for the inline group.
	{Key: "hard_break", Group: "inline", Inline: true},
}

// Marks are the mark specs of the schema.
var Marks = []*model.MarkSpec{
	{Key: "em"},
	{Key: "strong"},
	{Key: "code"},
}

// Schema is the codepad document schema.
var Schema = mustNew()

// New builds a fresh schema from Nodes and Marks.
func New() (*model.Schema, error) {
	s, err := model.NewSchema(&model.SchemaSpec{Nodes: Nodes, Marks: Marks})
	if err != nil {
		return nil, fmt.Errorf("build schema: %w", err)
	}
	return s, nil
}

func mustNew() *model.Schema {
	s, err := New()
	if err != nil {
		panic(err)
	}
	return s
}

// DocFromText returns a doc holding text in a single code_block.
func DocFromText(text string) (*model.Node, error) {
	var content interface{}
	if text != "" {
		content = Schema.Text(text)
	}
	block, err := Schema.Node("code_block", nil, content)
	if err != nil {
		return nil, fmt.Errorf("create code_block: %w", err)
	}
	doc, err := Schema.Node("doc", nil, []*model.Node{block})
	if err != nil {
		return nil, fmt.Errorf("create doc: %w", err)
	}
	return doc, nil
}

// DocFromState returns the schema document for s.
func DocFromState(s state.State) (*model.Node, error) {
	return DocFromText(s.Text())
}

// TextFromDoc returns the text content of doc.
func TextFromDoc(doc *model.Node) string {
	if doc == nil {
		return ""
	}
	return doc.TextContent()
}
