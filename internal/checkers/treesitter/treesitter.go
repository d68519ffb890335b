// Package treesitter wraps the tree-sitter runtime for the checkers that
// delegate to a full grammar. Tree-sitter recovers from malformed input,
// so a single parse yields every ERROR and MISSING node in the document.
package treesitter

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// maxExcerpt bounds the source text quoted in a diagnostic.
const maxExcerpt = 40

// Diagnostic describes one node the parser could not fit into the grammar.
type Diagnostic struct {
	// Line is 1-based.
	Line int
	// Column is 0-based, in bytes.
	Column int
	// Missing is true when the parser inserted a token that was absent
	// from the input. NodeType then names that token.
	Missing bool
	// NodeType is the grammar symbol of the node.
	NodeType string
	// ParentType is the grammar symbol of the enclosing node, if any.
	ParentType string
	// Excerpt is the start of the offending source text.
	Excerpt string
}

// Tree is a parsed document. Close must be called to release it.
type Tree struct {
	tree *sitter.Tree
	src  []byte
}

// Parse parses src with lang. A fresh parser is used per call because
// tree-sitter parsers are not safe for concurrent use.
func Parse(ctx context.Context, lang *sitter.Language, src []byte) (*Tree, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(lang)

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("tree-sitter parse: %w", err)
	}
	if tree == nil {
		return nil, fmt.Errorf("tree-sitter parse: no tree produced")
	}
	return &Tree{tree: tree, src: src}, nil
}

// Close releases the tree.
func (t *Tree) Close() {
	t.tree.Close()
}

// Root returns the root node.
func (t *Tree) Root() *sitter.Node {
	return t.tree.RootNode()
}

// Source returns the parsed bytes.
func (t *Tree) Source() []byte {
	return t.src
}

// Walk visits nodes in document order. Children of a node are skipped
// when visit returns false.
func (t *Tree) Walk(visit func(n *sitter.Node) bool) {
	stack := []*sitter.Node{t.Root()}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n == nil || !visit(n) {
			continue
		}
		for i := int(n.ChildCount()) - 1; i >= 0; i-- {
			stack = append(stack, n.Child(i))
		}
	}
}

// Errors returns a diagnostic for every ERROR and MISSING node, in document
// order. Nodes nested inside an ERROR node are not reported separately.
func (t *Tree) Errors() []Diagnostic {
	if !t.Root().HasError() {
		return nil
	}

	var diags []Diagnostic
	t.Walk(func(n *sitter.Node) bool {
		switch {
		case n.IsMissing():
			diags = append(diags, t.Diagnose(n))
			return false
		case n.IsError():
			diags = append(diags, t.Diagnose(n))
			return false
		default:
			return n.HasError()
		}
	})
	return diags
}

// Diagnose builds a diagnostic for n.
func (t *Tree) Diagnose(n *sitter.Node) Diagnostic {
	pt := n.StartPoint()
	d := Diagnostic{
		Line:     int(pt.Row) + 1,
		Column:   int(pt.Column),
		Missing:  n.IsMissing(),
		NodeType: n.Type(),
		Excerpt:  Excerpt(n.Content(t.src)),
	}
	if p := n.Parent(); p != nil {
		d.ParentType = p.Type()
	}
	return d
}

// Excerpt returns the first line of s, trimmed and shortened for messages.
func Excerpt(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = strings.TrimSpace(s[:i])
	}
	if r := []rune(s); len(r) > maxExcerpt {
		s = string(r[:maxExcerpt]) + "..."
	}
	return s
}
