// Package python provides a Checker for Python source. It parses the
// snippet with the complete tree-sitter Python grammar and reports the
// first node the grammar rejects.
package python

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	"github.com/custodia-labs/snipcheck/internal/checkers/treesitter"
	"github.com/custodia-labs/snipcheck/internal/core/domain"
	"github.com/custodia-labs/snipcheck/internal/core/ports/driven"
)

// Ensure Checker implements the interface.
var _ driven.Checker = (*Checker)(nil)

// lineAdjust is added to the 1-based line of the first syntax error before
// it is reported. The code generation pipeline has always received the
// parser line minus one and numbers its prompts accordingly.
const lineAdjust = -1

// legacyStatements are Python 2 statements the grammar still parses.
// Python 3 rejects them.
var legacyStatements = map[string]string{
	"print_statement": "Missing parentheses in call to 'print'. Did you mean print(...)?",
	"exec_statement":  "Missing parentheses in call to 'exec'. Did you mean exec(...)?",
}

// Checker validates Python snippets.
type Checker struct{}

// New creates a new Python checker.
func New() *Checker {
	return &Checker{}
}

// Name returns the checker name.
func (c *Checker) Name() string {
	return "python"
}

// Extensions returns the extensions this checker handles.
func (c *Checker) Extensions() []string {
	return []string{"py"}
}

// Check parses content as a Python module.
func (c *Checker) Check(ctx context.Context, content string) domain.CheckResult {
	tree, err := treesitter.Parse(ctx, python.GetLanguage(), []byte(content))
	if err != nil {
		return domain.ToolError(fmt.Sprintf("Error: %v", err))
	}
	defer tree.Close()

	d, text, found := firstProblem(tree)
	if !found {
		return domain.OK()
	}

	line := d.Line + lineAdjust
	msg := fmt.Sprintf("Syntax Error: %s (line %d)", text, line)
	return domain.GrammarError(msg, domain.LineAt(line))
}

// firstProblem returns the earliest parse error or legacy statement.
func firstProblem(tree *treesitter.Tree) (treesitter.Diagnostic, string, bool) {
	var (
		first treesitter.Diagnostic
		text  string
		found bool
	)
	if diags := tree.Errors(); len(diags) > 0 {
		first, text, found = diags[0], describe(diags[0]), true
	}

	var legacy *sitter.Node
	tree.Walk(func(n *sitter.Node) bool {
		if legacy != nil {
			return false
		}
		if _, ok := legacyStatements[n.Type()]; ok && !isShiftExpression(n) {
			legacy = n
			return false
		}
		return true
	})
	if legacy == nil {
		return first, text, found
	}

	d := tree.Diagnose(legacy)
	if found && !before(d, first) {
		return first, text, found
	}
	return d, legacyStatements[d.NodeType], true
}

// isShiftExpression reports whether n is "print >>f, x", which Python 3
// reads as a tuple holding a shift expression.
func isShiftExpression(n *sitter.Node) bool {
	for i := 0; i < int(n.ChildCount()); i++ {
		if n.Child(i).Type() == "chevron" {
			return true
		}
	}
	return false
}

func before(a, b treesitter.Diagnostic) bool {
	if a.Line != b.Line {
		return a.Line < b.Line
	}
	return a.Column < b.Column
}

// describe phrases a diagnostic the way Python's own parser would.
func describe(d treesitter.Diagnostic) string {
	if d.Missing {
		return fmt.Sprintf("expected '%s'", d.NodeType)
	}
	if d.Excerpt == "" {
		return "invalid syntax"
	}
	return fmt.Sprintf("invalid syntax near '%s'", d.Excerpt)
}
