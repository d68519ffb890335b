package html

import (
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/custodia-labs/snipcheck/internal/checkers/treesitter"
	"github.com/custodia-labs/snipcheck/internal/core/domain"
)

// Diagnostic is one entry of the markup diagnostic log.
type Diagnostic struct {
	Line     int
	Category domain.DiagnosticCategory
	Message  string
}

// Elements that never have an end tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// Elements whose end tag may be omitted.
var optionalEndElements = map[string]bool{
	"html": true, "head": true, "body": true, "p": true, "li": true,
	"dt": true, "dd": true, "option": true, "optgroup": true, "tr": true,
	"td": true, "th": true, "thead": true, "tbody": true, "tfoot": true,
	"colgroup": true, "rb": true, "rt": true, "rtc": true, "rp": true,
	"caption": true,
}

// Node types that hold attributes.
var attributeContexts = map[string]bool{
	"start_tag": true, "self_closing_tag": true, "attribute": true,
	"quoted_attribute_value": true, "attribute_value": true, "attribute_name": true,
}

// collect walks the tree and returns the diagnostic log in document order.
func collect(tree *treesitter.Tree) []Diagnostic {
	src := tree.Source()
	var diags []Diagnostic

	tree.Walk(func(n *sitter.Node) bool {
		switch {
		case n.IsMissing():
			d := tree.Diagnose(n)
			diags = append(diags, Diagnostic{
				Line:     d.Line,
				Category: categoryFor(n),
				Message:  fmt.Sprintf("Expected '%s'", d.NodeType),
			})
			return false

		case n.IsError():
			d := tree.Diagnose(n)
			category := categoryFor(n)
			msg := fmt.Sprintf("Invalid markup near '%s'", d.Excerpt)
			if category == domain.CategoryAttribute {
				msg = "error parsing attribute name"
			}
			diags = append(diags, Diagnostic{Line: d.Line, Category: category, Message: msg})
			return false

		case n.Type() == "erroneous_end_tag":
			diags = append(diags, Diagnostic{
				Line:     int(n.StartPoint().Row) + 1,
				Category: domain.CategoryTag,
				Message:  fmt.Sprintf("Unexpected end tag : %s", childText(n, "erroneous_end_tag_name", src)),
			})
			return false

		case n.Type() == "element":
			if d, ok := unclosed(n, src); ok {
				diags = append(diags, d)
			}
		}
		return true
	})

	return diags
}

// unclosed reports an element whose end tag is required but absent.
func unclosed(n *sitter.Node, src []byte) (Diagnostic, bool) {
	if n.ChildCount() == 0 {
		return Diagnostic{}, false
	}
	first := n.Child(0)
	if first.Type() != "start_tag" {
		return Diagnostic{}, false
	}
	name := strings.ToLower(childText(first, "tag_name", src))
	if name == "" || voidElements[name] || optionalEndElements[name] {
		return Diagnostic{}, false
	}
	last := n.Child(int(n.ChildCount()) - 1)
	if last.Type() == "end_tag" {
		return Diagnostic{}, false
	}

	msg := fmt.Sprintf("Opening and ending tag mismatch: %s", name)
	if int(n.EndByte()) >= len(strings.TrimRight(string(src), " \t\r\n")) {
		msg = fmt.Sprintf("Premature end of data in tag %s", name)
	}
	return Diagnostic{
		Line:     int(n.StartPoint().Row) + 1,
		Category: domain.CategoryTag,
		Message:  msg,
	}, true
}

// categoryFor classifies an ERROR or MISSING node by where it sits.
func categoryFor(n *sitter.Node) domain.DiagnosticCategory {
	if p := n.Parent(); p != nil && attributeContexts[p.Type()] {
		return domain.CategoryAttribute
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if attributeContexts[n.Child(i).Type()] && n.Child(i).Type() != "start_tag" {
			return domain.CategoryAttribute
		}
	}
	return domain.CategorySyntax
}

// childText returns the text of the first direct child of type typ.
func childText(n *sitter.Node, typ string, src []byte) string {
	for i := 0; i < int(n.ChildCount()); i++ {
		if c := n.Child(i); c.Type() == typ {
			return c.Content(src)
		}
	}
	return ""
}
