// Package html provides a Checker for HTML documents.
//
// Documents are parsed with the error-recovering tree-sitter HTML grammar so
// that one malformed construct does not hide the rest of the document. The
// parse produces a diagnostic log; the first diagnostic whose category is not
// ignored fails the check. Ignoring categories is useful for markup cut out of
// single-file components, where custom component tags and shorthand
// attributes produce tag and attribute noise.
package html
