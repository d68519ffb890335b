// Package segment locates the template, script and style regions of a
// single-file component by their boundary tags, without parsing them.
package segment

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/snipcheck/internal/core/domain"
)

const templateClose = "</template>"

// Pre-compiled boundary patterns.
var (
	templateOpen = regexp.MustCompile(`<template(?:\s[^>]*)?>`)
	scriptBlock  = regexp.MustCompile(`(?s)<script[^>]*>(.*?)</script>`)
	styleBlock   = regexp.MustCompile(`(?s)<style[^>]*>(.*?)</style>`)
)

// Extract locates all three regions of a component.
func Extract(content string) domain.SegmentExtraction {
	return domain.SegmentExtraction{
		Template: Template(content),
		Script:   Script(content),
		Style:    Style(content),
	}
}

// Template returns the region between the first opening template tag and
// the last closing one. The last closer is used because templates may
// contain nested template elements. Returns nil if either tag is missing.
func Template(content string) *domain.Span {
	loc := templateOpen.FindStringIndex(content)
	if loc == nil {
		return nil
	}
	start := loc[1]

	end := strings.LastIndex(content, templateClose)
	if end < start {
		return nil
	}

	return &domain.Span{Start: start, End: end, Body: content[start:end]}
}

// Script returns the body of the first script element, or nil.
func Script(content string) *domain.Span {
	return firstBlock(scriptBlock, content)
}

// Style returns the body of the first style element, or nil.
// An element with no content yields a span with an empty body.
func Style(content string) *domain.Span {
	return firstBlock(styleBlock, content)
}

// firstBlock returns the first capture group of re as a span.
func firstBlock(re *regexp.Regexp, content string) *domain.Span {
	m := re.FindStringSubmatchIndex(content)
	if m == nil {
		return nil
	}
	start, end := m[2], m[3]
	return &domain.Span{Start: start, End: end, Body: content[start:end]}
}
