// Package vue provides a Checker for single-file components.
//
// No grammar covers a component's envelope together with the markup, script
// and stylesheet it embeds, so the checker splits the document into its
// regions and checks each one on its own:
//
//  1. the template region must exist and a fixed set of common tags must
//     balance inside it;
//  2. the script region must exist and its curly braces must balance;
//  3. a non-empty style region, if any, must compile.
//
// The first failure is returned. The tag and brace checks are counting
// heuristics (see package balance); they catch gross structural mistakes,
// not every defect. Braces inside strings, comments and regular expression
// literals are counted like any other.
package vue

import (
	"context"

	"github.com/custodia-labs/snipcheck/internal/checkers/balance"
	"github.com/custodia-labs/snipcheck/internal/checkers/segment"
	"github.com/custodia-labs/snipcheck/internal/core/domain"
	"github.com/custodia-labs/snipcheck/internal/core/ports/driven"
	"github.com/custodia-labs/snipcheck/internal/logger"
)

// Ensure Checker implements the interface.
var _ driven.Checker = (*Checker)(nil)

// Checker validates single-file components.
type Checker struct {
	style driven.Checker
	tags  []string
}

// Option configures a Checker.
type Option func(*Checker)

// WithBalancedTags replaces the template tags whose counts must agree.
func WithBalancedTags(tags ...string) Option {
	return func(c *Checker) {
		c.tags = tags
	}
}

// New creates a component checker. style validates the style region.
func New(style driven.Checker, opts ...Option) *Checker {
	c := &Checker{
		style: style,
		tags:  domain.DefaultBalancedTags,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name returns the checker name.
func (c *Checker) Name() string {
	return "vue"
}

// Extensions returns the extensions this checker handles.
func (c *Checker) Extensions() []string {
	return []string{"vue"}
}

// Check validates the template, script and style regions in that order.
func (c *Checker) Check(ctx context.Context, content string) domain.CheckResult {
	template := segment.Template(content)
	if template == nil {
		return domain.ExtractionFailure(domain.SegmentTemplate)
	}
	if result := c.checkTemplate(template.Body); !result.OK() {
		return result
	}

	script := segment.Script(content)
	if script == nil {
		return domain.ExtractionFailure(domain.SegmentScript)
	}
	if result := balance.Scan(script.Body, balance.Braces); !result.OK() {
		return result
	}

	style := segment.Style(content)
	switch {
	case style == nil:
		logger.Debug("vue: no style region")
		return domain.OK()
	case style.IsEmpty():
		logger.Debug("vue: empty style region at offset %d, skipping", style.Start)
		return domain.OK()
	}
	return c.style.Check(ctx, style.Body)
}

// checkTemplate returns the first tag whose open and close counts disagree.
func (c *Checker) checkTemplate(body string) domain.CheckResult {
	for _, tag := range c.tags {
		if result := balance.Scan(body, balance.TagPair(tag)); !result.OK() {
			return result
		}
	}
	return domain.OK()
}
