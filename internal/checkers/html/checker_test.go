package html

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/snipcheck/internal/core/domain"
)

const validPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>Test</title>
  <link rel="stylesheet" href="style.css">
</head>
<body>
  <div class="card">
    <p>Hello <span>world</span></p>
    <img src="a.png" alt="a">
    <br>
  </div>
  <script>let a = 1 < 2;</script>
</body>
</html>
`

func TestChecker_Metadata(t *testing.T) {
	c := New()

	assert.Equal(t, "html", c.Name())
	assert.Equal(t, []string{"html", "htm"}, c.Extensions())
}

func TestChecker_Valid(t *testing.T) {
	result := New().Check(context.Background(), validPage)

	assert.True(t, result.OK(), result.String())
}

func TestChecker_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"stray end tag", "<div></div></span>"},
		{"mismatched nesting", "<div><span>x</div>"},
		{"unclosed element", "<section><div>x</div>"},
	}

	c := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := c.Check(context.Background(), tt.content)

			require.False(t, result.OK())
			assert.Equal(t, domain.KindGrammar, result.Kind)
			assert.Contains(t, result.Message, "HTML line ")
			require.NotNil(t, result.Line)
			assert.Equal(t, 1, *result.Line)
		})
	}
}

func TestChecker_StrayEndTagMessage(t *testing.T) {
	result := New().Check(context.Background(), "<div></div>\n</span>")

	require.False(t, result.OK())
	assert.Equal(t, "HTML line 2: Unexpected end tag : span", result.Message)
}

func TestChecker_FirstDiagnosticWins(t *testing.T) {
	content := "<p>ok</p>\n</em>\n</strong>\n"

	diags, err := Diagnose(context.Background(), content)
	require.NoError(t, err)
	require.Len(t, diags, 2)

	result := New().Check(context.Background(), content)

	require.False(t, result.OK())
	assert.Contains(t, result.Message, "em")
	assert.NotContains(t, result.Message, "strong")
}

func TestChecker_IgnoredCategories(t *testing.T) {
	content := "<div></div></span>"

	t.Run("filter is inert by default", func(t *testing.T) {
		assert.False(t, New().Check(context.Background(), content).OK())
	})

	t.Run("tag diagnostics ignored", func(t *testing.T) {
		c := New(WithIgnoredCategories(domain.CategoryTag))
		assert.True(t, c.Check(context.Background(), content).OK())
	})

	t.Run("unrelated category still fails", func(t *testing.T) {
		c := New(WithIgnoredCategories(domain.CategoryAttribute))
		assert.False(t, c.Check(context.Background(), content).OK())
	})

	t.Run("all categories ignored", func(t *testing.T) {
		c := New(WithIgnoredCategories(domain.CategorySyntax, domain.CategoryTag, domain.CategoryAttribute))
		assert.True(t, c.Check(context.Background(), "<div><<<>></span>").OK())
	})
}

func TestChecker_InvalidUTF8(t *testing.T) {
	result := New().Check(context.Background(), "<p>\xff\xfe</p>")

	require.False(t, result.OK())
	assert.Equal(t, domain.KindTool, result.Kind)
	assert.Contains(t, result.Message, "Html error occurred")
	assert.Contains(t, result.Message, "byte 3")
}

func TestDiagnose_Categories(t *testing.T) {
	diags, err := Diagnose(context.Background(), "<div></div></b>")

	require.NoError(t, err)
	require.NotEmpty(t, diags)
	assert.Equal(t, domain.CategoryTag, diags[0].Category)
}

func TestInvalidOffset(t *testing.T) {
	assert.Equal(t, 0, invalidOffset("\xff"))
	assert.Equal(t, 2, invalidOffset("ab\xff"))
	assert.Equal(t, 3, invalidOffset("abc"))
}
