package checkers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/snipcheck/internal/adapters/driven/esbuild"
	"github.com/custodia-labs/snipcheck/internal/adapters/driven/libsass"
	"github.com/custodia-labs/snipcheck/internal/adapters/driven/sass"
	"github.com/custodia-labs/snipcheck/internal/checkers/stylesheet"
	"github.com/custodia-labs/snipcheck/internal/core/domain"
	"github.com/custodia-labs/snipcheck/internal/core/ports/driven"
)

// builtinByExtension wires the checkers the way the command does when no
// Dart Sass binary is installed.
func builtinByExtension(t *testing.T, settings *domain.Settings) map[string]driven.Checker {
	t.Helper()
	dartSass := sass.New("snipcheck-no-such-sass", time.Second)
	t.Cleanup(func() { _ = dartSass.Close() })

	css := stylesheet.NewFallback(dartSass, esbuild.NewCSSCompiler())
	scss := stylesheet.NewFallback(dartSass, libsass.New())
	all := Builtin(settings, css, scss)
	byExt := make(map[string]driven.Checker)
	for _, c := range all {
		for _, ext := range c.Extensions() {
			_, dup := byExt[ext]
			require.False(t, dup, "extension %s registered twice", ext)
			byExt[ext] = c
		}
	}
	return byExt
}

func TestBuiltin_Extensions(t *testing.T) {
	byExt := builtinByExtension(t, nil)

	assert.Len(t, byExt, 7)
	for _, ext := range []string{"py", "html", "htm", "js", "css", "scss", "vue"} {
		assert.Contains(t, byExt, ext)
	}
	assert.Same(t, byExt["html"], byExt["htm"])
}

func TestBuiltin_Snippets(t *testing.T) {
	byExt := builtinByExtension(t, domain.DefaultSettings())
	ctx := context.Background()

	tests := []struct {
		ext     string
		content string
		valid   bool
	}{
		{"py", "def f(x):\n    return x\n", true},
		{"py", "def f(:\n", false},
		{"html", "<html><body><p>hi</p></body></html>", true},
		{"js", "export const a = 1;\n", true},
		{"js", "const = ;\n", false},
		{"css", ".a { color: red; }", true},
		{"css", ".a { color: red;", false},
		{"scss", "@import \"vars\";\n.a { color: red; }", true},
		{"scss", "$c: red;\n.a { .b { color: $c; } }", true},
		{"scss", ".a { color: red;", false},
		{"scss", ".a { color: red; } }", false},
		{"scss", ".a { color: $undefined; }", false},
		{"vue", "<template><div></template><script></script>", false},
		{"vue", "<template><div>x</div></template><script>let a = {b: 1};</script><style>.a{color:red;</style>", false},
	}

	for _, tt := range tests {
		t.Run(tt.ext+"/"+tt.content, func(t *testing.T) {
			result := byExt[tt.ext].Check(ctx, tt.content)
			assert.Equal(t, tt.valid, result.OK(), result.String())
		})
	}
}

func TestBuiltin_BalancedTagsFromSettings(t *testing.T) {
	settings := domain.DefaultSettings()
	settings.Composite.BalancedTags = []string{"section"}
	byExt := builtinByExtension(t, settings)

	result := byExt["vue"].Check(context.Background(), "<template><section></template><script></script>")

	require.False(t, result.OK())
	assert.Equal(t, "Invalid syntax, mismatch of <section and </section>", result.Message)
}

func TestSampleComponent_IsValid(t *testing.T) {
	byExt := builtinByExtension(t, nil)

	result := byExt["vue"].Check(context.Background(), SampleComponent)

	assert.True(t, result.OK(), result.String())
	assert.Equal(t, "Valid syntax", result.String())
}
