package checkers

import (
	"github.com/custodia-labs/snipcheck/internal/checkers/html"
	"github.com/custodia-labs/snipcheck/internal/checkers/javascript"
	"github.com/custodia-labs/snipcheck/internal/checkers/python"
	"github.com/custodia-labs/snipcheck/internal/checkers/stylesheet"
	"github.com/custodia-labs/snipcheck/internal/checkers/vue"
	"github.com/custodia-labs/snipcheck/internal/core/domain"
	"github.com/custodia-labs/snipcheck/internal/core/ports/driven"
)

// Builtin returns every checker configured from settings.
// css compiles plain stylesheets; scss compiles preprocessor stylesheets and
// the style region of single-file components.
func Builtin(settings *domain.Settings, css, scss driven.StylesheetCompiler) []driven.Checker {
	if settings == nil {
		settings = domain.DefaultSettings()
	}

	scssChecker := stylesheet.New(scss, "scss")

	return []driven.Checker{
		python.New(),
		html.New(html.WithIgnoredCategories(settings.HTML.IgnoreCategories...)),
		javascript.New(),
		stylesheet.New(css, "css"),
		scssChecker,
		vue.New(scssChecker, vue.WithBalancedTags(settings.Composite.BalancedTags...)),
	}
}
