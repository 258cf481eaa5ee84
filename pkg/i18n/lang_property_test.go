//go:build property

package i18n_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/dmitrymomot/toolsite/pkg/i18n"
)

func TestNegotiatorProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)
	n := i18n.NewNegotiator("en", siteLangs)

	properties.Property("match never returns an unsupported language", prop.ForAll(
		func(header string) bool {
			return slices.Contains(siteLangs, n.Match(header))
		},
		gen.AnyString(),
	))

	properties.Property("normalize is idempotent", prop.ForAll(
		func(code string) bool {
			first, ok := n.Normalize(code)
			if !ok {
				return first == ""
			}
			second, ok := n.Normalize(first)
			return ok && second == first
		},
		gen.OneGenOf(gen.AlphaString(), gen.OneConstOf("es-MX", "PT-br", "zh-Hant", "de-AT", "ja")),
	))

	properties.Property("a supported language always matches itself", prop.ForAll(
		func(lang string, region string) bool {
			header := lang
			if region != "" {
				header = lang + "-" + strings.ToUpper(region)
			}
			return n.Match(header) == lang
		},
		gen.OneConstOf("en", "es", "fr", "de", "pt", "ja"),
		gen.OneConstOf("", "us", "mx", "ca", "br"),
	))

	properties.TestingRun(t)
}
