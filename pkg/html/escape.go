package html

import (
	stdhtml "html"
	"html/template"
	"strings"

	"github.com/julvo/htmlgo"
)

// htmlgo parses every element's rendered children as template source, so
// braces in data must never reach the output unescaped.
var braceReplacer = strings.NewReplacer("{", "&#123;", "}", "&#125;")

func escapeText(s string) string {
	return braceReplacer.Replace(stdhtml.EscapeString(s))
}

// text is htmlgo.Text for data that did not come from this package.
func text(s string) htmlgo.HTML {
	return htmlgo.Text_("\n" + escapeText(s))
}

// attrValue is passed as the data of a value-like attribute such as
// a.Value or a.Content. It is already escaped, so html/template only
// normalizes it.
func attrValue(s string) template.HTML {
	return template.HTML(escapeText(s))
}
