package utils

import (
	"net/url"
	"path"
	"strings"
	"unicode"
	"unicode/utf8"
)

// SlugToTitle turns "oak-classic" into "Oak Classic".
func SlugToTitle(slug string) string {
	words := getSlicedSlug(slug)

	for i, word := range words {
		first, size := utf8.DecodeRuneInString(word)
		words[i] = string(unicode.ToUpper(first)) + word[size:]
	}

	return strings.Join(words, " ")
}

// CanonicalURL joins a site base URL and a page path, e.g.:
// https://stara.com + /collections/modern-series
func CanonicalURL(baseURL, pagePath string) string {
	u, err := url.Parse(baseURL)
	if err != nil || u.Host == "" {
		return pagePath
	}

	u.Path = path.Join("/", u.Path, pagePath)
	if strings.HasSuffix(pagePath, "/") && u.Path != "/" {
		u.Path += "/"
	}

	return u.String()
}

// TelURL builds a tel: link for a display phone number.
func TelURL(phone string) string {
	return "tel:" + strings.ReplaceAll(strings.TrimSpace(phone), " ", "")
}

func getSlicedSlug(slug string) []string {
	out := []string{}

	for _, word := range strings.Split(strings.Trim(slug, "/"), "-") {
		if word != "" {
			out = append(out, word)
		}
	}

	return out
}
