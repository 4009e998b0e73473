package server

//go:generate go tool templ generate -f index.templ

import (
	"strings"

	twmerge "github.com/Oudwins/tailwind-merge-go"
)

const (
	baseText   = "text-base text-gray-700"
	headerText = "text-2xl font-bold text-gray-900"
)

var (
	pageClass   = twmerge.Merge("mx-auto max-w-2xl p-6 text-sm", baseText)
	headerClass = twmerge.Merge(baseText, headerText)
)

func languageList(languages []string) string {
	if len(languages) == 0 {
		return "any language"
	}
	return strings.Join(languages, ", ")
}
