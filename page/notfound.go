package page

import (
	"net/http"
	"strings"
	"unicode"
)

func NotFound(path string) *Response {
	return Text(http.StatusNotFound, "error 404 not found: "+stripControl(path))
}

func stripControl(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}

		return r
	}, s)
}
