package page

import (
	_ "embed"
	"net/http"

	"code.cloudfoundry.org/echodemo"
)

//go:embed favicon.ico
var favicon []byte

func Favicon() *Response {
	return newResponse(http.StatusOK, echodemo.ContentTypeIcon, favicon, nil)
}
