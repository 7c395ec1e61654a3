package page

import (
	"net/http"

	"code.cloudfoundry.org/echodemo"
)

type Header struct {
	Name  string
	Value string
}

// Response is a complete reply: status, ordered headers and body.
type Response struct {
	Status  int
	Headers []Header
	Body    []byte
}

// Header returns the first value of the named header, or "".
func (r *Response) Header(name string) string {
	for _, h := range r.Headers {
		if http.CanonicalHeaderKey(h.Name) == http.CanonicalHeaderKey(name) {
			return h.Value
		}
	}

	return ""
}

func HTML(status int, body string, headers ...Header) *Response {
	return newResponse(status, echodemo.ContentTypeHTML, []byte(body), headers)
}

func Text(status int, body string, headers ...Header) *Response {
	return newResponse(status, echodemo.ContentTypeText, []byte(body), headers)
}

func newResponse(status int, contentType string, body []byte, headers []Header) *Response {
	return &Response{
		Status:  status,
		Headers: append([]Header{{Name: "Content-Type", Value: contentType}}, headers...),
		Body:    body,
	}
}
