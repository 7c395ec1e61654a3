package decoder

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
)

// DecodeFormBody reads exactly contentLength bytes from body and decodes them
// like a query string. A non-positive length means there is no body and body
// is left untouched.
func DecodeFormBody(contentLength int64, body io.Reader) (*Values, error) {
	if contentLength <= 0 || body == nil {
		return NewValues(), nil
	}

	var buf bytes.Buffer
	n, err := io.CopyN(&buf, body, contentLength)
	if err != nil {
		return nil, errors.Wrapf(err, "read %d of %d body bytes", n, contentLength)
	}

	return DecodeQuery(buf.String()), nil
}
