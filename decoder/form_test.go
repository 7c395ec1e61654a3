package decoder_test

import (
	"io"
	"strings"

	"code.cloudfoundry.org/echodemo/decoder"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

type countingReader struct {
	reader io.Reader
	reads  int
}

func (r *countingReader) Read(p []byte) (int, error) {
	r.reads++

	return r.reader.Read(p)
}

var _ = Describe("DecodeFormBody", func() {
	var (
		body          *countingReader
		contentLength int64
		values        *decoder.Values
		err           error
	)

	BeforeEach(func() {
		body = &countingReader{reader: strings.NewReader("foo=1&bar=2&bar=3")}
		contentLength = 17
	})

	JustBeforeEach(func() {
		values, err = decoder.DecodeFormBody(contentLength, body)
	})

	It("decodes the body like a query string", func() {
		Expect(err).NotTo(HaveOccurred())
		Expect(values.Keys()).To(Equal([]string{"foo", "bar"}))
		Expect(values.Get("bar")).To(Equal([]string{"2", "3"}))
	})

	When("the content length is zero", func() {
		BeforeEach(func() {
			contentLength = 0
		})

		It("returns empty values without reading the body", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(values.Len()).To(BeZero())
			Expect(body.reads).To(BeZero())
		})
	})

	When("the content length is absent", func() {
		BeforeEach(func() {
			contentLength = -1
		})

		It("returns empty values without reading the body", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(values.Len()).To(BeZero())
			Expect(body.reads).To(BeZero())
		})
	})

	When("the content length is shorter than the body", func() {
		BeforeEach(func() {
			contentLength = 5
		})

		It("reads exactly content length bytes", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(values.Keys()).To(Equal([]string{"foo"}))
			Expect(values.Get("foo")).To(Equal([]string{"1"}))
		})
	})

	When("the body is truncated", func() {
		BeforeEach(func() {
			contentLength = 100
		})

		It("returns an error", func() {
			Expect(err).To(MatchError(ContainSubstring("read 17 of 100 body bytes")))
		})
	})
})
