package decoder_test

import (
	"code.cloudfoundry.org/echodemo/decoder"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Escape", func() {
	It("escapes markup", func() {
		Expect(decoder.Escape("<script>")).To(Equal("&lt;script&gt;"))
	})

	It("escapes ampersands and quotes", func() {
		Expect(decoder.Escape(`a&b "c" 'd'`)).To(Equal("a&amp;b &#34;c&#34; &#39;d&#39;"))
	})

	It("is not idempotent", func() {
		Expect(decoder.Escape(decoder.Escape("<"))).To(Equal("&amp;lt;"))
	})
})
