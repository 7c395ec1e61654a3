package page

import (
	"fmt"
	"net/http"
	"strings"

	"code.cloudfoundry.org/echodemo/decoder"
)

const indexHTML = `<html>
<title>echo demo</title>
<body>
<p><a href="demoget">demo get</a></p>
<p><a href="demopost">demo post</a></p>
<p><a href="democookie">demo cookie</a></p>
<p><a href="demoerror">demo error page</a> (page does not exist)</p>
</body>
</html>
`

func Index() *Response {
	return HTML(http.StatusOK, indexHTML)
}

func DemoGet(query *decoder.Values) *Response {
	var b strings.Builder
	b.WriteString(`<html>
<title>echo get demo</title>
<body>
<p><a href="?foo=bar">one key</a></p>
<p><a href="?foo=bar&amp;bar=baz">two keys</a></p>
<p><a href="?foo=bar&amp;foo=baz">one key repeated</a></p>
<p>query get</p>
`)
	writeValues(&b, query)
	b.WriteString(`<p><a href="/">back</a></p>
</body>
</html>
`)

	return HTML(http.StatusOK, b.String())
}

func DemoPost(form *decoder.Values) *Response {
	var b strings.Builder
	b.WriteString(`<html>
<title>echo post demo</title>
<body>
<form action="" method="post">
<p>foo: <input type="text" name="foo" value="1"></p>
<p>bar: <input type="text" name="bar" value="2"></p>
<p>bar: <input type="text" name="bar"> (key repeated)</p>
<p><input type="submit" value="submit"></p>
</form>
<p>query post</p>
`)
	writeValues(&b, form)
	b.WriteString(`<p><a href="/">back</a></p>
</body>
</html>
`)

	return HTML(http.StatusOK, b.String())
}

func DemoCookie(jar *decoder.Jar) *Response {
	var b strings.Builder
	b.WriteString(`<html>
<title>echo cookie demo</title>
<body>
<p>cookies</p>
<ul>
`)
	for _, c := range jar.Cookies() {
		fmt.Fprintf(&b, "<li>%s=%s</li>\n", decoder.Escape(c.Name), decoder.Escape(c.Value))
	}
	b.WriteString(`</ul>
<p><a href="setcookie1">set cookie 1</a></p>
<p><a href="setcookie2">set cookie 2</a></p>
<p><a href="delcookie1">del cookie 1</a></p>
<p><a href="delcookie2">del cookie 2</a></p>
<p><a href="/">back to main</a></p>
</body>
</html>
`)

	return HTML(http.StatusOK, b.String())
}

func writeValues(b *strings.Builder, values *decoder.Values) {
	b.WriteString("<ul>\n")
	for _, key := range values.Keys() {
		for _, value := range values.Get(key) {
			fmt.Fprintf(b, "<li>%s: %s</li>\n", decoder.Escape(key), decoder.Escape(value))
		}
	}
	b.WriteString("</ul>\n")
}
