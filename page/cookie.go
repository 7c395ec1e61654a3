package page

import (
	"fmt"
	"net/http"

	"code.cloudfoundry.org/echodemo/decoder"
)

type Action string

const (
	Set    Action = "set"
	Delete Action = "del"
)

// CookieAction sets or expires cookie{number}. It never looks at the cookies
// the browser sent.
func CookieAction(action Action, number int) *Response {
	cookie := decoder.Cookie{
		Name:  fmt.Sprintf("cookie%d", number),
		Value: fmt.Sprintf("cookie number %d", number),
	}
	if action == Delete {
		expired := 0
		cookie.MaxAge = &expired
	}

	body := fmt.Sprintf(`<html>
<title>echo cookie demo action</title>
<body>
<p>cookie %d is %s</p>
<p><a href="democookie">back to cookie page</a></p>
</body>
</html>
`, number, decoder.Escape(string(action)))

	return HTML(http.StatusOK, body, Header{Name: "Set-Cookie", Value: cookie.String()})
}
