package decoder

import (
	"strconv"
	"strings"
)

type Cookie struct {
	Name   string
	Value  string
	MaxAge *int
	Path   string
}

// String renders the cookie the way it goes into a Set-Cookie header.
func (c Cookie) String() string {
	var b strings.Builder
	b.WriteString(c.Name)
	b.WriteByte('=')
	b.WriteString(c.Value)

	if c.Path != "" {
		b.WriteString("; Path=")
		b.WriteString(c.Path)
	}

	if c.MaxAge != nil {
		b.WriteString("; Max-Age=")
		b.WriteString(strconv.Itoa(*c.MaxAge))
	}

	return b.String()
}

type Jar struct {
	cookies []Cookie
	index   map[string]int
}

func NewJar() *Jar {
	return &Jar{index: map[string]int{}}
}

func (j *Jar) add(c Cookie) {
	if _, ok := j.index[c.Name]; ok {
		return
	}
	j.index[c.Name] = len(j.cookies)
	j.cookies = append(j.cookies, c)
}

func (j *Jar) Get(name string) (Cookie, bool) {
	i, ok := j.index[name]
	if !ok {
		return Cookie{}, false
	}

	return j.cookies[i], true
}

func (j *Jar) Cookies() []Cookie {
	cookies := make([]Cookie, len(j.cookies))
	copy(cookies, j.cookies)

	return cookies
}

func (j *Jar) Len() int {
	return len(j.cookies)
}

// DecodeCookies parses a Cookie request header. Segments that are not
// name=value pairs are skipped; the first cookie of a repeated name wins.
func DecodeCookies(header string) *Jar {
	jar := NewJar()

	for _, segment := range strings.Split(header, ";") {
		segment = strings.TrimSpace(segment)

		i := strings.IndexByte(segment, '=')
		if i <= 0 {
			continue
		}

		name := strings.TrimSpace(segment[:i])
		if name == "" {
			continue
		}

		jar.add(Cookie{
			Name:  name,
			Value: unquote(strings.TrimSpace(segment[i+1:])),
		})
	}

	return jar
}

func unquote(value string) string {
	if len(value) >= 2 && value[0] == '"' && value[len(value)-1] == '"' {
		return value[1 : len(value)-1]
	}

	return value
}
