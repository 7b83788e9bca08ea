// Package response models an HTTP response: status code, headers, body,
// Set-Cookie directives and authentication challenges.
package response

import (
	"net/http"
	"slices"
	"strconv"
	"strings"
	"wrequest/message"
	"wrequest/types"

	"google.golang.org/protobuf/types/known/structpb"
)

type Response struct {
	message.Message

	statusCode types.StatusCode
	cookies    []*http.Cookie
	auth       []string
	proxyAuth  []string
}

// New accepts any status code, including unassigned ones.
func New(status types.StatusCode) *Response {
	return &Response{statusCode: status}
}

func (r *Response) StatusCode() types.StatusCode {
	return r.statusCode
}

func (r *Response) InsertHeader(key, value string) *Response {
	r.Message.InsertHeader(key, value)
	return r
}

func (r *Response) SetBody(data []byte) *Response {
	r.Message.SetBody(data)
	return r
}

func (r *Response) SetJSON(value *structpb.Value) error {
	return r.Message.SetJSON(value)
}

// InsertCookie appends a Set-Cookie directive. Cookies with the same name are
// all kept, in insertion order.
func (r *Response) InsertCookie(cookie *http.Cookie) *Response {
	r.cookies = append(r.cookies, cookie)
	return r
}

func (r *Response) Cookies() []*http.Cookie {
	return slices.Clone(r.cookies)
}

// InsertAuthHeader appends a WWW-Authenticate challenge.
func (r *Response) InsertAuthHeader(challenge string) *Response {
	r.auth = append(r.auth, challenge)
	return r
}

func (r *Response) AuthHeaders() []string {
	return slices.Clone(r.auth)
}

// InsertProxyAuthHeader appends a Proxy-Authenticate challenge.
func (r *Response) InsertProxyAuthHeader(challenge string) *Response {
	r.proxyAuth = append(r.proxyAuth, challenge)
	return r
}

func (r *Response) ProxyAuthHeaders() []string {
	return slices.Clone(r.proxyAuth)
}

func (r *Response) Clone() *Response {
	cookies := make([]*http.Cookie, 0, len(r.cookies))
	for _, c := range r.cookies {
		if c == nil {
			cookies = append(cookies, nil)
			continue
		}
		cp := *c
		cp.Unparsed = slices.Clone(c.Unparsed)
		cookies = append(cookies, &cp)
	}
	return &Response{
		Message:    *r.Message.Clone(),
		statusCode: r.statusCode,
		cookies:    cookies,
		auth:       slices.Clone(r.auth),
		proxyAuth:  slices.Clone(r.proxyAuth),
	}
}

// String renders "<code> <reason>" followed by one "name=value" line per
// header, sorted by name. The reason is empty for unassigned codes.
func (r *Response) String() string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(int(r.statusCode)))
	sb.WriteByte(' ')
	sb.WriteString(http.StatusText(int(r.statusCode)))
	sb.WriteByte('\n')
	sb.WriteString(r.HeaderLines())
	return sb.String()
}
