// Package request models an outgoing or received HTTP request: method, raw
// target, query parameters, cookies, headers and body.
package request

import (
	"net/url"
	"strings"
	"wrequest/header"
	"wrequest/message"
	"wrequest/types"

	"google.golang.org/protobuf/types/known/structpb"
)

// Request embeds message.Message, so header and body accessors are promoted.
// The mutators are redeclared here to keep chains typed as *Request.
type Request struct {
	message.Message

	method  types.Method
	target  string
	url     *url.URL
	params  header.KeyValue
	cookies header.KeyValue
}

// New never fails: a target the URL parser rejects is kept verbatim and URL
// reports nil.
//
// method must be one of the types constants (types.GET ... types.PATCH); the
// method-named constructors below always are. Input from outside the program
// should go through types.ParseMethod first, which rejects anything else.
func New(method types.Method, target string) *Request {
	return &Request{
		method: method,
		target: target,
		url:    parseTarget(target),
	}
}

func Get(target string) *Request     { return New(types.GET, target) }
func Head(target string) *Request    { return New(types.HEAD, target) }
func Post(target string) *Request    { return New(types.POST, target) }
func Put(target string) *Request     { return New(types.PUT, target) }
func Delete(target string) *Request  { return New(types.DELETE, target) }
func Connect(target string) *Request { return New(types.CONNECT, target) }
func Options(target string) *Request { return New(types.OPTIONS, target) }
func Trace(target string) *Request   { return New(types.TRACE, target) }
func Patch(target string) *Request   { return New(types.PATCH, target) }

func parseTarget(target string) *url.URL {
	u, err := url.ParseRequestURI(target)
	if err != nil {
		return nil
	}
	return u
}

func (r *Request) Method() types.Method {
	return r.method
}

// Target returns the target exactly as given to New.
func (r *Request) Target() string {
	return r.target
}

// URL returns a copy of the parsed target, or nil when parsing failed.
func (r *Request) URL() *url.URL {
	if r.url == nil {
		return nil
	}
	u := *r.url
	return &u
}

func (r *Request) InsertHeader(key, value string) *Request {
	r.Message.InsertHeader(key, value)
	return r
}

func (r *Request) SetBody(data []byte) *Request {
	r.Message.SetBody(data)
	return r
}

func (r *Request) SetJSON(value *structpb.Value) error {
	return r.Message.SetJSON(value)
}

// InsertParam sets a query parameter. Names are case-sensitive.
func (r *Request) InsertParam(key, value string) *Request {
	r.params.Insert(key, value)
	return r
}

func (r *Request) Param(key string) (string, bool) {
	return r.params.Get(key)
}

func (r *Request) Params() *header.KeyValue {
	return &r.params
}

// InsertCookie sets a request cookie. Names are case-sensitive.
func (r *Request) InsertCookie(key, value string) *Request {
	r.cookies.Insert(key, value)
	return r
}

func (r *Request) Cookies() *header.KeyValue {
	return &r.cookies
}

func (r *Request) Clone() *Request {
	c := &Request{
		Message: *r.Message.Clone(),
		method:  r.method,
		target:  r.target,
		params:  *r.params.Clone(),
		cookies: *r.cookies.Clone(),
	}
	c.url = r.URL()
	return c
}

// String renders "<METHOD> <target>" followed by one "name=value" line per
// header, sorted by name. It is meant for logs, not for the wire.
func (r *Request) String() string {
	var sb strings.Builder
	sb.WriteString(r.method.String())
	sb.WriteByte(' ')
	sb.WriteString(r.target)
	sb.WriteByte('\n')
	sb.WriteString(r.HeaderLines())
	return sb.String()
}
