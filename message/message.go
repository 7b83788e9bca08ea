// Package message holds the parts shared by requests and responses: the
// case-insensitive headers, the body and its JSON encoding.
package message

import (
	"strings"
	"wrequest/header"
)

// Message is the header and body pair embedded by request.Request and
// response.Response. The zero value is an empty message with no body.
type Message struct {
	headers header.Map
	body    body
}

func New() *Message {
	return &Message{}
}

func (m *Message) Headers() *header.Map {
	return &m.headers
}

// InsertHeader sets a header, replacing any value stored under the same
// case-insensitive name.
func (m *Message) InsertHeader(key, value string) *Message {
	m.headers.Insert(key, value)
	return m
}

func (m *Message) Header(key string) (string, bool) {
	return m.headers.Get(key)
}

// SetBody replaces the body with data. The slice is stored, not copied.
func (m *Message) SetBody(data []byte) *Message {
	m.body = singleBody(data)
	return m
}

// Body returns the buffer of a single body; ok is false for any other body.
func (m *Message) Body() (data []byte, ok bool) {
	if m.body.kind != bodySingle {
		return nil, false
	}
	return m.body.data, true
}

func (m *Message) HasBody() bool {
	return m.body.kind != bodyNone
}

func (m *Message) HasSingleBody() bool {
	return m.body.kind == bodySingle
}

func (m *Message) HasMultipartBody() bool {
	return m.body.kind == bodyMultipart
}

func (m *Message) Clone() *Message {
	return &Message{
		headers: *m.headers.Clone(),
		body:    m.body.clone(),
	}
}

// HeaderLines renders one "name=value" line per header, sorted by name.
func (m *Message) HeaderLines() string {
	var sb strings.Builder
	for _, key := range m.headers.Keys() {
		sb.WriteString(key)
		sb.WriteByte('=')
		sb.WriteString(m.headers.Value(key))
		sb.WriteByte('\n')
	}
	return sb.String()
}
