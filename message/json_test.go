package message

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

func person(t *testing.T) *structpb.Value {
	t.Helper()
	v, err := structpb.NewValue(map[string]any{
		"name":    "John",
		"surname": "Smith",
	})
	require.NoError(t, err)
	return v
}

func TestSetJSONRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{name: "object", value: map[string]any{"name": "John", "surname": "Smith"}},
		{name: "nested", value: map[string]any{"tags": []any{"a", "b"}, "age": 42.0, "admin": false, "boss": nil}},
		{name: "array", value: []any{1.0, "two", true, nil}},
		{name: "string", value: "plain"},
		{name: "number", value: 3.25},
		{name: "null", value: nil},
		{name: "unicode", value: map[string]any{"city": "Zürich", "emoji": "🙂"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := structpb.NewValue(tt.value)
			require.NoError(t, err)

			m := New()
			require.NoError(t, m.SetJSON(v))

			ct, ok := m.Header("content-type")
			assert.True(t, ok)
			assert.Equal(t, "application/json", ct)

			got, err := m.JSON()
			require.NoError(t, err)
			assert.True(t, proto.Equal(v, got), "got %v want %v", got, v)
		})
	}
}

func TestSetJSONPrettyPrints(t *testing.T) {
	m := New()
	require.NoError(t, m.SetJSON(person(t)))

	data, ok := m.Body()
	require.True(t, ok)
	assert.Equal(t, "{\n    \"name\": \"John\",\n    \"surname\": \"Smith\"\n}", string(data))
}

func TestSetJSONOverridesContentType(t *testing.T) {
	m := New().InsertHeader("content-type", "text/plain").SetBody([]byte("old"))
	require.NoError(t, m.SetJSON(person(t)))

	assert.Equal(t, 1, m.Headers().Len())
	assert.Equal(t, "application/json", m.Headers().Value("Content-Type"))
	data, _ := m.Body()
	assert.NotEqual(t, "old", string(data))
}

func TestSetJSONNullValue(t *testing.T) {
	m := New()
	require.NoError(t, m.SetJSON(structpb.NewNullValue()))
	data, _ := m.Body()
	assert.Equal(t, "null", string(data))
}

func TestSetJSONRejectsLossyValues(t *testing.T) {
	tests := []struct {
		name  string
		value *structpb.Value
	}{
		{name: "nil value", value: nil},
		{name: "no kind", value: &structpb.Value{}},
		{name: "invalid utf8 string", value: structpb.NewStringValue("bad \xff")},
		{name: "nan", value: structpb.NewNumberValue(math.NaN())},
		{name: "infinity", value: structpb.NewNumberValue(math.Inf(-1))},
		{
			name: "nested in list",
			value: structpb.NewListValue(&structpb.ListValue{Values: []*structpb.Value{
				structpb.NewBoolValue(true),
				{},
			}}),
		},
		{
			name: "invalid utf8 key",
			value: structpb.NewStructValue(&structpb.Struct{Fields: map[string]*structpb.Value{
				"k\xfe": structpb.NewBoolValue(true),
			}}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New().InsertHeader("Content-Type", "text/plain").SetBody([]byte("keep"))

			err := m.SetJSON(tt.value)
			assert.ErrorIs(t, err, ErrUnencodableJSON)

			data, _ := m.Body()
			assert.Equal(t, "keep", string(data))
			assert.Equal(t, "text/plain", m.Headers().Value("Content-Type"))
		})
	}
}

func TestSetJSONFrom(t *testing.T) {
	m := New()
	require.NoError(t, m.SetJSONFrom(map[string]any{"name": "John", "surname": "Smith"}))

	got, err := m.JSON()
	require.NoError(t, err)
	assert.True(t, proto.Equal(person(t), got))

	m = New().InsertHeader("Content-Type", "text/plain").SetBody([]byte("keep"))
	err = m.SetJSONFrom(struct{}{})
	assert.ErrorIs(t, err, ErrUnencodableJSON)

	data, _ := m.Body()
	assert.Equal(t, "keep", string(data))
	assert.Equal(t, "text/plain", m.Headers().Value("Content-Type"))
}

func TestJSONErrors(t *testing.T) {
	tests := []struct {
		name      string
		message   *Message
		expectErr error
	}{
		{name: "no body", message: New(), expectErr: ErrEmptyBody},
		{name: "invalid utf8", message: New().SetBody([]byte{'"', 0xff, 0xfe, '"'}), expectErr: ErrInvalidUTF8},
		{name: "invalid json", message: New().SetBody([]byte(`{"name": `)), expectErr: ErrInvalidJSON},
		{name: "empty buffer", message: New().SetBody([]byte{}), expectErr: ErrInvalidJSON},
		{name: "trailing garbage", message: New().SetBody([]byte(`{} {}`)), expectErr: ErrInvalidJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				v   *structpb.Value
				err error
			)
			assert.NotPanics(t, func() { v, err = tt.message.JSON() })
			assert.ErrorIs(t, err, tt.expectErr)
			assert.Nil(t, v)
		})
	}
}

func TestJSONIgnoresContentType(t *testing.T) {
	m := New().InsertHeader("Content-Type", "text/plain").SetBody([]byte(`[1, 2]`))
	v, err := m.JSON()
	require.NoError(t, err)
	assert.Len(t, v.GetListValue().GetValues(), 2)
}

func TestInvalidUTF8Offset(t *testing.T) {
	assert.Equal(t, 0, invalidUTF8Offset([]byte{0xff}))
	assert.Equal(t, 3, invalidUTF8Offset([]byte{'a', 'b', 'c', 0xc3}))
	assert.Equal(t, 2, invalidUTF8Offset([]byte("é")))
}

func TestJSONNumberPrecision(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		expectErr bool
		expect    float64
	}{
		{name: "max exact integer", body: `9007199254740992`, expect: 9007199254740992},
		{name: "negative exact integer", body: `-9007199254740992`, expect: -9007199254740992},
		{name: "first inexact integer", body: `9007199254740993`, expectErr: true},
		{name: "64-bit id", body: `{"id": 12345678901234567890}`, expectErr: true},
		{name: "nested in list", body: `[1, 2, 9007199254740993]`, expectErr: true},
		{name: "out of range", body: `1e400`, expectErr: true},
		{name: "fraction", body: `0.1`, expect: 0.1},
		{name: "exponent", body: `1.5e3`, expect: 1500},
		{name: "large power of two", body: `18446744073709551616`, expect: 18446744073709551616},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := New().SetBody([]byte(tt.body)).JSON()
			if tt.expectErr {
				assert.ErrorIs(t, err, ErrInvalidJSON)
				assert.ErrorIs(t, err, ErrNumberPrecision)
				assert.Nil(t, v)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expect, v.GetNumberValue())
		})
	}
}

func TestJSONLargeIntegerRoundTrip(t *testing.T) {
	m := New().SetBody([]byte(`{"small": 9007199254740992}`))
	v, err := m.JSON()
	require.NoError(t, err)

	require.NoError(t, m.SetJSON(v))
	data, _ := m.Body()
	assert.Equal(t, "{\n    \"small\": 9007199254740992\n}", string(data))
}
