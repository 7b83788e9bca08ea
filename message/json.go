package message

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode/utf8"
	"wrequest/types"

	"google.golang.org/protobuf/types/known/structpb"
)

const jsonIndent = "    "

// SetJSON encodes value as 4-space indented UTF-8 JSON, makes it the body and
// sets Content-Type to application/json. Values that would not decode back
// unchanged (no kind set, NaN or infinite numbers, invalid UTF-8 in strings or
// keys) fail with ErrUnencodableJSON and leave the message unchanged.
func (m *Message) SetJSON(value *structpb.Value) error {
	data, err := encodeJSON(value)
	if err != nil {
		return err
	}
	m.body = singleBody(data)
	m.headers.Insert(types.ContentType, types.ApplicationJSON)
	return nil
}

// SetJSONFrom converts a plain Go value (maps, slices, strings, numbers,
// bools, nil) with structpb.NewValue and then behaves like SetJSON.
func (m *Message) SetJSONFrom(v any) error {
	value, err := structpb.NewValue(v)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnencodableJSON, err)
	}
	return m.SetJSON(value)
}

// JSON decodes the single body. Content-Type is not consulted.
//
// Numbers are held as float64. An integer literal that float64 cannot hold
// exactly (beyond ±2^53, e.g. a 64-bit ID) fails with ErrNumberPrecision
// instead of being rounded.
func (m *Message) JSON() (*structpb.Value, error) {
	data, ok := m.Body()
	if !ok {
		return nil, ErrEmptyBody
	}
	return decodeJSON(data)
}

func encodeJSON(value *structpb.Value) ([]byte, error) {
	if err := checkEncodable(value); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnencodableJSON, err)
	}
	data, err := json.MarshalIndent(value.AsInterface(), "", jsonIndent)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnencodableJSON, err)
	}
	return data, nil
}

func checkEncodable(value *structpb.Value) error {
	switch k := value.GetKind().(type) {
	case nil:
		return fmt.Errorf("value has no kind")
	case *structpb.Value_NumberValue:
		if math.IsNaN(k.NumberValue) || math.IsInf(k.NumberValue, 0) {
			return fmt.Errorf("non-finite number %v", k.NumberValue)
		}
	case *structpb.Value_StringValue:
		if !utf8.ValidString(k.StringValue) {
			return fmt.Errorf("invalid UTF-8 in string %q", k.StringValue)
		}
	case *structpb.Value_ListValue:
		for i, elem := range k.ListValue.GetValues() {
			if err := checkEncodable(elem); err != nil {
				return fmt.Errorf("[%d]: %w", i, err)
			}
		}
	case *structpb.Value_StructValue:
		for key, field := range k.StructValue.GetFields() {
			if !utf8.ValidString(key) {
				return fmt.Errorf("invalid UTF-8 in key %q", key)
			}
			if err := checkEncodable(field); err != nil {
				return fmt.Errorf("%q: %w", key, err)
			}
		}
	}
	return nil
}

func decodeJSON(data []byte) (*structpb.Value, error) {
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: invalid byte at offset %d", ErrInvalidUTF8, invalidUTF8Offset(data))
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: unexpected data after top-level value", ErrInvalidJSON)
	}

	raw, err := exactNumbers(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	value, err := structpb.NewValue(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return value, nil
}

// exactNumbers replaces every json.Number in v with a float64, rejecting
// integers that would be rounded and numbers outside the float64 range.
func exactNumbers(v any) (any, error) {
	switch t := v.(type) {
	case json.Number:
		return toFloat(t)
	case []any:
		for i, elem := range t {
			f, err := exactNumbers(elem)
			if err != nil {
				return nil, err
			}
			t[i] = f
		}
	case map[string]any:
		for key, elem := range t {
			f, err := exactNumbers(elem)
			if err != nil {
				return nil, err
			}
			t[key] = f
		}
	}
	return v, nil
}

func toFloat(n json.Number) (float64, error) {
	s := n.String()
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrNumberPrecision, s)
	}
	if strings.ContainsAny(s, ".eE") {
		return f, nil
	}
	i, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrNumberPrecision, s)
	}
	if _, acc := new(big.Float).SetInt(i).Float64(); acc != big.Exact {
		return 0, fmt.Errorf("%w: %s", ErrNumberPrecision, s)
	}
	return f, nil
}

func invalidUTF8Offset(data []byte) int {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return len(data)
}
