package service

import (
	"bytes"
	"encoding/json"
	"errors"
)

var errScalarExpected = errors.New("expected a string, number or boolean")

// Scalar is a text attribute that accepts any JSON scalar. Strings are taken
// as-is and numbers or booleans keep their literal text, so 2015 and "2015"
// store the same value. Form values bind to it like a plain string.
type Scalar string

// UnmarshalJSON implements json.Unmarshaler. JSON null never reaches it for a
// *Scalar field; the decoder leaves the pointer nil.
func (s *Scalar) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return errScalarExpected
	}
	switch data[0] {
	case '"':
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		*s = Scalar(text)
	case '{', '[':
		return errScalarExpected
	default:
		*s = Scalar(data)
	}
	return nil
}

// Text returns the scalar as a nullable column value.
func (s *Scalar) Text() *string {
	if s == nil {
		return nil
	}
	text := string(*s)
	return &text
}

// ScalarOf is a convenience for building requests in code.
func ScalarOf(text string) *Scalar {
	s := Scalar(text)
	return &s
}
