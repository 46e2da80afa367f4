package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrEmptyInput is returned when the input holds no JSON value at all.
var ErrEmptyInput = errors.New("empty input, no JSON data found")

// SyntaxError describes a malformed document. Offset is the byte
// offset reported by the underlying scanner (one past the offending
// byte), 0 when unknown.
type SyntaxError struct {
	Msg    string
	Offset int64
}

func (e *SyntaxError) Error() string {
	return e.Msg
}

// Decode reads a single JSON value from r into the ordered document
// model. Numbers are kept as source text. Anything other than
// trailing whitespace after the first value is an error.
func Decode(r io.Reader) (Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	// EOF before the first token means no value at all; EOF later is
	// a truncated document, handled by mapDecodeError.
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyInput
		}
		return nil, mapDecodeError(err, dec)
	}
	v, err := valueFromToken(dec, tok)
	if err != nil {
		return nil, mapDecodeError(err, dec)
	}

	// Exactly one value per input. Anything the decoder can still
	// read, including a stray closing brace or bracket, is trailing
	// data; only io.EOF may follow the first value.
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, &SyntaxError{
			Msg:    "unexpected data after first JSON value",
			Offset: dec.InputOffset(),
		}
	}
	return v, nil
}

// DecodeBytes decodes a single JSON value from data.
func DecodeBytes(data []byte) (Value, error) {
	return Decode(bytes.NewReader(data))
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return valueFromToken(dec, tok)
}

func valueFromToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		}
		return nil, &SyntaxError{
			Msg:    fmt.Sprintf("unexpected delimiter %q", t.String()),
			Offset: dec.InputOffset(),
		}
	case string:
		return String(t), nil
	case json.Number:
		return Number(t), nil
	case bool:
		return Bool(t), nil
	case nil:
		return Null{}, nil
	default:
		return nil, &SyntaxError{
			Msg:    fmt.Sprintf("unexpected token %v", tok),
			Offset: dec.InputOffset(),
		}
	}
}

func decodeObject(dec *json.Decoder) (Object, error) {
	obj := Object{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, &SyntaxError{
				Msg:    fmt.Sprintf("object key is not a string: %v", keyTok),
				Offset: dec.InputOffset(),
			}
		}
		val, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		obj = append(obj, Member{Key: key, Value: val})
	}
	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return obj, nil
}

func decodeArray(dec *json.Decoder) (Array, error) {
	arr := Array{}
	for dec.More() {
		val, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		arr = append(arr, val)
	}
	// Consume the closing bracket.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return arr, nil
}

// mapDecodeError converts encoding/json errors into package errors
// carrying a byte offset.
func mapDecodeError(err error, dec *json.Decoder) error {
	var syn *json.SyntaxError
	if errors.As(err, &syn) {
		return &SyntaxError{Msg: syn.Error(), Offset: syn.Offset}
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return &SyntaxError{
			Msg:    "unexpected end of JSON input",
			Offset: dec.InputOffset(),
		}
	}
	if serr, ok := err.(*SyntaxError); ok {
		return serr
	}
	return err
}
