// Package input reads JSON documents from files or standard input
// and normalizes them to UTF-8.
package input

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// ErrBinary is returned when the input contains NUL bytes and is
// therefore not a JSON text file.
var ErrBinary = errors.New("binary data detected, not a JSON text file")

var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// Read returns the contents of path decoded to UTF-8. A path of "-"
// or "" reads from stdin instead. encoding names an IANA character
// set; the empty string and "utf-8" pass bytes through untouched
// apart from BOM removal.
func Read(path string, stdin io.Reader, encoding string) ([]byte, error) {
	var (
		raw []byte
		err error
	)
	if path == "" || path == "-" {
		raw, err = io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
	} else {
		raw, err = os.ReadFile(path)
		if err != nil {
			return nil, err
		}
	}

	data, err := decode(raw, encoding)
	if err != nil {
		return nil, err
	}

	data = bytes.TrimPrefix(data, utf8BOM)
	if bytes.IndexByte(data, 0) >= 0 {
		return nil, ErrBinary
	}
	return data, nil
}

// decode transcodes raw from the named character set to UTF-8.
func decode(raw []byte, name string) ([]byte, error) {
	switch strings.ToLower(name) {
	case "", "utf-8", "utf8":
		return raw, nil
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("unsupported encoding %q", name)
	}
	out, _, err := transform.Bytes(enc.NewDecoder(), raw)
	if err != nil {
		return nil, fmt.Errorf("decoding %s input: %w", name, err)
	}
	return out, nil
}
