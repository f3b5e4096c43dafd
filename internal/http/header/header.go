package header

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"
)

var (
	ErrMalformedRequest = fmt.Errorf("malformed request")
	ErrTruncatedBody    = fmt.Errorf("truncated body")
	ErrBodyTooLarge     = fmt.Errorf("body too large")
)

type RequestLine struct {
	Method  string
	Target  string
	Version string
}

type Field struct {
	Name  string
	Value string
}

// Message is a request split into its framing parts, with no semantics applied.
type Message struct {
	Line   RequestLine
	Fields []Field
	Body   []byte
}

// NewMessage accepts either the raw bytes of a request or a *bufio.Reader
// positioned at its first byte. A non-positive maxBody disables the body limit.
func NewMessage(r interface{}, maxBody int64) (*Message, error) {
	switch v := r.(type) {
	case []byte:
		return parseFromReader(bufio.NewReader(bytes.NewReader(v)), maxBody)
	case *bufio.Reader:
		return parseFromReader(v, maxBody)
	default:
		return nil, fmt.Errorf("unsupported type: %T", r)
	}
}

// Value returns the first field whose name matches key case-insensitively.
func (m *Message) Value(key string) string {
	for _, f := range m.Fields {
		if strings.EqualFold(f.Name, key) {
			return f.Value
		}
	}
	return ""
}

func (m *Message) Has(key string) bool {
	for _, f := range m.Fields {
		if strings.EqualFold(f.Name, key) {
			return true
		}
	}
	return false
}
