package response

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"was/types"
)

var ErrInvalidFraming = fmt.Errorf("invalid response framing")

type field struct {
	name  types.HeaderName
	value string
}

// Response keeps headers in insertion order so serialization is deterministic.
type Response struct {
	status  types.StatusCode
	headers []field
	body    []byte
}

func New(status types.StatusCode) *Response {
	return &Response{
		status:  status,
		headers: make([]field, 0, 8),
	}
}

func (r *Response) Status() types.StatusCode {
	return r.status
}

func (r *Response) Value(name types.HeaderName) string {
	for _, f := range r.headers {
		if strings.EqualFold(string(f.name), string(name)) {
			return f.value
		}
	}
	return ""
}

func (r *Response) Values(name types.HeaderName) []string {
	var values []string
	for _, f := range r.headers {
		if strings.EqualFold(string(f.name), string(name)) {
			values = append(values, f.value)
		}
	}
	return values
}

// Set replaces the first header with the same name in place and drops any
// later duplicates, or appends when the name is new.
func (r *Response) Set(name types.HeaderName, value string) {
	replaced := false
	kept := r.headers[:0]
	for _, f := range r.headers {
		if strings.EqualFold(string(f.name), string(name)) {
			if replaced {
				continue
			}
			f.value = value
			replaced = true
		}
		kept = append(kept, f)
	}
	r.headers = kept
	if !replaced {
		r.headers = append(r.headers, field{name: name, value: value})
	}
}

// Add appends a header even when the name is already present, as needed for Set-Cookie.
func (r *Response) Add(name types.HeaderName, value string) {
	r.headers = append(r.headers, field{name: name, value: value})
}

func (r *Response) Remove(name types.HeaderName) {
	kept := r.headers[:0]
	for _, f := range r.headers {
		if !strings.EqualFold(string(f.name), string(name)) {
			kept = append(kept, f)
		}
	}
	r.headers = kept
}

// SetBody is the only way to attach a body; it keeps Content-Type and
// Content-Length consistent with it. An empty body clears both.
func (r *Response) SetBody(contentType string, body []byte) {
	if len(body) == 0 {
		r.body = nil
		r.Remove(types.HeaderContentType)
		r.Remove(types.HeaderContentLength)
		return
	}
	r.body = body
	r.Set(types.HeaderContentType, contentType)
	r.Set(types.HeaderContentLength, strconv.Itoa(len(body)))
}

func (r *Response) Body() []byte {
	return r.body
}

// Finalize assembles the complete wire form. Nothing is written anywhere until
// every part has been validated.
func (r *Response) Finalize() ([]byte, error) {
	reason, err := r.status.Reason()
	if err != nil {
		return nil, err
	}

	if len(r.body) > 0 {
		if r.Value(types.HeaderContentType) == "" {
			return nil, fmt.Errorf("%w: body without %s", ErrInvalidFraming, types.HeaderContentType)
		}
		if r.Value(types.HeaderContentLength) != strconv.Itoa(len(r.body)) {
			return nil, fmt.Errorf("%w: %s does not match body", ErrInvalidFraming, types.HeaderContentLength)
		}
	}

	statusLine := types.HTTPVersion + " " + strconv.Itoa(int(r.status)) + " " + reason

	size := len(statusLine) + 2
	for _, f := range r.headers {
		size += len(f.name) + 2 + len(f.value) + 2
	}
	size += 2 + len(r.body)

	buf := make([]byte, 0, size)
	buf = append(buf, statusLine...)
	buf = append(buf, '\r', '\n')

	for _, f := range r.headers {
		buf = append(buf, f.name...)
		buf = append(buf, ':', ' ')
		buf = append(buf, f.value...)
		buf = append(buf, '\r', '\n')
	}

	buf = append(buf, '\r', '\n')
	buf = append(buf, r.body...)
	return buf, nil
}

// WriteTo finalizes first and issues a single write, so a failed Finalize
// never leaves a partial response on the wire.
func (r *Response) WriteTo(w io.Writer) (int64, error) {
	data, err := r.Finalize()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)
	return int64(n), err
}
