package request

import (
	"fmt"
	"net/url"
	"path"
	"strings"

	"was/internal/http/header"
	"was/types"
)

type Request interface {
	Method() types.Method
	Path() string
	Param(key string) string
	Params() map[string]string
	Header(key string) string
	SetHeader(key string, value string)
	Cookie(name string) (string, bool)
	Body() []byte
	HasExtension() bool
	Extension() string
}

type request struct {
	method    types.Method
	path      string
	extension string
	params    map[string]string
	headers   map[string]string
	cookies   map[string]string
	body      []byte
}

// New builds a Request from tokenizer output. Header names are lower-cased.
// Form-encoded POST/PUT bodies replace the URL query as the parameter source.
func New(msg *header.Message) (Request, error) {
	method, ok := types.ParseMethod(msg.Line.Method)
	if !ok {
		return nil, fmt.Errorf("%w: unsupported method %q", header.ErrMalformedRequest, msg.Line.Method)
	}

	rawPath, rawQuery, _ := strings.Cut(msg.Line.Target, "?")
	cleanPath, err := normalizePath(rawPath)
	if err != nil {
		return nil, err
	}

	req := &request{
		method:  method,
		path:    cleanPath,
		headers: make(map[string]string, len(msg.Fields)),
		body:    msg.Body,
	}

	for _, f := range msg.Fields {
		key := strings.ToLower(f.Name)
		if _, exists := req.headers[key]; exists {
			continue
		}
		req.headers[key] = f.Value
	}

	req.extension = extensionOf(req.path)
	req.cookies = parseCookies(req.headers["cookie"])

	if req.hasFormBody() {
		req.params = parseParams(string(req.body))
	} else {
		req.params = parseParams(rawQuery)
	}

	return req, nil
}

func (r *request) hasFormBody() bool {
	if r.method != types.MethodPOST && r.method != types.MethodPUT {
		return false
	}
	mediaType, _, _ := strings.Cut(r.headers["content-type"], ";")
	return strings.EqualFold(strings.TrimSpace(mediaType), types.FormURLEncoded)
}

func (r *request) Method() types.Method {
	return r.method
}

func (r *request) Path() string {
	return r.path
}

func (r *request) Param(key string) string {
	return r.params[key]
}

func (r *request) Params() map[string]string {
	out := make(map[string]string, len(r.params))
	for k, v := range r.params {
		out[k] = v
	}
	return out
}

func (r *request) Header(key string) string {
	return r.headers[strings.ToLower(key)]
}

func (r *request) SetHeader(key string, value string) {
	r.headers[strings.ToLower(key)] = value
}

func (r *request) Cookie(name string) (string, bool) {
	v, ok := r.cookies[name]
	return v, ok
}

func (r *request) Body() []byte {
	return r.body
}

func (r *request) HasExtension() bool {
	return r.extension != ""
}

// Extension is the lower-cased suffix after the last '.' of the final path segment.
func (r *request) Extension() string {
	return r.extension
}

func normalizePath(raw string) (string, error) {
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return "", fmt.Errorf("%w: invalid path escape", header.ErrMalformedRequest)
	}
	if !strings.HasPrefix(decoded, "/") {
		return "", fmt.Errorf("%w: path must be absolute", header.ErrMalformedRequest)
	}
	return path.Clean(decoded), nil
}

func extensionOf(p string) string {
	segment := p[strings.LastIndexByte(p, '/')+1:]
	dot := strings.LastIndexByte(segment, '.')
	if dot == -1 || dot == len(segment)-1 {
		return ""
	}
	return strings.ToLower(segment[dot+1:])
}
