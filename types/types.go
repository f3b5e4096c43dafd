package types

import "fmt"

type Method string

const (
	MethodGET     Method = "GET"
	MethodHEAD    Method = "HEAD"
	MethodPOST    Method = "POST"
	MethodPUT     Method = "PUT"
	MethodDELETE  Method = "DELETE"
	MethodPATCH   Method = "PATCH"
	MethodOPTIONS Method = "OPTIONS"
	MethodTRACE   Method = "TRACE"
	MethodCONNECT Method = "CONNECT"
)

var methods = map[string]Method{
	"GET":     MethodGET,
	"HEAD":    MethodHEAD,
	"POST":    MethodPOST,
	"PUT":     MethodPUT,
	"DELETE":  MethodDELETE,
	"PATCH":   MethodPATCH,
	"OPTIONS": MethodOPTIONS,
	"TRACE":   MethodTRACE,
	"CONNECT": MethodCONNECT,
}

// ParseMethod is case-sensitive, as request methods are on the wire.
func ParseMethod(raw string) (Method, bool) {
	m, ok := methods[raw]
	return m, ok
}

type StatusCode int

const (
	StatusOK                  StatusCode = 200
	StatusFound               StatusCode = 302
	StatusBadRequest          StatusCode = 400
	StatusNotFound            StatusCode = 404
	StatusMethodNotAllowed    StatusCode = 405
	StatusInternalServerError StatusCode = 500
)

var ErrUnknownStatus = fmt.Errorf("unknown status code")

var reasonPhrases = map[StatusCode]string{
	StatusOK:                  "OK",
	StatusFound:               "Found",
	StatusBadRequest:          "Bad Request",
	StatusNotFound:            "Not Found",
	StatusMethodNotAllowed:    "Method Not Allowed",
	StatusInternalServerError: "Internal Server Error",
}

func (s StatusCode) Reason() (string, error) {
	reason, ok := reasonPhrases[s]
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrUnknownStatus, int(s))
	}
	return reason, nil
}

func StatusCodes() []StatusCode {
	return []StatusCode{
		StatusOK,
		StatusFound,
		StatusBadRequest,
		StatusNotFound,
		StatusMethodNotAllowed,
		StatusInternalServerError,
	}
}

// HeaderName is the wire spelling of a response header.
type HeaderName string

const (
	HeaderConnection    HeaderName = "Connection"
	HeaderContentLength HeaderName = "Content-Length"
	HeaderContentType   HeaderName = "Content-Type"
	HeaderCookie        HeaderName = "Cookie"
	HeaderHost          HeaderName = "Host"
	HeaderLocation      HeaderName = "Location"
	HeaderServer        HeaderName = "Server"
	HeaderSetCookie     HeaderName = "Set-Cookie"
	HeaderForwardedFor  HeaderName = "X-Forwarded-For"
)

const HTTPVersion = "HTTP/1.1"

const FormURLEncoded = "application/x-www-form-urlencoded"
