package response

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"was/types"
)

// Parse reads a serialized response back. Only statuses in the closed table
// are accepted, and the reason phrase must be the one the table gives.
func Parse(data []byte) (*Response, error) {
	lineEnd := bytes.Index(data, []byte("\r\n"))
	if lineEnd == -1 {
		return nil, fmt.Errorf("invalid response: no CRLF found in start line")
	}

	status, _, err := ParseStatusLine(data[:lineEnd])
	if err != nil {
		return nil, err
	}

	resp := New(status)
	remaining := data[lineEnd+2:]

	for {
		lineEnd = bytes.Index(remaining, []byte("\r\n"))
		if lineEnd == -1 {
			return nil, fmt.Errorf("invalid response: headers not terminated")
		}

		line := remaining[:lineEnd]
		remaining = remaining[lineEnd+2:]
		if len(line) == 0 {
			break
		}

		colonIdx := bytes.IndexByte(line, ':')
		if colonIdx == -1 {
			return nil, fmt.Errorf("invalid response: header line without ':'")
		}
		key := bytes.TrimSpace(line[:colonIdx])
		value := bytes.TrimSpace(line[colonIdx+1:])
		resp.Add(types.HeaderName(key), string(value))
	}

	if len(remaining) > 0 {
		resp.body = remaining
	}
	return resp, nil
}

func ParseStatusLine(line []byte) (types.StatusCode, string, error) {
	version, rest, ok := strings.Cut(string(line), " ")
	if !ok || version != types.HTTPVersion {
		return 0, "", fmt.Errorf("invalid status line: %q", line)
	}

	rawCode, reason, ok := strings.Cut(rest, " ")
	if !ok {
		return 0, "", fmt.Errorf("invalid status line: missing reason")
	}

	code, err := strconv.Atoi(rawCode)
	if err != nil {
		return 0, "", fmt.Errorf("invalid status code %q", rawCode)
	}

	status := types.StatusCode(code)
	expected, err := status.Reason()
	if err != nil {
		return 0, "", err
	}
	if expected != reason {
		return 0, "", fmt.Errorf("reason %q does not match status %d", reason, code)
	}
	return status, reason, nil
}
