package header

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

func parseFromReader(br *bufio.Reader, maxBody int64) (*Message, error) {
	startLine, err := readLine(br)
	if err != nil {
		return nil, err
	}

	msg := &Message{
		Fields: make([]Field, 0, 16),
	}

	msg.Line, err = parseStartLine(startLine)
	if err != nil {
		return nil, err
	}

	for {
		line, err := readLine(br)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("%w: headers not terminated: %w", ErrMalformedRequest, io.ErrUnexpectedEOF)
			}
			return nil, err
		}

		if len(line) == 0 {
			break
		}

		field, err := parseField(line)
		if err != nil {
			return nil, err
		}
		msg.Fields = append(msg.Fields, field)
	}

	length, err := contentLength(msg)
	if err != nil {
		return nil, err
	}
	if length == 0 {
		return msg, nil
	}
	if maxBody > 0 && length > maxBody {
		return nil, fmt.Errorf("%w: declared %d bytes, limit %d", ErrBodyTooLarge, length, maxBody)
	}

	body := make([]byte, length)
	read, err := io.ReadFull(br, body)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: read %d of %d bytes", ErrTruncatedBody, read, length)
		}
		return nil, err
	}
	msg.Body = body

	return msg, nil
}

// readLine returns io.EOF only when the stream ends before any byte of the line.
func readLine(br *bufio.Reader) ([]byte, error) {
	lineBytes, err := br.ReadSlice('\n')
	if err != nil {
		if errors.Is(err, bufio.ErrBufferFull) {
			return nil, fmt.Errorf("%w: line too long", ErrMalformedRequest)
		}
		if errors.Is(err, io.EOF) && len(lineBytes) > 0 {
			return nil, fmt.Errorf("%w: line not terminated: %w", ErrMalformedRequest, io.ErrUnexpectedEOF)
		}
		return nil, err
	}

	lineBytes = bytes.TrimSuffix(lineBytes, []byte("\n"))
	lineBytes = bytes.TrimSuffix(lineBytes, []byte("\r"))

	line := make([]byte, len(lineBytes))
	copy(line, lineBytes)
	return line, nil
}

func parseStartLine(startLine []byte) (RequestLine, error) {
	parts := strings.Split(string(startLine), " ")
	if len(parts) != 3 {
		return RequestLine{}, fmt.Errorf("%w: request line has %d tokens", ErrMalformedRequest, len(parts))
	}

	for _, part := range parts {
		if part == "" {
			return RequestLine{}, fmt.Errorf("%w: empty token in request line", ErrMalformedRequest)
		}
	}

	if !strings.HasPrefix(parts[2], "HTTP/") {
		return RequestLine{}, fmt.Errorf("%w: invalid version %q", ErrMalformedRequest, parts[2])
	}

	return RequestLine{
		Method:  parts[0],
		Target:  parts[1],
		Version: parts[2],
	}, nil
}

func parseField(line []byte) (Field, error) {
	colonIdx := bytes.IndexByte(line, ':')
	if colonIdx == -1 {
		return Field{}, fmt.Errorf("%w: header line without ':'", ErrMalformedRequest)
	}

	key := bytes.TrimSpace(line[:colonIdx])
	if len(key) == 0 {
		return Field{}, fmt.Errorf("%w: empty header name", ErrMalformedRequest)
	}
	value := bytes.TrimSpace(line[colonIdx+1:])

	return Field{Name: string(key), Value: string(value)}, nil
}

func contentLength(msg *Message) (int64, error) {
	if !msg.Has("Content-Length") {
		return 0, nil
	}

	raw := msg.Value("Content-Length")
	if raw == "" {
		return 0, nil
	}

	length, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || length < 0 {
		return 0, fmt.Errorf("%w: invalid Content-Length %q", ErrMalformedRequest, raw)
	}
	return length, nil
}
