// Package driver implements the line-oriented control protocol the host
// process speaks: one conversion request at a time, three lines per
// request, a sentinel line to end the session.
package driver

import (
	"bufio"
	"errors"
	"strings"
)

// EndSentinel terminates the session when received as a request's first
// line.
const EndSentinel = "end"

// ErrSessionEnd is returned by ReadRequest when the host closes the
// session with the end sentinel.
var ErrSessionEnd = errors.New("driver ended the session")

// ErrMalformedRequest is returned by ReadRequest when a frame was fully
// consumed but carries an empty path. The frame boundary is intact, so
// the session can answer KO and keep reading.
var ErrMalformedRequest = errors.New("malformed request: empty path")

// Request is one conversion order: read InputPath, write the serialized
// outline to OutputPath.
type Request struct {
	InputPath  string
	OutputPath string
}

// ReadRequest consumes one request frame: input path, encoding hint
// (ignored), output path. Paths are the first whitespace-separated token
// of their line. Requests are strictly sequential; there is no
// pipelining.
func ReadRequest(r *bufio.Reader) (Request, error) {
	first, err := readLine(r)
	if err != nil {
		return Request{}, err
	}
	if strings.TrimSpace(first) == EndSentinel {
		return Request{}, ErrSessionEnd
	}

	// The second line carries the file encoding. Conversion always treats
	// input as UTF-8, so it is read and discarded.
	if _, err := readLine(r); err != nil {
		return Request{}, err
	}

	output, err := readLine(r)
	if err != nil {
		return Request{}, err
	}

	req := Request{
		InputPath:  firstToken(first),
		OutputPath: firstToken(output),
	}
	if req.InputPath == "" || req.OutputPath == "" {
		return Request{}, ErrMalformedRequest
	}
	return req, nil
}

func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return line, nil
}

func firstToken(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
