package http11

import "bytes"

// ParseRequest parses buf as a full HTTP/1.1 request:
// METHOD SP PATH SP VERSION CRLF (HEADER CRLF)* CRLF BODY
//
// All returned slices reference buf; nothing is copied. Parsing fails on
// an unknown method, an unsupported version, a missing CRLF terminator
// anywhere in the request line or header block, or EOF before the
// blank-line terminator.
func ParseRequest(buf []byte) (*Request, error) {
	pos := 0

	methodEnd := indexByte(buf, pos, ' ')
	if methodEnd < 0 {
		return nil, ErrInvalidRequestLine
	}
	method := ParseMethod(buf[pos:methodEnd])
	if method == MethodUnknown {
		return nil, ErrInvalidMethod
	}
	pos = methodEnd + 1

	pathEnd := indexByte(buf, pos, ' ')
	if pathEnd < 0 {
		return nil, ErrInvalidRequestLine
	}
	path := buf[pos:pathEnd]
	pos = pathEnd + 1

	crIdx := indexByte(buf, pos, '\r')
	if crIdx < 0 || crIdx+1 >= len(buf) || buf[crIdx+1] != '\n' {
		return nil, ErrInvalidRequestLine
	}
	version := string(buf[pos:crIdx])
	if version != Version {
		return nil, ErrInvalidVersion
	}
	pos = crIdx + 2

	headers, bodyStart, err := parseHeaderBlock(buf, pos)
	if err != nil {
		return nil, err
	}

	return &Request{
		Method:  method,
		Path:    path,
		Version: version,
		Headers: headers,
		Body:    buf[bodyStart:],
	}, nil
}

// ParseResponse parses buf as a full HTTP/1.1 response:
// VERSION SP CODE SP REASON CRLF (HEADER CRLF)* CRLF BODY
//
// The parsed (code, reason) pair must exactly match an entry in the
// status table.
func ParseResponse(buf []byte) (*Response, error) {
	pos := 0

	spaceIdx := indexByte(buf, pos, ' ')
	if spaceIdx < 0 {
		return nil, ErrInvalidStatusLine
	}
	version := string(buf[pos:spaceIdx])
	if version != Version {
		return nil, ErrInvalidVersion
	}
	pos = spaceIdx + 1

	codeEnd := indexByte(buf, pos, ' ')
	if codeEnd < 0 {
		return nil, ErrInvalidStatusLine
	}
	code, ok := parseDecimal(buf[pos:codeEnd])
	if !ok {
		return nil, ErrInvalidStatusLine
	}
	pos = codeEnd + 1

	crIdx := indexByte(buf, pos, '\r')
	if crIdx < 0 || crIdx+1 >= len(buf) || buf[crIdx+1] != '\n' {
		return nil, ErrInvalidStatusLine
	}
	reason := string(buf[pos:crIdx])
	if !statusMatches(code, reason) {
		return nil, ErrInvalidStatusLine
	}
	pos = crIdx + 2

	headers, bodyStart, err := parseHeaderBlock(buf, pos)
	if err != nil {
		return nil, err
	}

	return &Response{
		Version: version,
		Status:  code,
		Reason:  reason,
		Headers: headers,
		Body:    buf[bodyStart:],
	}, nil
}

// parseHeaderBlock parses zero or more "NAME: VALUE\r\n" lines starting
// at pos, terminated by a blank "\r\n" line, and returns the parsed
// headers and the offset of the first body byte.
func parseHeaderBlock(buf []byte, pos int) (HeaderList, int, error) {
	var headers HeaderList
	for {
		if pos+1 < len(buf) && buf[pos] == '\r' && buf[pos+1] == '\n' {
			return headers, pos + 2, nil
		}
		if pos >= len(buf) {
			return nil, 0, ErrTruncated
		}

		colonIdx := indexByte(buf, pos, ':')
		if colonIdx < 0 {
			return nil, 0, ErrInvalidHeader
		}
		name := buf[pos:colonIdx]
		valStart := colonIdx + 1

		crIdx := indexByte(buf, valStart, '\r')
		if crIdx < 0 || crIdx+1 >= len(buf) || buf[crIdx+1] != '\n' {
			return nil, 0, ErrInvalidHeader
		}
		if valStart < crIdx && buf[valStart] == ' ' {
			valStart++
		}
		headers.Add(name, buf[valStart:crIdx])
		pos = crIdx + 2
	}
}

func indexByte(buf []byte, from int, c byte) int {
	if from > len(buf) {
		return -1
	}
	idx := bytes.IndexByte(buf[from:], c)
	if idx < 0 {
		return -1
	}
	return from + idx
}

func parseDecimal(b []byte) (int, bool) {
	if len(b) == 0 {
		return 0, false
	}
	n := 0
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}
