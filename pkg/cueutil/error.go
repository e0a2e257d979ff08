// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"
	"strings"

	"cuelang.org/go/cue/errors"
)

// DefaultMaxFileSize is the largest CUE file the loaders will accept.
// Prevents pathological inputs from exhausting memory during compile.
const DefaultMaxFileSize int64 = 1 << 20 // 1 MiB

// FormatError rewrites a CUE error into "<file>: <json-path>: <message>" form.
// The original error stays in the chain, so errors.Is and errors.As still see
// the cause behind the rewritten message.
//
// Example: config.cue: ui.color_scheme: expected "auto" | "dark" | "light"
func FormatError(err error, filePath string) error {
	if err == nil {
		return nil
	}

	cueErrors := errors.Errors(err)
	if len(cueErrors) == 0 {
		return fmt.Errorf("%s: %w", filePath, err)
	}

	var lines []string
	for _, e := range cueErrors {
		pathStr := formatPath(errors.Path(e))
		msg := e.Error()

		// CUE sometimes repeats the path inside the message; drop it.
		if pathStr != "" && strings.HasPrefix(msg, pathStr) {
			msg = strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(msg, pathStr), ":"))
		}

		if pathStr != "" {
			lines = append(lines, fmt.Sprintf("%s: %s", pathStr, msg))
		} else {
			lines = append(lines, msg)
		}
	}

	if len(lines) == 1 {
		return &formattedError{msg: fmt.Sprintf("%s: %s", filePath, lines[0]), err: err}
	}
	return &formattedError{
		msg: fmt.Sprintf("%s: validation failed:\n  %s", filePath, strings.Join(lines, "\n  ")),
		err: err,
	}
}

// formattedError carries the rewritten message while keeping the underlying
// error reachable through Unwrap. errors.Errors promotes any non-nil error to
// a one-element list, so even plain errors take the formatted path.
type formattedError struct {
	msg string
	err error
}

func (e *formattedError) Error() string {
	return e.msg
}

func (e *formattedError) Unwrap() error {
	return e.err
}

// formatPath converts a CUE error path slice to JSON-path notation, turning
// ["ui", "0", "theme"] into "ui[0].theme".
func formatPath(path []string) string {
	if len(path) == 0 {
		return ""
	}

	var result strings.Builder
	for i, part := range path {
		isIndex := part != ""
		for _, c := range part {
			if c < '0' || c > '9' {
				isIndex = false
				break
			}
		}

		switch {
		case isIndex && i > 0:
			result.WriteString("[")
			result.WriteString(part)
			result.WriteString("]")
		case i > 0:
			result.WriteString(".")
			result.WriteString(part)
		default:
			result.WriteString(part)
		}
	}
	return result.String()
}

// CheckFileSize verifies that data fits within maxSize bytes.
func CheckFileSize(data []byte, maxSize int64, filename string) error {
	if int64(len(data)) > maxSize {
		return fmt.Errorf("%s: file size %d bytes exceeds maximum %d bytes",
			filename, len(data), maxSize)
	}
	return nil
}
