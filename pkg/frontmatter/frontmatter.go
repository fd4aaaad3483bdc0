// Package frontmatter parses and formats the YAML metadata block that
// precedes the markdown body of a skill file.
package frontmatter

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Sentinel errors for malformed documents.
var (
	// ErrMissingFrontmatter is returned by MustParse when the document does
	// not open with a "---" delimiter.
	ErrMissingFrontmatter = errors.New("missing frontmatter")

	// ErrUnclosedFrontmatter is returned when the opening delimiter is never
	// matched by a closing "---" line.
	ErrUnclosedFrontmatter = errors.New("missing closing frontmatter delimiter")
)

// Parse extracts YAML frontmatter and the markdown body from r.
// If the document has no frontmatter the full content is returned as the
// body and matter is left untouched.
func Parse[T any](r io.Reader, matter *T) (body []byte, err error) {
	return parse(r, matter, false)
}

// MustParse is like Parse but fails with ErrMissingFrontmatter when the
// document has no frontmatter block. Skill files require one.
func MustParse[T any](r io.Reader, matter *T) (body []byte, err error) {
	return parse(r, matter, true)
}

func parse[T any](r io.Reader, matter *T, required bool) ([]byte, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if !bytes.HasPrefix(content, []byte("---\n")) && !bytes.HasPrefix(content, []byte("---\r\n")) {
		if required {
			return nil, ErrMissingFrontmatter
		}
		return content, nil
	}

	// Skip the opening delimiter, tolerating CRLF.
	offset := 3
	if offset < len(content) && content[offset] == '\r' {
		offset++
	}
	if offset < len(content) && content[offset] == '\n' {
		offset++
	}

	rest := content[offset:]
	end, delim := findClose(rest)
	if end < 0 {
		if required {
			return nil, ErrUnclosedFrontmatter
		}
		return content, nil
	}

	block := rest[:end]
	body := rest[end+delim:]
	body = trimLeadingNewline(body)

	if err := yaml.Unmarshal(block, matter); err != nil {
		return nil, err
	}
	return body, nil
}

// findClose locates the closing "---" on its own line. It returns the byte
// offset of the newline preceding the delimiter and the combined length of
// newline plus delimiter, or -1 when no close exists.
func findClose(b []byte) (int, int) {
	if i := bytes.Index(b, []byte("\n---")); i >= 0 {
		return i, len("\n---")
	}
	if i := bytes.Index(b, []byte("\r\n---")); i >= 0 {
		return i, len("\r\n---")
	}
	return -1, 0
}

func trimLeadingNewline(b []byte) []byte {
	if len(b) > 0 && b[0] == '\r' {
		b = b[1:]
	}
	if len(b) > 0 && b[0] == '\n' {
		b = b[1:]
	}
	return b
}

// ParseHeader decodes only the frontmatter block, stopping at the closing
// delimiter without consuming the body. Listing a large corpus touches every
// file, so avoiding full reads matters there.
// A document without frontmatter is a silent success; matter is left empty.
func ParseHeader(r io.Reader, matter any) error {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		return scanner.Err()
	}
	if strings.TrimSpace(scanner.Text()) != "---" {
		return nil
	}

	var buf bytes.Buffer
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "---" {
			return yaml.Unmarshal(buf.Bytes(), matter)
		}
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	return ErrUnclosedFrontmatter
}

// Format serializes matter as a YAML frontmatter block followed by body.
func Format(matter any, body string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("---\n")

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(matter); err != nil {
		return nil, err
	}

	buf.WriteString("---\n")
	if body != "" {
		buf.WriteString("\n")
		buf.WriteString(body)
		if !strings.HasSuffix(body, "\n") {
			buf.WriteString("\n")
		}
	}

	return buf.Bytes(), nil
}
