// Package parser provides SKILL.md file parsing. It extracts the YAML
// frontmatter and markdown instructions from skill files.
package parser

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/thoreinstein/skillsref/internal/skill"
	"github.com/thoreinstein/skillsref/pkg/fileutil"
	"github.com/thoreinstein/skillsref/pkg/frontmatter"
)

// Parser handles SKILL.md file parsing operations.
type Parser struct{}

// New creates a new Parser instance.
func New() *Parser {
	return &Parser{}
}

// ParseFile reads and parses a SKILL.md file from the given path.
// Reads are bounded by fileutil.MaxFileSize.
func (p *Parser) ParseFile(path string) (*skill.Skill, error) {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return nil, parseError(path, err)
	}

	return p.ParseBytes(data, path)
}

// Parse reads and parses a SKILL.md from the given reader.
// The path parameter is used for error context only.
func (p *Parser) Parse(r io.Reader, path string) (*skill.Skill, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, parseError(path, err)
	}

	return p.ParseBytes(data, path)
}

// ParseBytes parses SKILL.md content from bytes.
// The path parameter is used for error context only.
func (p *Parser) ParseBytes(data []byte, path string) (*skill.Skill, error) {
	var s skill.Skill
	body, err := frontmatter.MustParse(bytes.NewReader(data), &s)
	if err != nil {
		return nil, parseError(path, err)
	}

	s.Instructions = strings.TrimSpace(string(body))
	return &s, nil
}

// ParseHeader parses only the frontmatter, stopping at the closing delimiter.
// Listing a corpus does not need the instructions, so this avoids reading
// full bodies.
func (p *Parser) ParseHeader(path string) (*skill.Skill, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, parseError(path, err)
	}
	defer f.Close()

	var s skill.Skill
	if err := frontmatter.ParseHeader(f, &s); err != nil {
		return nil, parseError(path, err)
	}

	return &s, nil
}
