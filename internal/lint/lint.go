// Package lint checks the markdown instructions of a skill for problems a
// frontmatter validator cannot see: broken relative links, code fences
// without a language tag, and bodies that do not open with a heading.
package lint

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/thoreinstein/skillsref/internal/paths"
	"github.com/thoreinstein/skillsref/internal/validator"
	"github.com/thoreinstein/skillsref/pkg/fileutil"
	"github.com/thoreinstein/skillsref/pkg/frontmatter"
)

// Linter lints skill instruction bodies.
type Linter struct {
	md goldmark.Markdown
}

// New creates a new Linter.
func New() *Linter {
	return &Linter{
		md: goldmark.New(),
	}
}

// LintDir reads the SKILL.md inside skillDir and lints its markdown body.
// Relative links are resolved against skillDir.
func (l *Linter) LintDir(skillDir string) (*validator.Result, error) {
	data, err := fileutil.ReadFileWithLimit(paths.SkillFile(skillDir))
	if err != nil {
		return nil, err
	}

	var meta struct{}
	body, err := frontmatter.Parse(strings.NewReader(string(data)), &meta)
	if err != nil {
		return nil, err
	}

	return l.Lint(body, skillDir), nil
}

// Lint checks a markdown body. skillDir anchors relative link resolution;
// pass an empty string to skip filesystem checks.
func (l *Linter) Lint(body []byte, skillDir string) *validator.Result {
	result := &validator.Result{}

	if len(strings.TrimSpace(string(body))) == 0 {
		result.AddWarning("body", "instructions are empty", nil)
		return result
	}

	doc := l.md.Parser().Parse(text.NewReader(body))

	l.checkOpening(doc, result)

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.FencedCodeBlock:
			if node.Language(body) == nil {
				result.AddWarning("body", "fenced code block has no language tag", nil)
			}
		case *ast.Link:
			l.checkDestination(string(node.Destination), skillDir, result)
		case *ast.Image:
			l.checkDestination(string(node.Destination), skillDir, result)
		}

		return ast.WalkContinue, nil
	})

	return result
}

// checkOpening warns when the instructions do not start with a heading.
func (l *Linter) checkOpening(doc ast.Node, result *validator.Result) {
	first := doc.FirstChild()
	if first == nil {
		return
	}
	if _, ok := first.(*ast.Heading); !ok {
		result.AddWarning("body", "instructions should open with a heading", nil)
	}
}

// checkDestination validates a link or image destination.
// External URLs and in-document fragments are left alone; relative paths
// must stay inside the skill directory and point at an existing file.
func (l *Linter) checkDestination(dest, skillDir string, result *validator.Result) {
	if dest == "" {
		result.AddWarning("body", "link has an empty destination", nil)
		return
	}
	if isExternal(dest) || strings.HasPrefix(dest, "#") {
		return
	}
	if strings.HasPrefix(dest, "/") {
		result.AddWarning("body", "link uses an absolute path; use a path relative to the skill directory", dest)
		return
	}

	// Drop any fragment before touching the filesystem.
	path := dest
	if i := strings.IndexByte(path, '#'); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		return
	}

	clean := filepath.Clean(filepath.FromSlash(path))
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		result.AddError("body", "link escapes the skill directory", dest)
		return
	}

	if skillDir == "" {
		return
	}
	if _, err := os.Stat(filepath.Join(skillDir, clean)); err != nil {
		result.AddError("body", "link target does not exist", dest)
	}
}

func isExternal(dest string) bool {
	return strings.Contains(dest, "://") ||
		strings.HasPrefix(dest, "mailto:") ||
		strings.HasPrefix(dest, "tel:")
}
