// SPDX-License-Identifier: MIT
//
// File: parse.go
// Role: SEM-I file reader: predicate signatures, sections and includes.

package semi

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// section names recognised in SEM-I files.
const (
	sectionPredicates = "predicates"
	directiveInclude  = "include"
	commentPrefix     = ";"
)

// Parse reads SEM-I text from r into a new Index. include: directives are
// ignored; use Load to follow them. Every malformed synopsis is reported; the
// returned error is a *multierror.Error whose entries wrap ErrSyntax.
func Parse(r io.Reader) (*Index, error) {
	ix := NewIndex()
	p := &parser{ix: ix, name: "<input>"}
	if err := p.parse(r); err != nil {
		return ix, err
	}

	return ix, p.errs.ErrorOrNil()
}

// Load reads the SEM-I file at path, following include: directives relative
// to the including file. Files are read at most once.
func Load(path string) (*Index, error) {
	ix := NewIndex()
	p := &parser{ix: ix, visited: make(map[string]bool), follow: true}
	if err := p.load(path); err != nil {
		return ix, err
	}

	return ix, p.errs.ErrorOrNil()
}

type parser struct {
	ix      *Index
	name    string          // current file, for error messages
	dir     string          // directory includes are relative to
	follow  bool            // follow include: directives
	visited map[string]bool // absolute paths already read
	errs    *multierror.Error
}

func (p *parser) load(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("semi: %s: %w", path, err)
	}
	if p.visited[abs] {
		return nil
	}
	p.visited[abs] = true

	f, err := os.Open(abs)
	if err != nil {
		return fmt.Errorf("semi: %w", err)
	}
	defer f.Close()

	prevName, prevDir := p.name, p.dir
	p.name, p.dir = path, filepath.Dir(abs)
	defer func() { p.name, p.dir = prevName, prevDir }()

	return p.parse(f)
}

// parse scans one file. Statements in the predicates section may span lines
// and end with a period.
func (p *parser) parse(r io.Reader) error {
	var (
		section string
		stmt    strings.Builder
		start   int
	)
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(stripComment(sc.Text()))
		if line == "" {
			continue
		}

		if stmt.Len() == 0 {
			if name, arg, ok := directive(line); ok {
				if name == directiveInclude {
					if err := p.include(arg); err != nil {
						return err
					}
				} else {
					section = name
				}
				continue
			}
			start = lineNo
		}
		if section != sectionPredicates {
			continue
		}

		if stmt.Len() > 0 {
			stmt.WriteByte(' ')
		}
		stmt.WriteString(line)
		if strings.HasSuffix(line, ".") {
			p.statement(stmt.String(), start)
			stmt.Reset()
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("semi: %s: %w", p.name, err)
	}
	if stmt.Len() > 0 {
		p.fail(start, "unterminated synopsis %q", stmt.String())
	}

	return nil
}

func (p *parser) include(arg string) error {
	if !p.follow {
		return nil
	}
	path := arg
	if !filepath.IsAbs(path) {
		path = filepath.Join(p.dir, path)
	}

	return p.load(path)
}

// statement parses "name [<: parents] : role, role, ... ." and stores it.
func (p *parser) statement(stmt string, line int) {
	body := strings.TrimSpace(strings.TrimSuffix(stmt, "."))
	fields := strings.Fields(body)
	if len(fields) == 0 {
		p.fail(line, "empty synopsis")
		return
	}
	name := fields[0]
	rest := strings.TrimSpace(body[len(name):])

	switch {
	case strings.HasPrefix(rest, "<:"):
		// hierarchy statement, possibly followed by a synopsis
		i := strings.Index(rest[2:], ":")
		if i < 0 {
			return
		}
		rest = rest[2+i+1:]
	case strings.HasPrefix(rest, ":"):
		rest = rest[1:]
	default:
		p.fail(line, "expected ':' after %q", name)
		return
	}

	roles, err := parseRoles(removeBraces(rest))
	if err != nil {
		p.fail(line, "%s: %v", name, err)
		return
	}
	p.ix.Add(Signature{Predicate: name, Roles: roles})
}

func (p *parser) fail(line int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	p.errs = multierror.Append(p.errs, fmt.Errorf("%s:%d: %s: %w", p.name, line, msg, ErrSyntax))
}

// parseRoles splits "ARG0 e, [ ARG1 x ]" into roles.
func parseRoles(s string) ([]Role, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	roles := make([]Role, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		optional := false
		if strings.HasPrefix(part, "[") {
			if !strings.HasSuffix(part, "]") {
				return nil, fmt.Errorf("unbalanced brackets in %q", part)
			}
			optional = true
			part = strings.TrimSpace(part[1 : len(part)-1])
		}
		f := strings.Fields(part)
		if len(f) != 2 {
			return nil, fmt.Errorf("bad role %q", part)
		}
		roles = append(roles, Role{Name: strings.ToUpper(f[0]), Type: strings.ToLower(f[1]), Optional: optional})
	}

	return roles, nil
}

// removeBraces drops "{ ... }" property blocks.
func removeBraces(s string) string {
	var b strings.Builder
	depth := 0
	for _, r := range s {
		switch {
		case r == '{':
			depth++
		case r == '}':
			if depth > 0 {
				depth--
			}
		case depth == 0:
			b.WriteRune(r)
		}
	}

	return b.String()
}

// directive recognises "predicates:" style section headers and "include: x".
func directive(line string) (name, arg string, ok bool) {
	i := strings.Index(line, ":")
	if i <= 0 {
		return "", "", false
	}
	name = strings.TrimSpace(line[:i])
	if strings.ContainsAny(name, " \t<") {
		return "", "", false
	}
	arg = strings.TrimSpace(line[i+1:])
	if name == directiveInclude {
		return name, arg, arg != ""
	}
	if arg != "" {
		return "", "", false
	}

	return strings.ToLower(name), "", true
}

func stripComment(line string) string {
	if i := strings.Index(line, commentPrefix); i >= 0 {
		return line[:i]
	}

	return line
}
