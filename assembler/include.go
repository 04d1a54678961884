package assembler

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// expandSource is the expansion pass: directives are consumed here, every
// other line lands in out unchanged. Included files expand recursively at
// the position of their directive.
func (a *Assembler) expandSource(source, baseDir string, out *[]string) error {
	sc := bufio.NewScanner(strings.NewReader(source))
	for sc.Scan() {
		rawLine := sc.Text()
		clean := CleanLine(rawLine)
		switch {
		case strings.HasPrefix(clean, "#includePath"):
			a.ctx.NextAsmLine()
			path, ok := directiveArg(clean)
			if !ok {
				return errors.Wrapf(ErrPath, "malformed directive %q", clean)
			}
			if err := a.ctx.AddIncludePath(path); err != nil {
				return err
			}
		case strings.HasPrefix(clean, "#include"):
			a.ctx.NextAsmLine()
			name, ok := directiveArg(clean)
			if !ok {
				return errors.Wrapf(ErrIncludeResolve, "malformed directive %q", clean)
			}
			if err := a.expandInclude(name, baseDir, out); err != nil {
				return err
			}
		default:
			*out = append(*out, rawLine)
		}
	}
	if err := sc.Err(); err != nil {
		return errors.Wrapf(ErrInputRead, "%v", err)
	}
	return nil
}

// directiveArg extracts the single-quoted argument of an include directive.
func directiveArg(clean string) (string, bool) {
	first := strings.IndexByte(clean, '\'')
	if first < 0 {
		return "", false
	}
	rest := clean[first+1:]
	second := strings.IndexByte(rest, '\'')
	if second < 0 {
		return "", false
	}
	return rest[:second], true
}

func (a *Assembler) expandInclude(name, fromDir string, out *[]string) error {
	resolved, err := a.resolveInclude(name, fromDir)
	if err != nil {
		return err
	}
	canonical, err := filepath.Abs(resolved)
	if err != nil {
		return errors.Wrapf(ErrPath, "%q: %v", resolved, err)
	}
	if a.expanding[canonical] {
		return errors.Wrapf(ErrIncludeCycle, "%q includes itself", canonical)
	}
	src, err := os.ReadFile(canonical)
	if err != nil {
		return errors.Wrapf(ErrInputRead, "%v", err)
	}
	logrus.Debugf("expanding include %s", canonical)
	a.expanding[canonical] = true
	prevFile := a.ctx.File()
	a.ctx.SetFile(canonical)
	defer func() {
		a.ctx.SetFile(prevFile)
		delete(a.expanding, canonical)
	}()
	return a.expandSource(string(src), filepath.Dir(canonical), out)
}

// resolveInclude finds the file an include names. The including file's own
// directory wins when the name exists there; otherwise every search path is
// tried and exactly one may match.
func (a *Assembler) resolveInclude(name, fromDir string) (string, error) {
	relative := filepath.Join(fromDir, name)
	if fileExists(relative) {
		return relative, nil
	}
	var matches []string
	for _, dir := range a.ctx.IncludePaths() {
		candidate := filepath.Join(dir, name)
		if fileExists(candidate) {
			matches = append(matches, candidate)
		}
	}
	switch len(matches) {
	case 0:
		if file := a.ctx.File(); file != "" {
			return "", errors.Wrapf(ErrIncludeResolve, "%q in %s", name, file)
		}
		return "", errors.Wrapf(ErrIncludeResolve, "%q", name)
	case 1:
		return matches[0], nil
	default:
		return "", errors.Wrapf(ErrIncludeConflict, "%q resolves to %s",
			name, strings.Join(matches, " and "))
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
