package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// ErrSymbolMissing reports that a required macro is not defined by the
// header set. Only symbols with a manifest fallback may hit it without
// aborting generation.
var ErrSymbolMissing = errors.New("symbol not defined by headers")

// Object-like macros only: a name directly followed by '(' is a
// function-like macro (NLMSG_ALIGN and friends) and is skipped.
var (
	defineRe     = regexp.MustCompile(`^\s*#\s*define\s+([A-Za-z_][A-Za-z0-9_]*)\s+(\S.*)$`)
	enumStartRe  = regexp.MustCompile(`^\s*enum\b[^{]*\{`)
	enumeratorRe = regexp.MustCompile(`^\s*([A-Za-z_][A-Za-z0-9_]*)\s*(?:=\s*([^,]+?))?\s*,?\s*$`)
)

// parseDefines extracts the constant definitions of a header into a
// name to raw-expression map. Both object-like #define lines and the
// enum blocks genetlink.h uses for the controller commands and
// attributes are covered; expressions are kept unevaluated.
func parseDefines(r io.Reader) (map[string]string, error) {
	defines := make(map[string]string)
	scanner := bufio.NewScanner(r)
	inEnum := false
	inComment := false
	var enumNext uint64
	enumCounting := false
	for scanner.Scan() {
		line := stripComments(scanner.Text(), &inComment)

		if inEnum {
			if strings.Contains(line, "}") {
				inEnum = false
				continue
			}
			res := enumeratorRe.FindStringSubmatch(line)
			if res == nil {
				continue
			}
			name, expr := res[1], strings.TrimSpace(res[2])
			switch {
			case expr != "":
				defines[name] = expr
				if v, err := strconv.ParseUint(expr, 0, 64); err == nil {
					enumNext = v + 1
					enumCounting = true
				} else {
					// Enumerator with a symbolic value; implicit
					// successors cannot be numbered reliably.
					enumCounting = false
				}
			case enumCounting:
				defines[name] = strconv.FormatUint(enumNext, 10)
				enumNext++
			}
			continue
		}

		if enumStartRe.MatchString(line) {
			inEnum = true
			enumNext = 0
			enumCounting = true
			continue
		}

		res := defineRe.FindStringSubmatch(line)
		if res == nil {
			continue
		}
		expr := strings.TrimSpace(res[2])
		if expr == "" {
			continue
		}
		defines[res[1]] = expr
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return defines, nil
}

// stripComments drops // and /* */ comments from a single line.
// inComment carries block-comment state across lines so the body of a
// multi-line comment is never mistaken for code.
func stripComments(line string, inComment *bool) string {
	var out strings.Builder
	for i := 0; i < len(line); {
		if *inComment {
			end := strings.Index(line[i:], "*/")
			if end < 0 {
				return out.String()
			}
			i += end + 2
			*inComment = false
			continue
		}
		if strings.HasPrefix(line[i:], "/*") {
			*inComment = true
			i += 2
			continue
		}
		if strings.HasPrefix(line[i:], "//") {
			break
		}
		out.WriteByte(line[i])
		i++
	}
	return out.String()
}

// resolve evaluates the macro with the given name to a numeric value.
// The supported expression grammar covers what linux/netlink.h and
// linux/genetlink.h actually use: integer literals, references to other
// macros, bitwise OR, addition/subtraction, and parentheses.
func resolve(name string, defines map[string]string) (uint64, error) {
	return resolveSymbol(name, defines, make(map[string]bool))
}

func resolveSymbol(name string, defines map[string]string, seen map[string]bool) (uint64, error) {
	if seen[name] {
		return 0, fmt.Errorf("%s: circular macro definition", name)
	}
	seen[name] = true
	expr, ok := defines[name]
	if !ok {
		return 0, fmt.Errorf("%s: %w", name, ErrSymbolMissing)
	}
	v, err := evalExpr(expr, defines, seen)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return v, nil
}

func evalExpr(expr string, defines map[string]string, seen map[string]bool) (uint64, error) {
	expr = stripParens(strings.TrimSpace(expr))
	if expr == "" {
		return 0, errors.New("empty expression")
	}

	if terms := splitTop(expr, '|'); len(terms) > 1 {
		var v uint64
		for _, term := range terms {
			tv, err := evalExpr(term, defines, seen)
			if err != nil {
				return 0, err
			}
			v |= tv
		}
		return v, nil
	}

	if terms, ops := splitAdditive(expr); len(terms) > 1 {
		v, err := evalExpr(terms[0], defines, seen)
		if err != nil {
			return 0, err
		}
		for i, op := range ops {
			tv, err := evalExpr(terms[i+1], defines, seen)
			if err != nil {
				return 0, err
			}
			if op == '+' {
				v += tv
			} else {
				v -= tv
			}
		}
		return v, nil
	}

	if c := expr[0]; c >= '0' && c <= '9' {
		lit := strings.TrimRight(expr, "uUlL")
		v, err := strconv.ParseUint(lit, 0, 64)
		if err != nil {
			return 0, fmt.Errorf("cannot parse literal %q: %w", expr, err)
		}
		return v, nil
	}

	return resolveSymbol(expr, defines, seen)
}

// splitAdditive splits on top-level binary + and - operators, keeping
// the operator sequence alongside the terms.
func splitAdditive(expr string) ([]string, []byte) {
	var parts []string
	var ops []byte
	depth := 0
	last := 0
	for i := 0; i < len(expr); i++ {
		switch expr[i] {
		case '(':
			depth++
		case ')':
			depth--
		case '+', '-':
			if depth == 0 && i > last {
				parts = append(parts, strings.TrimSpace(expr[last:i]))
				ops = append(ops, expr[i])
				last = i + 1
			}
		}
	}
	parts = append(parts, strings.TrimSpace(expr[last:]))
	return parts, ops
}

// stripParens removes an outer parenthesis pair that encloses the whole
// expression, repeatedly: "((A|B))" becomes "A|B", "(A)|(B)" is left
// alone.
func stripParens(expr string) string {
	for len(expr) > 1 && expr[0] == '(' && expr[len(expr)-1] == ')' {
		depth := 0
		closed := false
		for i, c := range expr[:len(expr)-1] {
			switch c {
			case '(':
				depth++
			case ')':
				depth--
				if depth == 0 && i < len(expr)-1 {
					closed = true
				}
			}
		}
		if closed {
			return expr
		}
		expr = strings.TrimSpace(expr[1 : len(expr)-1])
	}
	return expr
}

// splitTop splits on sep at parenthesis depth zero.
func splitTop(expr string, sep rune) []string {
	var parts []string
	depth := 0
	last := 0
	for i, c := range expr {
		switch c {
		case '(':
			depth++
		case ')':
			depth--
		case sep:
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(expr[last:i]))
				last = i + 1
			}
		}
	}
	parts = append(parts, strings.TrimSpace(expr[last:]))
	return parts
}
