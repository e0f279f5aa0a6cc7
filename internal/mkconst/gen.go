package main

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
)

type resolvedGroup struct {
	group
	values []uint64
}

// resolveGroups evaluates every manifest symbol against the parsed
// headers. A missing symbol takes its manifest fallback when one is
// declared and aborts generation otherwise, per the contract that a
// broken build environment must not produce silently wrong values.
func resolveGroups(m *manifest, defines map[string]map[string]string) ([]resolvedGroup, error) {
	resolved := make([]resolvedGroup, 0, len(m.Groups))
	for _, g := range m.Groups {
		rg := resolvedGroup{group: g, values: make([]uint64, len(g.Symbols))}
		for i, s := range g.Symbols {
			v, err := resolve(s.Name, defines[g.Header])
			if errors.Is(err, ErrSymbolMissing) && s.Fallback != nil {
				v = *s.Fallback
			} else if err != nil {
				return nil, err
			}
			if v >= 1<<g.Bits {
				return nil, fmt.Errorf("%s: value 0x%x does not fit the %d-bit width of group %s", s.Name, v, g.Bits, g.Name)
			}
			rg.values[i] = v
		}
		resolved = append(resolved, rg)
	}
	return resolved, nil
}

// generate renders the resolved groups as the zconst.go source file,
// gofmt-formatted.
func generate(groups []resolvedGroup) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("// Code generated by internal/mkconst from linux/netlink.h and linux/genetlink.h; DO NOT EDIT.\n")
	buf.WriteString("\npackage nlconst\n")

	for _, g := range groups {
		fmt.Fprintf(&buf, "\n// %s\nconst (\n", g.Comment)
		for i, s := range g.Symbols {
			fmt.Fprintf(&buf, "\t%s %s = 0x%x\n", s.Name, g.Type, g.values[i])
		}
		buf.WriteString(")\n")
	}

	buf.WriteString("\nvar families = []family{\n")
	for _, g := range groups {
		fmt.Fprintf(&buf, "\t{%q, []Entry{\n", g.Name)
		for i, s := range g.Symbols {
			fmt.Fprintf(&buf, "\t\t{%q, 0x%x, %d},\n", s.Name, g.values[i], g.Bits)
		}
		buf.WriteString("\t}},\n")
	}
	buf.WriteString("}\n")

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("generated source does not format: %w", err)
	}
	return src, nil
}
