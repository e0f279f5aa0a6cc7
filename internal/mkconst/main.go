// mkconst generates the constant table of package nlconst from a set of
// Linux kernel headers. It is run via go generate and needs the headers
// of the build platform; when they are missing it exits with an error
// instead of emitting guessed values.
//
// Two symbols have documented fallbacks for header sets of other kernel
// generations: NLM_F_DUMP_FILTERED binds to 32 when absent, and
// GENL_ID_GENERATE (dropped from the headers in kernel 4.10) binds
// to 0. Everything else is required.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	netlinkPath   = flag.String("netlink", "/usr/include/linux/netlink.h", "path to linux/netlink.h")
	genetlinkPath = flag.String("genetlink", "/usr/include/linux/genetlink.h", "path to linux/genetlink.h")
	manifestPath  = flag.String("manifest", "symbols.yml", "path to the symbol manifest")
	outPath       = flag.String("o", "zconst.go", "output file")
)

func main() {
	flag.Parse()

	m, err := loadManifest(*manifestPath)
	if err != nil {
		log.Fatal(err)
	}

	defines, err := loadDefines(*netlinkPath, *genetlinkPath)
	if err != nil {
		log.Fatal(err)
	}

	resolved, err := resolveGroups(m, defines)
	if err != nil {
		log.Fatal(err)
	}

	src, err := generate(resolved)
	if err != nil {
		log.Fatal(err)
	}

	if err := os.WriteFile(*outPath, src, 0644); err != nil {
		log.Fatal(err)
	}
}

// symbol is one constant to generate. In the manifest it is either a
// bare name or a mapping carrying a fallback value for header sets
// that do not define the macro.
type symbol struct {
	Name     string
	Fallback *uint64
}

func (s *symbol) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		return node.Decode(&s.Name)
	}
	var aux struct {
		Name     string  `yaml:"name"`
		Fallback *uint64 `yaml:"fallback"`
	}
	if err := node.Decode(&aux); err != nil {
		return err
	}
	if aux.Name == "" {
		return fmt.Errorf("manifest symbol entry without a name (line %d)", node.Line)
	}
	s.Name = aux.Name
	s.Fallback = aux.Fallback
	return nil
}

type group struct {
	Name    string   `yaml:"name"`
	Header  string   `yaml:"header"`
	Type    string   `yaml:"type"`
	Bits    int      `yaml:"bits"`
	Comment string   `yaml:"comment"`
	Symbols []symbol `yaml:"symbols"`
}

type manifest struct {
	Groups []group `yaml:"groups"`
}

func loadManifest(path string) (*manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read manifest: %w", err)
	}
	var m manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("cannot parse manifest %s: %w", path, err)
	}
	for _, g := range m.Groups {
		if g.Name == "" || len(g.Symbols) == 0 {
			return nil, fmt.Errorf("manifest %s: group %q is incomplete", path, g.Name)
		}
		if g.Header != "netlink" && g.Header != "genetlink" {
			return nil, fmt.Errorf("manifest %s: group %q references unknown header %q", path, g.Name, g.Header)
		}
		switch g.Bits {
		case 8, 16, 32:
		default:
			return nil, fmt.Errorf("manifest %s: group %q has unsupported width %d", path, g.Name, g.Bits)
		}
	}
	return &m, nil
}

// loadDefines parses both headers. genetlink.h includes netlink.h, so
// the netlink definitions are visible when resolving genetlink symbols.
func loadDefines(netlink, genetlink string) (map[string]map[string]string, error) {
	defines := make(map[string]map[string]string, 2)
	for key, path := range map[string]string{"netlink": netlink, "genetlink": genetlink} {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("kernel header %s is not available: %w", path, err)
		}
		d, err := parseDefines(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("cannot parse kernel header %s: %w", path, err)
		}
		defines[key] = d
	}
	for name, expr := range defines["netlink"] {
		if _, ok := defines["genetlink"][name]; !ok {
			defines["genetlink"][name] = expr
		}
	}
	return defines, nil
}
