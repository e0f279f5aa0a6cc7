// nldump prints the netlink constant table and decodes raw header
// field values into symbolic names.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/x-way/nlconst"
	"github.com/x-way/nlconst/pkg/rtnl"
)

var (
	familyName  = flag.String("family", "", "print only the named constant family")
	decodeFlags = flag.String("decode-flags", "", "decode a numeric nl_flags value into NLM_F_* names")
	decodeType  = flag.String("decode-type", "", "decode a numeric nl_type value into a symbolic name")
	jsonOutput  = flag.Bool("json", false, "emit the table as JSON instead of text")
	verify      = flag.Bool("verify", false, "compare the table against golang.org/x/sys/unix (Linux only)")
)

func main() {
	log.SetFlags(0)
	flag.Parse()

	switch {
	case *decodeFlags != "":
		v, err := parseValue(*decodeFlags, 16)
		if err != nil {
			log.Fatalf("invalid flags value %q: %v", *decodeFlags, err)
		}
		fmt.Println(nlconst.HeaderFlag(v))
	case *decodeType != "":
		v, err := parseValue(*decodeType, 16)
		if err != nil {
			log.Fatalf("invalid type value %q: %v", *decodeType, err)
		}
		fmt.Println(decodeMsgType(uint16(v)))
	case *verify:
		if err := verifyTable(); err != nil {
			log.Fatal(err)
		}
		fmt.Println("ok")
	default:
		if err := printTable(os.Stdout, *familyName, *jsonOutput); err != nil {
			log.Fatal(err)
		}
	}
}

// parseValue accepts decimal, hex (0x) and octal (0) input and rejects
// values wider than the target field.
func parseValue(s string, bits int) (uint64, error) {
	return strconv.ParseUint(s, 0, bits)
}

// decodeMsgType names an nl_type value. Control messages and generic
// netlink reservations come first; the rtnetlink message range is
// consulted for values the core table does not name.
func decodeMsgType(v uint16) string {
	s := nlconst.MsgType(v).String()
	if !strings.HasPrefix(s, "MSGTYPE(") {
		return s
	}
	if rt := rtnl.MsgType(v).String(); !strings.HasPrefix(rt, "RTM(") {
		return rt
	}
	return s
}

func printTable(w io.Writer, family string, asJSON bool) error {
	names := nlconst.Families()
	if family != "" {
		if nlconst.Family(family) == nil {
			return fmt.Errorf("unknown constant family %q", family)
		}
		names = []string{family}
	}

	if asJSON {
		table := make(map[string][]nlconst.Entry, len(names))
		for _, name := range names {
			table[name] = nlconst.Family(name)
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(table)
	}

	for i, name := range names {
		entries := nlconst.Family(name)
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "# %s (%d-bit)\n", name, entries[0].Bits)
		for _, e := range entries {
			fmt.Fprintf(w, "%-28s 0x%x\n", e.Name, e.Value)
		}
	}
	return nil
}
