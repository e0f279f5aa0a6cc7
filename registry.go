package nlconst

// Entry is one named constant of the table.
type Entry struct {
	// Name is the kernel header symbol, e.g. "NLM_F_REQUEST".
	Name string
	// Value is the numeric value the headers assign.
	Value uint64
	// Bits is the width of the protocol field the value is used in.
	Bits int
}

type family struct {
	name    string
	entries []Entry
}

// Families returns the constant family names in table order.
func Families() []string {
	names := make([]string, len(families))
	for i, f := range families {
		names[i] = f.name
	}
	return names
}

// Family returns the entries of the named family in header order, or
// nil for an unknown family name.
func Family(name string) []Entry {
	for _, f := range families {
		if f.name == name {
			entries := make([]Entry, len(f.entries))
			copy(entries, f.entries)
			return entries
		}
	}
	return nil
}

// Lookup finds an entry by its exact kernel symbol name.
func Lookup(name string) (Entry, bool) {
	for _, f := range families {
		for _, e := range f.entries {
			if e.Name == name {
				return e, true
			}
		}
	}
	return Entry{}, false
}
