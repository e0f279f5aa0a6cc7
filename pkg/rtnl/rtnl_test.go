package rtnl

import "testing"

func TestMsgTypeString(t *testing.T) {
	tables := []struct {
		typ      MsgType
		expected string
	}{
		{RTM_NEWLINK, "RTM_NEWLINK"},
		{RTM_GETROUTE, "RTM_GETROUTE"},
		{RTM_DELNSID, "RTM_DELNSID"},
		{MsgType(23), "RTM(23)"},
		{MsgType(0), "RTM(0)"},
	}
	for _, table := range tables {
		if got := table.typ.String(); got != table.expected {
			t.Errorf("MsgType string was incorrect, got: '%s', expected: '%s'.", got, table.expected)
		}
	}
}

// No two message types render to the same name, every name starts in
// the rtnetlink range above the reserved control types, and String
// round-trips through the table.
func TestMsgTypeNamesUnique(t *testing.T) {
	seen := make(map[string]MsgType)
	for typ, name := range msgTypeNames {
		if name == "" {
			t.Errorf("message type %d has an empty name", uint16(typ))
			continue
		}
		if prev, ok := seen[name]; ok {
			t.Errorf("name %s is mapped to both %d and %d", name, uint16(prev), uint16(typ))
		}
		seen[name] = typ
		if typ < RTM_NEWLINK {
			t.Errorf("%s sits below RTM_NEWLINK in the reserved range: %d", name, uint16(typ))
		}
		if got := typ.String(); got != name {
			t.Errorf("MsgType string was incorrect, got: '%s', expected: '%s'.", got, name)
		}
	}
}

func TestMsgTypeTriplets(t *testing.T) {
	// Each object family occupies a block of four starting at a
	// multiple of four, with NEW, DEL, GET in the first three slots.
	tables := []struct {
		newT, delT, getT MsgType
	}{
		{RTM_NEWLINK, RTM_DELLINK, RTM_GETLINK},
		{RTM_NEWADDR, RTM_DELADDR, RTM_GETADDR},
		{RTM_NEWROUTE, RTM_DELROUTE, RTM_GETROUTE},
		{RTM_NEWNEIGH, RTM_DELNEIGH, RTM_GETNEIGH},
		{RTM_NEWRULE, RTM_DELRULE, RTM_GETRULE},
		{RTM_NEWQDISC, RTM_DELQDISC, RTM_GETQDISC},
		{RTM_NEWTCLASS, RTM_DELTCLASS, RTM_GETTCLASS},
		{RTM_NEWTFILTER, RTM_DELTFILTER, RTM_GETTFILTER},
		{RTM_NEWMDB, RTM_DELMDB, RTM_GETMDB},
		{RTM_NEWNSID, RTM_DELNSID, RTM_GETNSID},
	}
	for _, table := range tables {
		if table.newT%4 != 0 {
			t.Errorf("%s is not aligned to a block of four", table.newT)
		}
		if table.delT != table.newT+1 || table.getT != table.newT+2 {
			t.Errorf("%s block is not NEW/DEL/GET consecutive", table.newT)
		}
	}
}

func TestScopeValues(t *testing.T) {
	tables := []struct {
		scope    Scope
		expected uint8
	}{
		{RT_SCOPE_UNIVERSE, 0},
		{RT_SCOPE_SITE, 200},
		{RT_SCOPE_LINK, 253},
		{RT_SCOPE_HOST, 254},
		{RT_SCOPE_NOWHERE, 255},
	}
	for _, table := range tables {
		if uint8(table.scope) != table.expected {
			t.Errorf("scope value was incorrect, got: %d, expected: %d.", uint8(table.scope), table.expected)
		}
	}
}

func TestAddrFlagString(t *testing.T) {
	tables := []struct {
		flag     AddrFlag
		expected string
	}{
		{IFA_F_PERMANENT, "IFA_F_PERMANENT"},
		{IFA_F_SECONDARY, "IFA_F_SECONDARY"},
		{IFA_F_TEMPORARY, "IFA_F_SECONDARY"},
		{IFA_F_NODAD | IFA_F_PERMANENT, "IFA_F_NODAD|IFA_F_PERMANENT"},
		{AddrFlag(0x10000), "0x10000"},
		{AddrFlag(0), "0"},
	}
	for _, table := range tables {
		if got := table.flag.String(); got != table.expected {
			t.Errorf("AddrFlag string was incorrect, got: '%s', expected: '%s'.", got, table.expected)
		}
	}
}

func TestAddrFlagsDisjoint(t *testing.T) {
	var seen AddrFlag
	for _, fn := range addrFlagNames {
		if seen&fn.flag != 0 {
			t.Errorf("%s overlaps a previously declared flag", fn.name)
		}
		seen |= fn.flag
	}
}
