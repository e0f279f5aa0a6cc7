package nlconst

import (
	"testing"

	"github.com/mdlayher/netlink"
)

// github.com/mdlayher/netlink carries its own copies of the header
// flag and message type values; the two tables have to agree or mixing
// the packages would corrupt nlmsghdr fields.
func TestAgainstMdlayherNetlink(t *testing.T) {
	flags := []struct {
		name     string
		got      HeaderFlag
		expected netlink.HeaderFlags
	}{
		{"NLM_F_REQUEST", NLM_F_REQUEST, netlink.Request},
		{"NLM_F_MULTI", NLM_F_MULTI, netlink.Multi},
		{"NLM_F_ACK", NLM_F_ACK, netlink.Acknowledge},
		{"NLM_F_ECHO", NLM_F_ECHO, netlink.Echo},
		{"NLM_F_DUMP_INTR", NLM_F_DUMP_INTR, netlink.DumpInterrupted},
		{"NLM_F_DUMP_FILTERED", NLM_F_DUMP_FILTERED, netlink.DumpFiltered},
		{"NLM_F_ROOT", NLM_F_ROOT, netlink.Root},
		{"NLM_F_MATCH", NLM_F_MATCH, netlink.Match},
		{"NLM_F_ATOMIC", NLM_F_ATOMIC, netlink.Atomic},
		{"NLM_F_DUMP", NLM_F_DUMP, netlink.Dump},
		{"NLM_F_REPLACE", NLM_F_REPLACE, netlink.Replace},
		{"NLM_F_EXCL", NLM_F_EXCL, netlink.Excl},
		{"NLM_F_CREATE", NLM_F_CREATE, netlink.Create},
		{"NLM_F_APPEND", NLM_F_APPEND, netlink.Append},
	}
	for _, table := range flags {
		if uint16(table.got) != uint16(table.expected) {
			t.Errorf("%s was incorrect, got: 0x%x, expected: 0x%x.", table.name, uint16(table.got), uint16(table.expected))
		}
	}

	types := []struct {
		name     string
		got      MsgType
		expected netlink.HeaderType
	}{
		{"NLMSG_NOOP", NLMSG_NOOP, netlink.Noop},
		{"NLMSG_ERROR", NLMSG_ERROR, netlink.Error},
		{"NLMSG_DONE", NLMSG_DONE, netlink.Done},
		{"NLMSG_OVERRUN", NLMSG_OVERRUN, netlink.Overrun},
	}
	for _, table := range types {
		if uint16(table.got) != uint16(table.expected) {
			t.Errorf("%s was incorrect, got: 0x%x, expected: 0x%x.", table.name, uint16(table.got), uint16(table.expected))
		}
	}
}
