package nlconst

import (
	"fmt"
	"strings"
)

// String returns the kernel symbol name of the protocol family, or
// "NETLINK(n)" for a value the headers do not name.
func (p Protocol) String() string {
	switch p {
	case NETLINK_ROUTE:
		return "NETLINK_ROUTE"
	case NETLINK_UNUSED:
		return "NETLINK_UNUSED"
	case NETLINK_USERSOCK:
		return "NETLINK_USERSOCK"
	case NETLINK_FIREWALL:
		return "NETLINK_FIREWALL"
	case NETLINK_SOCK_DIAG:
		return "NETLINK_SOCK_DIAG"
	case NETLINK_NFLOG:
		return "NETLINK_NFLOG"
	case NETLINK_XFRM:
		return "NETLINK_XFRM"
	case NETLINK_SELINUX:
		return "NETLINK_SELINUX"
	case NETLINK_ISCSI:
		return "NETLINK_ISCSI"
	case NETLINK_AUDIT:
		return "NETLINK_AUDIT"
	case NETLINK_FIB_LOOKUP:
		return "NETLINK_FIB_LOOKUP"
	case NETLINK_CONNECTOR:
		return "NETLINK_CONNECTOR"
	case NETLINK_NETFILTER:
		return "NETLINK_NETFILTER"
	case NETLINK_IP6_FW:
		return "NETLINK_IP6_FW"
	case NETLINK_DNRTMSG:
		return "NETLINK_DNRTMSG"
	case NETLINK_KOBJECT_UEVENT:
		return "NETLINK_KOBJECT_UEVENT"
	case NETLINK_GENERIC:
		return "NETLINK_GENERIC"
	case NETLINK_SCSITRANSPORT:
		return "NETLINK_SCSITRANSPORT"
	case NETLINK_ECRYPTFS:
		return "NETLINK_ECRYPTFS"
	case NETLINK_RDMA:
		return "NETLINK_RDMA"
	case NETLINK_CRYPTO:
		return "NETLINK_CRYPTO"
	}
	return fmt.Sprintf("NETLINK(%d)", uint32(p))
}

// String names control message types and the reserved generic netlink
// family IDs. The value 0x10 doubles as NLMSG_MIN_TYPE and GENL_ID_CTRL
// in the headers; the controller name is returned for it.
func (t MsgType) String() string {
	switch t {
	case NLMSG_NOOP:
		return "NLMSG_NOOP"
	case NLMSG_ERROR:
		return "NLMSG_ERROR"
	case NLMSG_DONE:
		return "NLMSG_DONE"
	case NLMSG_OVERRUN:
		return "NLMSG_OVERRUN"
	case GENL_ID_CTRL:
		return "GENL_ID_CTRL"
	case GENL_ID_VFS_DQUOT:
		return "GENL_ID_VFS_DQUOT"
	case GENL_ID_PMCRAID:
		return "GENL_ID_PMCRAID"
	}
	return fmt.Sprintf("MSGTYPE(0x%x)", uint16(t))
}

var headerFlagNames = []struct {
	flag HeaderFlag
	name string
}{
	{NLM_F_REQUEST, "NLM_F_REQUEST"},
	{NLM_F_MULTI, "NLM_F_MULTI"},
	{NLM_F_ACK, "NLM_F_ACK"},
	{NLM_F_ECHO, "NLM_F_ECHO"},
	{NLM_F_DUMP_INTR, "NLM_F_DUMP_INTR"},
	{NLM_F_DUMP_FILTERED, "NLM_F_DUMP_FILTERED"},
	{NLM_F_ROOT, "NLM_F_ROOT"},
	{NLM_F_MATCH, "NLM_F_MATCH"},
	{NLM_F_ATOMIC, "NLM_F_ATOMIC"},
	{NLM_F_APPEND, "NLM_F_APPEND"},
}

// String decomposes an OR-combined flag word into its symbolic bits,
// e.g. "NLM_F_REQUEST|NLM_F_ACK". The composite NLM_F_DUMP is
// recognized before its two component bits. For the bits shared
// between GET and NEW requests the GET names are used; the numeric
// value is identical either way.
func (f HeaderFlag) String() string {
	if f == 0 {
		return "0"
	}
	var parts []string
	rest := f
	if rest&NLM_F_DUMP == NLM_F_DUMP {
		parts = append(parts, "NLM_F_DUMP")
		rest &^= NLM_F_DUMP
	}
	for _, hf := range headerFlagNames {
		if rest&hf.flag != 0 {
			parts = append(parts, hf.name)
			rest &^= hf.flag
		}
	}
	if rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint16(rest)))
	}
	return strings.Join(parts, "|")
}

// String returns the controller command name, or "CTRL_CMD(n)" for an
// unknown command.
func (c CtrlCmd) String() string {
	switch c {
	case CTRL_CMD_UNSPEC:
		return "CTRL_CMD_UNSPEC"
	case CTRL_CMD_NEWFAMILY:
		return "CTRL_CMD_NEWFAMILY"
	case CTRL_CMD_DELFAMILY:
		return "CTRL_CMD_DELFAMILY"
	case CTRL_CMD_GETFAMILY:
		return "CTRL_CMD_GETFAMILY"
	case CTRL_CMD_NEWOPS:
		return "CTRL_CMD_NEWOPS"
	case CTRL_CMD_DELOPS:
		return "CTRL_CMD_DELOPS"
	case CTRL_CMD_GETOPS:
		return "CTRL_CMD_GETOPS"
	case CTRL_CMD_NEWMCAST_GRP:
		return "CTRL_CMD_NEWMCAST_GRP"
	case CTRL_CMD_DELMCAST_GRP:
		return "CTRL_CMD_DELMCAST_GRP"
	case CTRL_CMD_GETMCAST_GRP:
		return "CTRL_CMD_GETMCAST_GRP"
	}
	return fmt.Sprintf("CTRL_CMD(%d)", uint8(c))
}

func (a CtrlAttr) String() string {
	switch a {
	case CTRL_ATTR_UNSPEC:
		return "CTRL_ATTR_UNSPEC"
	case CTRL_ATTR_FAMILY_ID:
		return "CTRL_ATTR_FAMILY_ID"
	case CTRL_ATTR_FAMILY_NAME:
		return "CTRL_ATTR_FAMILY_NAME"
	case CTRL_ATTR_VERSION:
		return "CTRL_ATTR_VERSION"
	case CTRL_ATTR_HDRSIZE:
		return "CTRL_ATTR_HDRSIZE"
	case CTRL_ATTR_MAXATTR:
		return "CTRL_ATTR_MAXATTR"
	case CTRL_ATTR_OPS:
		return "CTRL_ATTR_OPS"
	case CTRL_ATTR_MCAST_GROUPS:
		return "CTRL_ATTR_MCAST_GROUPS"
	}
	return fmt.Sprintf("CTRL_ATTR(%d)", uint16(a))
}

func (a McastGrpAttr) String() string {
	switch a {
	case CTRL_ATTR_MCAST_GRP_UNSPEC:
		return "CTRL_ATTR_MCAST_GRP_UNSPEC"
	case CTRL_ATTR_MCAST_GRP_NAME:
		return "CTRL_ATTR_MCAST_GRP_NAME"
	case CTRL_ATTR_MCAST_GRP_ID:
		return "CTRL_ATTR_MCAST_GRP_ID"
	}
	return fmt.Sprintf("CTRL_ATTR_MCAST_GRP(%d)", uint16(a))
}

func (a OpAttr) String() string {
	switch a {
	case CTRL_ATTR_OP_UNSPEC:
		return "CTRL_ATTR_OP_UNSPEC"
	case CTRL_ATTR_OP_ID:
		return "CTRL_ATTR_OP_ID"
	case CTRL_ATTR_OP_FLAGS:
		return "CTRL_ATTR_OP_FLAGS"
	}
	return fmt.Sprintf("CTRL_ATTR_OP(%d)", uint16(a))
}

var opFlagNames = []struct {
	flag OpFlag
	name string
}{
	{GENL_ADMIN_PERM, "GENL_ADMIN_PERM"},
	{GENL_CMD_CAP_DO, "GENL_CMD_CAP_DO"},
	{GENL_CMD_CAP_DUMP, "GENL_CMD_CAP_DUMP"},
	{GENL_CMD_CAP_HASPOL, "GENL_CMD_CAP_HASPOL"},
	{GENL_UNS_ADMIN_PERM, "GENL_UNS_ADMIN_PERM"},
}

// String decomposes an operation capability word, e.g.
// "GENL_CMD_CAP_DO|GENL_CMD_CAP_DUMP".
func (f OpFlag) String() string {
	if f == 0 {
		return "0"
	}
	var parts []string
	rest := f
	for _, of := range opFlagNames {
		if rest&of.flag != 0 {
			parts = append(parts, of.name)
			rest &^= of.flag
		}
	}
	if rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint32(rest)))
	}
	return strings.Join(parts, "|")
}
