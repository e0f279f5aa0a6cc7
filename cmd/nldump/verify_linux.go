//go:build linux

package main

import (
	"fmt"

	"github.com/x-way/nlconst"
	"golang.org/x/sys/unix"
)

// unixValues maps constant names to the values golang.org/x/sys/unix
// generates from the kernel headers. Names missing here have no
// counterpart in x/sys/unix and are skipped, notably GENL_ID_GENERATE
// which the kernel removed in 4.10.
var unixValues = map[string]uint64{
	"NETLINK_ROUTE":              unix.NETLINK_ROUTE,
	"NETLINK_UNUSED":             unix.NETLINK_UNUSED,
	"NETLINK_USERSOCK":           unix.NETLINK_USERSOCK,
	"NETLINK_FIREWALL":           unix.NETLINK_FIREWALL,
	"NETLINK_SOCK_DIAG":          unix.NETLINK_SOCK_DIAG,
	"NETLINK_INET_DIAG":          unix.NETLINK_INET_DIAG,
	"NETLINK_NFLOG":              unix.NETLINK_NFLOG,
	"NETLINK_XFRM":               unix.NETLINK_XFRM,
	"NETLINK_SELINUX":            unix.NETLINK_SELINUX,
	"NETLINK_ISCSI":              unix.NETLINK_ISCSI,
	"NETLINK_AUDIT":              unix.NETLINK_AUDIT,
	"NETLINK_FIB_LOOKUP":         unix.NETLINK_FIB_LOOKUP,
	"NETLINK_CONNECTOR":          unix.NETLINK_CONNECTOR,
	"NETLINK_NETFILTER":          unix.NETLINK_NETFILTER,
	"NETLINK_IP6_FW":             unix.NETLINK_IP6_FW,
	"NETLINK_DNRTMSG":            unix.NETLINK_DNRTMSG,
	"NETLINK_KOBJECT_UEVENT":     unix.NETLINK_KOBJECT_UEVENT,
	"NETLINK_GENERIC":            unix.NETLINK_GENERIC,
	"NETLINK_SCSITRANSPORT":      unix.NETLINK_SCSITRANSPORT,
	"NETLINK_ECRYPTFS":           unix.NETLINK_ECRYPTFS,
	"NETLINK_RDMA":               unix.NETLINK_RDMA,
	"NETLINK_CRYPTO":             unix.NETLINK_CRYPTO,
	"NLMSG_NOOP":                 unix.NLMSG_NOOP,
	"NLMSG_ERROR":                unix.NLMSG_ERROR,
	"NLMSG_DONE":                 unix.NLMSG_DONE,
	"NLMSG_OVERRUN":              unix.NLMSG_OVERRUN,
	"NLMSG_MIN_TYPE":             unix.NLMSG_MIN_TYPE,
	"NLM_F_REQUEST":              unix.NLM_F_REQUEST,
	"NLM_F_MULTI":                unix.NLM_F_MULTI,
	"NLM_F_ACK":                  unix.NLM_F_ACK,
	"NLM_F_ECHO":                 unix.NLM_F_ECHO,
	"NLM_F_DUMP_INTR":            unix.NLM_F_DUMP_INTR,
	"NLM_F_DUMP_FILTERED":        unix.NLM_F_DUMP_FILTERED,
	"NLM_F_ROOT":                 unix.NLM_F_ROOT,
	"NLM_F_MATCH":                unix.NLM_F_MATCH,
	"NLM_F_ATOMIC":               unix.NLM_F_ATOMIC,
	"NLM_F_DUMP":                 unix.NLM_F_DUMP,
	"NLM_F_REPLACE":              unix.NLM_F_REPLACE,
	"NLM_F_EXCL":                 unix.NLM_F_EXCL,
	"NLM_F_CREATE":               unix.NLM_F_CREATE,
	"NLM_F_APPEND":               unix.NLM_F_APPEND,
	"GENL_ID_CTRL":               unix.GENL_ID_CTRL,
	"GENL_ID_VFS_DQUOT":          unix.GENL_ID_VFS_DQUOT,
	"GENL_ID_PMCRAID":            unix.GENL_ID_PMCRAID,
	"GENL_MIN_ID":                unix.GENL_MIN_ID,
	"GENL_MAX_ID":                unix.GENL_MAX_ID,
	"GENL_NAMSIZ":                unix.GENL_NAMSIZ,
	"CTRL_CMD_UNSPEC":            unix.CTRL_CMD_UNSPEC,
	"CTRL_CMD_NEWFAMILY":         unix.CTRL_CMD_NEWFAMILY,
	"CTRL_CMD_DELFAMILY":         unix.CTRL_CMD_DELFAMILY,
	"CTRL_CMD_GETFAMILY":         unix.CTRL_CMD_GETFAMILY,
	"CTRL_CMD_NEWOPS":            unix.CTRL_CMD_NEWOPS,
	"CTRL_CMD_DELOPS":            unix.CTRL_CMD_DELOPS,
	"CTRL_CMD_GETOPS":            unix.CTRL_CMD_GETOPS,
	"CTRL_CMD_NEWMCAST_GRP":      unix.CTRL_CMD_NEWMCAST_GRP,
	"CTRL_CMD_DELMCAST_GRP":      unix.CTRL_CMD_DELMCAST_GRP,
	"CTRL_CMD_GETMCAST_GRP":      unix.CTRL_CMD_GETMCAST_GRP,
	"CTRL_ATTR_UNSPEC":           unix.CTRL_ATTR_UNSPEC,
	"CTRL_ATTR_FAMILY_ID":        unix.CTRL_ATTR_FAMILY_ID,
	"CTRL_ATTR_FAMILY_NAME":      unix.CTRL_ATTR_FAMILY_NAME,
	"CTRL_ATTR_VERSION":          unix.CTRL_ATTR_VERSION,
	"CTRL_ATTR_HDRSIZE":          unix.CTRL_ATTR_HDRSIZE,
	"CTRL_ATTR_MAXATTR":          unix.CTRL_ATTR_MAXATTR,
	"CTRL_ATTR_OPS":              unix.CTRL_ATTR_OPS,
	"CTRL_ATTR_MCAST_GROUPS":     unix.CTRL_ATTR_MCAST_GROUPS,
	"CTRL_ATTR_MCAST_GRP_UNSPEC": unix.CTRL_ATTR_MCAST_GRP_UNSPEC,
	"CTRL_ATTR_MCAST_GRP_NAME":   unix.CTRL_ATTR_MCAST_GRP_NAME,
	"CTRL_ATTR_MCAST_GRP_ID":     unix.CTRL_ATTR_MCAST_GRP_ID,
	"CTRL_ATTR_OP_UNSPEC":        unix.CTRL_ATTR_OP_UNSPEC,
	"CTRL_ATTR_OP_ID":            unix.CTRL_ATTR_OP_ID,
	"CTRL_ATTR_OP_FLAGS":         unix.CTRL_ATTR_OP_FLAGS,
	"GENL_ADMIN_PERM":            unix.GENL_ADMIN_PERM,
	"GENL_CMD_CAP_DO":            unix.GENL_CMD_CAP_DO,
	"GENL_CMD_CAP_DUMP":          unix.GENL_CMD_CAP_DUMP,
	"GENL_CMD_CAP_HASPOL":        unix.GENL_CMD_CAP_HASPOL,
	"GENL_UNS_ADMIN_PERM":        unix.GENL_UNS_ADMIN_PERM,
}

func verifyTable() error {
	var checked, skipped int
	for _, name := range nlconst.Families() {
		for _, e := range nlconst.Family(name) {
			want, ok := unixValues[e.Name]
			if !ok {
				skipped++
				continue
			}
			if e.Value != want {
				return fmt.Errorf("%s: table has 0x%x, x/sys/unix has 0x%x", e.Name, e.Value, want)
			}
			checked++
		}
	}
	fmt.Printf("verified %d constants against x/sys/unix, %d without a counterpart\n", checked, skipped)
	return nil
}
