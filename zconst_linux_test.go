//go:build linux

package nlconst

import (
	"testing"

	"golang.org/x/sys/unix"
)

// The committed table must agree with the values x/sys/unix generates
// from the same kernel headers.
func TestAgainstUnix(t *testing.T) {
	tables := []struct {
		name     string
		got      uint64
		expected uint64
	}{
		{"NETLINK_ROUTE", uint64(NETLINK_ROUTE), unix.NETLINK_ROUTE},
		{"NETLINK_UNUSED", uint64(NETLINK_UNUSED), unix.NETLINK_UNUSED},
		{"NETLINK_USERSOCK", uint64(NETLINK_USERSOCK), unix.NETLINK_USERSOCK},
		{"NETLINK_FIREWALL", uint64(NETLINK_FIREWALL), unix.NETLINK_FIREWALL},
		{"NETLINK_SOCK_DIAG", uint64(NETLINK_SOCK_DIAG), unix.NETLINK_SOCK_DIAG},
		{"NETLINK_INET_DIAG", uint64(NETLINK_INET_DIAG), unix.NETLINK_INET_DIAG},
		{"NETLINK_NFLOG", uint64(NETLINK_NFLOG), unix.NETLINK_NFLOG},
		{"NETLINK_XFRM", uint64(NETLINK_XFRM), unix.NETLINK_XFRM},
		{"NETLINK_SELINUX", uint64(NETLINK_SELINUX), unix.NETLINK_SELINUX},
		{"NETLINK_ISCSI", uint64(NETLINK_ISCSI), unix.NETLINK_ISCSI},
		{"NETLINK_AUDIT", uint64(NETLINK_AUDIT), unix.NETLINK_AUDIT},
		{"NETLINK_FIB_LOOKUP", uint64(NETLINK_FIB_LOOKUP), unix.NETLINK_FIB_LOOKUP},
		{"NETLINK_CONNECTOR", uint64(NETLINK_CONNECTOR), unix.NETLINK_CONNECTOR},
		{"NETLINK_NETFILTER", uint64(NETLINK_NETFILTER), unix.NETLINK_NETFILTER},
		{"NETLINK_IP6_FW", uint64(NETLINK_IP6_FW), unix.NETLINK_IP6_FW},
		{"NETLINK_DNRTMSG", uint64(NETLINK_DNRTMSG), unix.NETLINK_DNRTMSG},
		{"NETLINK_KOBJECT_UEVENT", uint64(NETLINK_KOBJECT_UEVENT), unix.NETLINK_KOBJECT_UEVENT},
		{"NETLINK_GENERIC", uint64(NETLINK_GENERIC), unix.NETLINK_GENERIC},
		{"NETLINK_SCSITRANSPORT", uint64(NETLINK_SCSITRANSPORT), unix.NETLINK_SCSITRANSPORT},
		{"NETLINK_ECRYPTFS", uint64(NETLINK_ECRYPTFS), unix.NETLINK_ECRYPTFS},
		{"NETLINK_RDMA", uint64(NETLINK_RDMA), unix.NETLINK_RDMA},
		{"NETLINK_CRYPTO", uint64(NETLINK_CRYPTO), unix.NETLINK_CRYPTO},
		{"NLMSG_NOOP", uint64(NLMSG_NOOP), unix.NLMSG_NOOP},
		{"NLMSG_ERROR", uint64(NLMSG_ERROR), unix.NLMSG_ERROR},
		{"NLMSG_DONE", uint64(NLMSG_DONE), unix.NLMSG_DONE},
		{"NLMSG_OVERRUN", uint64(NLMSG_OVERRUN), unix.NLMSG_OVERRUN},
		{"NLMSG_MIN_TYPE", uint64(NLMSG_MIN_TYPE), unix.NLMSG_MIN_TYPE},
		{"NLM_F_REQUEST", uint64(NLM_F_REQUEST), unix.NLM_F_REQUEST},
		{"NLM_F_MULTI", uint64(NLM_F_MULTI), unix.NLM_F_MULTI},
		{"NLM_F_ACK", uint64(NLM_F_ACK), unix.NLM_F_ACK},
		{"NLM_F_ECHO", uint64(NLM_F_ECHO), unix.NLM_F_ECHO},
		{"NLM_F_DUMP_INTR", uint64(NLM_F_DUMP_INTR), unix.NLM_F_DUMP_INTR},
		{"NLM_F_DUMP_FILTERED", uint64(NLM_F_DUMP_FILTERED), unix.NLM_F_DUMP_FILTERED},
		{"NLM_F_ROOT", uint64(NLM_F_ROOT), unix.NLM_F_ROOT},
		{"NLM_F_MATCH", uint64(NLM_F_MATCH), unix.NLM_F_MATCH},
		{"NLM_F_ATOMIC", uint64(NLM_F_ATOMIC), unix.NLM_F_ATOMIC},
		{"NLM_F_DUMP", uint64(NLM_F_DUMP), unix.NLM_F_DUMP},
		{"NLM_F_REPLACE", uint64(NLM_F_REPLACE), unix.NLM_F_REPLACE},
		{"NLM_F_EXCL", uint64(NLM_F_EXCL), unix.NLM_F_EXCL},
		{"NLM_F_CREATE", uint64(NLM_F_CREATE), unix.NLM_F_CREATE},
		{"NLM_F_APPEND", uint64(NLM_F_APPEND), unix.NLM_F_APPEND},
		{"GENL_ID_CTRL", uint64(GENL_ID_CTRL), unix.GENL_ID_CTRL},
		{"GENL_ID_VFS_DQUOT", uint64(GENL_ID_VFS_DQUOT), unix.GENL_ID_VFS_DQUOT},
		{"GENL_ID_PMCRAID", uint64(GENL_ID_PMCRAID), unix.GENL_ID_PMCRAID},
		{"GENL_MIN_ID", uint64(GENL_MIN_ID), unix.GENL_MIN_ID},
		{"GENL_MAX_ID", uint64(GENL_MAX_ID), unix.GENL_MAX_ID},
		{"GENL_NAMSIZ", uint64(GENL_NAMSIZ), unix.GENL_NAMSIZ},
		{"GENL_ADMIN_PERM", uint64(GENL_ADMIN_PERM), unix.GENL_ADMIN_PERM},
		{"GENL_CMD_CAP_DO", uint64(GENL_CMD_CAP_DO), unix.GENL_CMD_CAP_DO},
		{"GENL_CMD_CAP_DUMP", uint64(GENL_CMD_CAP_DUMP), unix.GENL_CMD_CAP_DUMP},
		{"GENL_CMD_CAP_HASPOL", uint64(GENL_CMD_CAP_HASPOL), unix.GENL_CMD_CAP_HASPOL},
		{"GENL_UNS_ADMIN_PERM", uint64(GENL_UNS_ADMIN_PERM), unix.GENL_UNS_ADMIN_PERM},
		{"CTRL_CMD_UNSPEC", uint64(CTRL_CMD_UNSPEC), unix.CTRL_CMD_UNSPEC},
		{"CTRL_CMD_NEWFAMILY", uint64(CTRL_CMD_NEWFAMILY), unix.CTRL_CMD_NEWFAMILY},
		{"CTRL_CMD_DELFAMILY", uint64(CTRL_CMD_DELFAMILY), unix.CTRL_CMD_DELFAMILY},
		{"CTRL_CMD_GETFAMILY", uint64(CTRL_CMD_GETFAMILY), unix.CTRL_CMD_GETFAMILY},
		{"CTRL_CMD_NEWOPS", uint64(CTRL_CMD_NEWOPS), unix.CTRL_CMD_NEWOPS},
		{"CTRL_CMD_DELOPS", uint64(CTRL_CMD_DELOPS), unix.CTRL_CMD_DELOPS},
		{"CTRL_CMD_GETOPS", uint64(CTRL_CMD_GETOPS), unix.CTRL_CMD_GETOPS},
		{"CTRL_CMD_NEWMCAST_GRP", uint64(CTRL_CMD_NEWMCAST_GRP), unix.CTRL_CMD_NEWMCAST_GRP},
		{"CTRL_CMD_DELMCAST_GRP", uint64(CTRL_CMD_DELMCAST_GRP), unix.CTRL_CMD_DELMCAST_GRP},
		{"CTRL_CMD_GETMCAST_GRP", uint64(CTRL_CMD_GETMCAST_GRP), unix.CTRL_CMD_GETMCAST_GRP},
		{"CTRL_ATTR_UNSPEC", uint64(CTRL_ATTR_UNSPEC), unix.CTRL_ATTR_UNSPEC},
		{"CTRL_ATTR_FAMILY_ID", uint64(CTRL_ATTR_FAMILY_ID), unix.CTRL_ATTR_FAMILY_ID},
		{"CTRL_ATTR_FAMILY_NAME", uint64(CTRL_ATTR_FAMILY_NAME), unix.CTRL_ATTR_FAMILY_NAME},
		{"CTRL_ATTR_VERSION", uint64(CTRL_ATTR_VERSION), unix.CTRL_ATTR_VERSION},
		{"CTRL_ATTR_HDRSIZE", uint64(CTRL_ATTR_HDRSIZE), unix.CTRL_ATTR_HDRSIZE},
		{"CTRL_ATTR_MAXATTR", uint64(CTRL_ATTR_MAXATTR), unix.CTRL_ATTR_MAXATTR},
		{"CTRL_ATTR_OPS", uint64(CTRL_ATTR_OPS), unix.CTRL_ATTR_OPS},
		{"CTRL_ATTR_MCAST_GROUPS", uint64(CTRL_ATTR_MCAST_GROUPS), unix.CTRL_ATTR_MCAST_GROUPS},
		{"CTRL_ATTR_MCAST_GRP_UNSPEC", uint64(CTRL_ATTR_MCAST_GRP_UNSPEC), unix.CTRL_ATTR_MCAST_GRP_UNSPEC},
		{"CTRL_ATTR_MCAST_GRP_NAME", uint64(CTRL_ATTR_MCAST_GRP_NAME), unix.CTRL_ATTR_MCAST_GRP_NAME},
		{"CTRL_ATTR_MCAST_GRP_ID", uint64(CTRL_ATTR_MCAST_GRP_ID), unix.CTRL_ATTR_MCAST_GRP_ID},
		{"CTRL_ATTR_OP_UNSPEC", uint64(CTRL_ATTR_OP_UNSPEC), unix.CTRL_ATTR_OP_UNSPEC},
		{"CTRL_ATTR_OP_ID", uint64(CTRL_ATTR_OP_ID), unix.CTRL_ATTR_OP_ID},
		{"CTRL_ATTR_OP_FLAGS", uint64(CTRL_ATTR_OP_FLAGS), unix.CTRL_ATTR_OP_FLAGS},
	}

	for _, table := range tables {
		if table.got != table.expected {
			t.Errorf("%s was incorrect, got: 0x%x, expected: 0x%x.", table.name, table.got, table.expected)
		}
	}
}
