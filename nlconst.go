// Package nlconst provides the numeric vocabulary of the Linux netlink
// interface as typed Go constants: socket protocol families from
// linux/netlink.h, message header flags and control message types, and
// the generic netlink controller commands, attributes and reserved
// family IDs from linux/genetlink.h.
//
// The values are generated from the kernel headers and committed, so the
// package builds on any platform without cgo. Regeneration (go generate)
// requires a Linux header set and fails if the headers are missing.
//
// All constants keep the exact width of the protocol field they are used
// in: protocol families are 32 bit, header flags and message types are
// 16 bit, controller commands are 8 bit.
package nlconst

//go:generate go run ./internal/mkconst -manifest internal/mkconst/symbols.yml -o zconst.go

// Protocol selects a kernel netlink protocol family, the third argument
// of socket(2) for an AF_NETLINK socket.
type Protocol uint32

// MsgType is the nl_type field of struct nlmsghdr. Values below
// NLMSG_MIN_TYPE are reserved for control messages. Generic netlink
// family IDs live in the same number space, starting at GENL_MIN_ID.
type MsgType uint16

// HeaderFlag is a bit in the nl_flags field of struct nlmsghdr.
//
// The bits above 0xff are shared between GET requests (NLM_F_ROOT,
// NLM_F_MATCH, NLM_F_ATOMIC) and NEW requests (NLM_F_REPLACE,
// NLM_F_EXCL, NLM_F_CREATE); which reading applies depends on the
// message type carried alongside.
type HeaderFlag uint16

// CtrlCmd is the cmd field of a generic netlink controller message.
type CtrlCmd uint8

// CtrlAttr identifies a top-level attribute of a generic netlink
// controller message.
type CtrlAttr uint16

// McastGrpAttr identifies an attribute nested inside a
// CTRL_ATTR_MCAST_GROUPS entry.
type McastGrpAttr uint16

// OpAttr identifies an attribute nested inside a CTRL_ATTR_OPS entry.
type OpAttr uint16

// OpFlag is a capability bit of a generic netlink operation, reported
// in CTRL_ATTR_OP_FLAGS.
type OpFlag uint32
