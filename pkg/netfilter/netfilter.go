// Package netfilter provides the constants of the nfnetlink protocol
// family (NETLINK_NETFILTER) and of its packet logging subsystem, from
// uapi/linux/netfilter/nfnetlink.h and nfnetlink_log.h.
//
// nfnetlink multiplexes subsystems over one protocol: the upper byte of
// the netlink message type selects the subsystem and the lower byte the
// subsystem message. MsgType composes the two.
package netfilter

import "fmt"

// NFNETLINK_V0 is the nfnetlink protocol version carried in every
// struct nfgenmsg.
const NFNETLINK_V0 = 0

// Subsystem is an nfnetlink subsystem identifier.
type Subsystem uint8

// nfnetlink subsystems, from uapi/linux/netfilter/nfnetlink.h.
const (
	NFNL_SUBSYS_NONE              Subsystem = 0
	NFNL_SUBSYS_CTNETLINK         Subsystem = 1
	NFNL_SUBSYS_CTNETLINK_EXP     Subsystem = 2
	NFNL_SUBSYS_QUEUE             Subsystem = 3
	NFNL_SUBSYS_ULOG              Subsystem = 4
	NFNL_SUBSYS_OSF               Subsystem = 5
	NFNL_SUBSYS_IPSET             Subsystem = 6
	NFNL_SUBSYS_ACCT              Subsystem = 7
	NFNL_SUBSYS_CTNETLINK_TIMEOUT Subsystem = 8
	NFNL_SUBSYS_CTHELPER          Subsystem = 9
	NFNL_SUBSYS_NFTABLES          Subsystem = 10
	NFNL_SUBSYS_NFT_COMPAT        Subsystem = 11
)

// MsgType is a composed nfnetlink value of the nl_type header field.
type MsgType uint16

// MsgType composes the netlink message type for message msg of
// subsystem s, the NFNL_MSG_TYPE/NFNL_SUBSYS_ID pairing of
// uapi/linux/netfilter/nfnetlink.h inverted.
func (s Subsystem) MsgType(msg uint8) MsgType {
	return MsgType(uint16(s)<<8 | uint16(msg))
}

// Subsystem extracts the subsystem byte of a composed message type.
func (t MsgType) Subsystem() Subsystem {
	return Subsystem(t >> 8)
}

// Msg extracts the subsystem message byte of a composed message type.
func (t MsgType) Msg() uint8 {
	return uint8(t & 0xff)
}

// Packet logging subsystem messages, from
// uapi/linux/netfilter/nfnetlink_log.h.
const (
	NFULNL_MSG_PACKET uint8 = 0
	NFULNL_MSG_CONFIG uint8 = 1
)

// ConfigCmd is the command byte of an NFULNL_MSG_CONFIG request.
type ConfigCmd uint8

// Logging configuration commands, from
// uapi/linux/netfilter/nfnetlink_log.h.
const (
	NFULNL_CFG_CMD_NONE      ConfigCmd = 0
	NFULNL_CFG_CMD_BIND      ConfigCmd = 1
	NFULNL_CFG_CMD_UNBIND    ConfigCmd = 2
	NFULNL_CFG_CMD_PF_BIND   ConfigCmd = 3
	NFULNL_CFG_CMD_PF_UNBIND ConfigCmd = 4
)

// CopyMode selects how much of a logged packet the kernel copies to
// userspace.
type CopyMode uint8

// Packet copy modes, from uapi/linux/netfilter/nfnetlink_log.h.
const (
	NFULNL_COPY_NONE   CopyMode = 0x00
	NFULNL_COPY_META   CopyMode = 0x01
	NFULNL_COPY_PACKET CopyMode = 0x02
)

// PacketAttr is an attribute of an NFULNL_MSG_PACKET message.
type PacketAttr uint16

// Logged packet attributes, from uapi/linux/netfilter/nfnetlink_log.h.
const (
	NFULA_UNSPEC             PacketAttr = 0
	NFULA_PACKET_HDR         PacketAttr = 1
	NFULA_MARK               PacketAttr = 2
	NFULA_TIMESTAMP          PacketAttr = 3
	NFULA_IFINDEX_INDEV      PacketAttr = 4
	NFULA_IFINDEX_OUTDEV     PacketAttr = 5
	NFULA_IFINDEX_PHYSINDEV  PacketAttr = 6
	NFULA_IFINDEX_PHYSOUTDEV PacketAttr = 7
	NFULA_HWADDR             PacketAttr = 8
	NFULA_PAYLOAD            PacketAttr = 9
	NFULA_PREFIX             PacketAttr = 10
	NFULA_UID                PacketAttr = 11
	NFULA_SEQ                PacketAttr = 12
	NFULA_SEQ_GLOBAL         PacketAttr = 13
	NFULA_GID                PacketAttr = 14
	NFULA_HWTYPE             PacketAttr = 15
	NFULA_HWHEADER           PacketAttr = 16
	NFULA_HWLEN              PacketAttr = 17
	NFULA_CT                 PacketAttr = 18
	NFULA_CT_INFO            PacketAttr = 19
)

// ConfigAttr is an attribute of an NFULNL_MSG_CONFIG message.
type ConfigAttr uint16

// Logging configuration attributes, from
// uapi/linux/netfilter/nfnetlink_log.h.
const (
	NFULA_CFG_UNSPEC   ConfigAttr = 0
	NFULA_CFG_CMD      ConfigAttr = 1
	NFULA_CFG_MODE     ConfigAttr = 2
	NFULA_CFG_NLBUFSIZ ConfigAttr = 3
	NFULA_CFG_TIMEOUT  ConfigAttr = 4
	NFULA_CFG_QTHRESH  ConfigAttr = 5
	NFULA_CFG_FLAGS    ConfigAttr = 6
)

func (s Subsystem) String() string {
	switch s {
	case NFNL_SUBSYS_NONE:
		return "NFNL_SUBSYS_NONE"
	case NFNL_SUBSYS_CTNETLINK:
		return "NFNL_SUBSYS_CTNETLINK"
	case NFNL_SUBSYS_CTNETLINK_EXP:
		return "NFNL_SUBSYS_CTNETLINK_EXP"
	case NFNL_SUBSYS_QUEUE:
		return "NFNL_SUBSYS_QUEUE"
	case NFNL_SUBSYS_ULOG:
		return "NFNL_SUBSYS_ULOG"
	case NFNL_SUBSYS_OSF:
		return "NFNL_SUBSYS_OSF"
	case NFNL_SUBSYS_IPSET:
		return "NFNL_SUBSYS_IPSET"
	case NFNL_SUBSYS_ACCT:
		return "NFNL_SUBSYS_ACCT"
	case NFNL_SUBSYS_CTNETLINK_TIMEOUT:
		return "NFNL_SUBSYS_CTNETLINK_TIMEOUT"
	case NFNL_SUBSYS_CTHELPER:
		return "NFNL_SUBSYS_CTHELPER"
	case NFNL_SUBSYS_NFTABLES:
		return "NFNL_SUBSYS_NFTABLES"
	case NFNL_SUBSYS_NFT_COMPAT:
		return "NFNL_SUBSYS_NFT_COMPAT"
	}
	return fmt.Sprintf("NFNL_SUBSYS(%d)", uint8(s))
}

func (t MsgType) String() string {
	return fmt.Sprintf("%s<<8|%d", t.Subsystem(), t.Msg())
}

func (c ConfigCmd) String() string {
	switch c {
	case NFULNL_CFG_CMD_NONE:
		return "NFULNL_CFG_CMD_NONE"
	case NFULNL_CFG_CMD_BIND:
		return "NFULNL_CFG_CMD_BIND"
	case NFULNL_CFG_CMD_UNBIND:
		return "NFULNL_CFG_CMD_UNBIND"
	case NFULNL_CFG_CMD_PF_BIND:
		return "NFULNL_CFG_CMD_PF_BIND"
	case NFULNL_CFG_CMD_PF_UNBIND:
		return "NFULNL_CFG_CMD_PF_UNBIND"
	}
	return fmt.Sprintf("NFULNL_CFG_CMD(%d)", uint8(c))
}

func (m CopyMode) String() string {
	switch m {
	case NFULNL_COPY_NONE:
		return "NFULNL_COPY_NONE"
	case NFULNL_COPY_META:
		return "NFULNL_COPY_META"
	case NFULNL_COPY_PACKET:
		return "NFULNL_COPY_PACKET"
	}
	return fmt.Sprintf("NFULNL_COPY(0x%x)", uint8(m))
}
