// Package rtnl provides the constant vocabulary of the rtnetlink
// protocol (NETLINK_ROUTE), from uapi/linux/rtnetlink.h. The values
// are fixed kernel ABI and maintained by hand; rtnetlink carries no
// conditionally defined symbols.
package rtnl

import (
	"fmt"
	"strings"
)

// MsgType is an rtnetlink value of the nl_type header field.
type MsgType uint16

// rtnetlink message types, from uapi/linux/rtnetlink.h.
const (
	RTM_NEWLINK      MsgType = 16
	RTM_DELLINK      MsgType = 17
	RTM_GETLINK      MsgType = 18
	RTM_SETLINK      MsgType = 19
	RTM_NEWADDR      MsgType = 20
	RTM_DELADDR      MsgType = 21
	RTM_GETADDR      MsgType = 22
	RTM_NEWROUTE     MsgType = 24
	RTM_DELROUTE     MsgType = 25
	RTM_GETROUTE     MsgType = 26
	RTM_NEWNEIGH     MsgType = 28
	RTM_DELNEIGH     MsgType = 29
	RTM_GETNEIGH     MsgType = 30
	RTM_NEWRULE      MsgType = 32
	RTM_DELRULE      MsgType = 33
	RTM_GETRULE      MsgType = 34
	RTM_NEWQDISC     MsgType = 36
	RTM_DELQDISC     MsgType = 37
	RTM_GETQDISC     MsgType = 38
	RTM_NEWTCLASS    MsgType = 40
	RTM_DELTCLASS    MsgType = 41
	RTM_GETTCLASS    MsgType = 42
	RTM_NEWTFILTER   MsgType = 44
	RTM_DELTFILTER   MsgType = 45
	RTM_GETTFILTER   MsgType = 46
	RTM_NEWACTION    MsgType = 48
	RTM_DELACTION    MsgType = 49
	RTM_GETACTION    MsgType = 50
	RTM_NEWPREFIX    MsgType = 52
	RTM_GETMULTICAST MsgType = 58
	RTM_GETANYCAST   MsgType = 62
	RTM_NEWNEIGHTBL  MsgType = 64
	RTM_GETNEIGHTBL  MsgType = 66
	RTM_SETNEIGHTBL  MsgType = 67
	RTM_NEWNDUSEROPT MsgType = 68
	RTM_NEWADDRLABEL MsgType = 72
	RTM_DELADDRLABEL MsgType = 73
	RTM_GETADDRLABEL MsgType = 74
	RTM_GETDCB       MsgType = 78
	RTM_SETDCB       MsgType = 79
	RTM_NEWNETCONF   MsgType = 80
	RTM_GETNETCONF   MsgType = 82
	RTM_NEWMDB       MsgType = 84
	RTM_DELMDB       MsgType = 85
	RTM_GETMDB       MsgType = 86
	RTM_NEWNSID      MsgType = 88
	RTM_DELNSID      MsgType = 89
	RTM_GETNSID      MsgType = 90
)

// RouteType is the rtm_type field of struct rtmsg.
type RouteType uint8

// Route types, from uapi/linux/rtnetlink.h.
const (
	RTN_UNSPEC      RouteType = 0
	RTN_UNICAST     RouteType = 1
	RTN_LOCAL       RouteType = 2
	RTN_BROADCAST   RouteType = 3
	RTN_ANYCAST     RouteType = 4
	RTN_MULTICAST   RouteType = 5
	RTN_BLACKHOLE   RouteType = 6
	RTN_UNREACHABLE RouteType = 7
	RTN_PROHIBIT    RouteType = 8
	RTN_THROW       RouteType = 9
	RTN_NAT         RouteType = 10
	RTN_XRESOLVE    RouteType = 11
)

// RouteProto is the rtm_protocol field of struct rtmsg, the origin of
// a route.
type RouteProto uint8

// Route origins, from uapi/linux/rtnetlink.h.
const (
	RTPROT_UNSPEC   RouteProto = 0
	RTPROT_REDIRECT RouteProto = 1
	RTPROT_KERNEL   RouteProto = 2
	RTPROT_BOOT     RouteProto = 3
	RTPROT_STATIC   RouteProto = 4
)

// Scope is the rtm_scope field of struct rtmsg.
type Scope uint8

// Route scopes, from uapi/linux/rtnetlink.h. User-defined scopes live
// between RT_SCOPE_UNIVERSE and RT_SCOPE_SITE.
const (
	RT_SCOPE_UNIVERSE Scope = 0
	RT_SCOPE_SITE     Scope = 200
	RT_SCOPE_LINK     Scope = 253
	RT_SCOPE_HOST     Scope = 254
	RT_SCOPE_NOWHERE  Scope = 255
)

// Table is a routing table identifier.
type Table uint8

// Reserved routing tables, from uapi/linux/rtnetlink.h.
const (
	RT_TABLE_UNSPEC  Table = 0
	RT_TABLE_COMPAT  Table = 252
	RT_TABLE_DEFAULT Table = 253
	RT_TABLE_MAIN    Table = 254
	RT_TABLE_LOCAL   Table = 255
)

// AddrFlag is a bit of the extended ifa_flags attribute.
type AddrFlag uint32

// Interface address flags, from uapi/linux/if_addr.h.
const (
	IFA_F_SECONDARY      AddrFlag = 0x01
	IFA_F_TEMPORARY      AddrFlag = 0x01
	IFA_F_NODAD          AddrFlag = 0x02
	IFA_F_OPTIMISTIC     AddrFlag = 0x04
	IFA_F_DADFAILED      AddrFlag = 0x08
	IFA_F_HOMEADDRESS    AddrFlag = 0x10
	IFA_F_DEPRECATED     AddrFlag = 0x20
	IFA_F_TENTATIVE      AddrFlag = 0x40
	IFA_F_PERMANENT      AddrFlag = 0x80
	IFA_F_MANAGETEMPADDR AddrFlag = 0x100
	IFA_F_NOPREFIXROUTE  AddrFlag = 0x200
	IFA_F_MCAUTOJOIN     AddrFlag = 0x400
	IFA_F_STABLE_PRIVACY AddrFlag = 0x800
)

var msgTypeNames = map[MsgType]string{
	RTM_NEWLINK:      "RTM_NEWLINK",
	RTM_DELLINK:      "RTM_DELLINK",
	RTM_GETLINK:      "RTM_GETLINK",
	RTM_SETLINK:      "RTM_SETLINK",
	RTM_NEWADDR:      "RTM_NEWADDR",
	RTM_DELADDR:      "RTM_DELADDR",
	RTM_GETADDR:      "RTM_GETADDR",
	RTM_NEWROUTE:     "RTM_NEWROUTE",
	RTM_DELROUTE:     "RTM_DELROUTE",
	RTM_GETROUTE:     "RTM_GETROUTE",
	RTM_NEWNEIGH:     "RTM_NEWNEIGH",
	RTM_DELNEIGH:     "RTM_DELNEIGH",
	RTM_GETNEIGH:     "RTM_GETNEIGH",
	RTM_NEWRULE:      "RTM_NEWRULE",
	RTM_DELRULE:      "RTM_DELRULE",
	RTM_GETRULE:      "RTM_GETRULE",
	RTM_NEWQDISC:     "RTM_NEWQDISC",
	RTM_DELQDISC:     "RTM_DELQDISC",
	RTM_GETQDISC:     "RTM_GETQDISC",
	RTM_NEWTCLASS:    "RTM_NEWTCLASS",
	RTM_DELTCLASS:    "RTM_DELTCLASS",
	RTM_GETTCLASS:    "RTM_GETTCLASS",
	RTM_NEWTFILTER:   "RTM_NEWTFILTER",
	RTM_DELTFILTER:   "RTM_DELTFILTER",
	RTM_GETTFILTER:   "RTM_GETTFILTER",
	RTM_NEWACTION:    "RTM_NEWACTION",
	RTM_DELACTION:    "RTM_DELACTION",
	RTM_GETACTION:    "RTM_GETACTION",
	RTM_NEWPREFIX:    "RTM_NEWPREFIX",
	RTM_GETMULTICAST: "RTM_GETMULTICAST",
	RTM_GETANYCAST:   "RTM_GETANYCAST",
	RTM_NEWNEIGHTBL:  "RTM_NEWNEIGHTBL",
	RTM_GETNEIGHTBL:  "RTM_GETNEIGHTBL",
	RTM_SETNEIGHTBL:  "RTM_SETNEIGHTBL",
	RTM_NEWNDUSEROPT: "RTM_NEWNDUSEROPT",
	RTM_NEWADDRLABEL: "RTM_NEWADDRLABEL",
	RTM_DELADDRLABEL: "RTM_DELADDRLABEL",
	RTM_GETADDRLABEL: "RTM_GETADDRLABEL",
	RTM_GETDCB:       "RTM_GETDCB",
	RTM_SETDCB:       "RTM_SETDCB",
	RTM_NEWNETCONF:   "RTM_NEWNETCONF",
	RTM_GETNETCONF:   "RTM_GETNETCONF",
	RTM_NEWMDB:       "RTM_NEWMDB",
	RTM_DELMDB:       "RTM_DELMDB",
	RTM_GETMDB:       "RTM_GETMDB",
	RTM_NEWNSID:      "RTM_NEWNSID",
	RTM_DELNSID:      "RTM_DELNSID",
	RTM_GETNSID:      "RTM_GETNSID",
}

func (t MsgType) String() string {
	if name, ok := msgTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("RTM(%d)", uint16(t))
}

func (t RouteType) String() string {
	switch t {
	case RTN_UNSPEC:
		return "RTN_UNSPEC"
	case RTN_UNICAST:
		return "RTN_UNICAST"
	case RTN_LOCAL:
		return "RTN_LOCAL"
	case RTN_BROADCAST:
		return "RTN_BROADCAST"
	case RTN_ANYCAST:
		return "RTN_ANYCAST"
	case RTN_MULTICAST:
		return "RTN_MULTICAST"
	case RTN_BLACKHOLE:
		return "RTN_BLACKHOLE"
	case RTN_UNREACHABLE:
		return "RTN_UNREACHABLE"
	case RTN_PROHIBIT:
		return "RTN_PROHIBIT"
	case RTN_THROW:
		return "RTN_THROW"
	case RTN_NAT:
		return "RTN_NAT"
	case RTN_XRESOLVE:
		return "RTN_XRESOLVE"
	}
	return fmt.Sprintf("RTN(%d)", uint8(t))
}

func (p RouteProto) String() string {
	switch p {
	case RTPROT_UNSPEC:
		return "RTPROT_UNSPEC"
	case RTPROT_REDIRECT:
		return "RTPROT_REDIRECT"
	case RTPROT_KERNEL:
		return "RTPROT_KERNEL"
	case RTPROT_BOOT:
		return "RTPROT_BOOT"
	case RTPROT_STATIC:
		return "RTPROT_STATIC"
	}
	return fmt.Sprintf("RTPROT(%d)", uint8(p))
}

func (s Scope) String() string {
	switch s {
	case RT_SCOPE_UNIVERSE:
		return "RT_SCOPE_UNIVERSE"
	case RT_SCOPE_SITE:
		return "RT_SCOPE_SITE"
	case RT_SCOPE_LINK:
		return "RT_SCOPE_LINK"
	case RT_SCOPE_HOST:
		return "RT_SCOPE_HOST"
	case RT_SCOPE_NOWHERE:
		return "RT_SCOPE_NOWHERE"
	}
	return fmt.Sprintf("RT_SCOPE(%d)", uint8(s))
}

var addrFlagNames = []struct {
	flag AddrFlag
	name string
}{
	{IFA_F_SECONDARY, "IFA_F_SECONDARY"},
	{IFA_F_NODAD, "IFA_F_NODAD"},
	{IFA_F_OPTIMISTIC, "IFA_F_OPTIMISTIC"},
	{IFA_F_DADFAILED, "IFA_F_DADFAILED"},
	{IFA_F_HOMEADDRESS, "IFA_F_HOMEADDRESS"},
	{IFA_F_DEPRECATED, "IFA_F_DEPRECATED"},
	{IFA_F_TENTATIVE, "IFA_F_TENTATIVE"},
	{IFA_F_PERMANENT, "IFA_F_PERMANENT"},
	{IFA_F_MANAGETEMPADDR, "IFA_F_MANAGETEMPADDR"},
	{IFA_F_NOPREFIXROUTE, "IFA_F_NOPREFIXROUTE"},
	{IFA_F_MCAUTOJOIN, "IFA_F_MCAUTOJOIN"},
	{IFA_F_STABLE_PRIVACY, "IFA_F_STABLE_PRIVACY"},
}

// String decomposes f into its named bits. IFA_F_TEMPORARY shares the
// value of IFA_F_SECONDARY and is printed under the latter name.
func (f AddrFlag) String() string {
	if f == 0 {
		return "0"
	}
	var names []string
	for _, fn := range addrFlagNames {
		if f&fn.flag != 0 {
			names = append(names, fn.name)
			f &^= fn.flag
		}
	}
	if f != 0 {
		names = append(names, fmt.Sprintf("0x%x", uint32(f)))
	}
	return strings.Join(names, "|")
}

func (t Table) String() string {
	switch t {
	case RT_TABLE_UNSPEC:
		return "RT_TABLE_UNSPEC"
	case RT_TABLE_COMPAT:
		return "RT_TABLE_COMPAT"
	case RT_TABLE_DEFAULT:
		return "RT_TABLE_DEFAULT"
	case RT_TABLE_MAIN:
		return "RT_TABLE_MAIN"
	case RT_TABLE_LOCAL:
		return "RT_TABLE_LOCAL"
	}
	return fmt.Sprintf("RT_TABLE(%d)", uint8(t))
}
