// Package connector provides the constants of the kernel connector
// (NETLINK_CONNECTOR), from uapi/linux/connector.h, and of its process
// event subsystem, from uapi/linux/cn_proc.h.
//
// Connector endpoints are addressed by a cb_id pair of index and value.
package connector

import "fmt"

// Idx is the index half of a connector cb_id.
type Idx uint32

// Val is the value half of a connector cb_id.
type Val uint32

// Registered connector indices, from uapi/linux/connector.h.
const (
	CN_IDX_PROC Idx = 0x1
	CN_IDX_CIFS Idx = 0x2
	CN_W1_IDX   Idx = 0x3
	CN_IDX_V86D Idx = 0x4
	CN_IDX_BB   Idx = 0x5
	CN_DST_IDX  Idx = 0x6
	CN_IDX_DM   Idx = 0x7
	CN_IDX_DRBD Idx = 0x8
	CN_KVP_IDX  Idx = 0x9
	CN_VSS_IDX  Idx = 0xa
)

// Connector values paired with the indices above, from
// uapi/linux/connector.h.
const (
	CN_VAL_PROC             Val = 0x1
	CN_VAL_CIFS             Val = 0x1
	CN_W1_VAL               Val = 0x1
	CN_VAL_V86D_UVESAFB     Val = 0x1
	CN_DST_VAL              Val = 0x1
	CN_VAL_DM_USERSPACE_LOG Val = 0x1
	CN_VAL_DRBD             Val = 0x1
	CN_KVP_VAL              Val = 0x1
	CN_VSS_VAL              Val = 0x1
)

// McastOp is a process event multicast subscription operation.
type McastOp uint32

// Subscription operations sent to the proc connector, from
// uapi/linux/cn_proc.h.
const (
	PROC_CN_MCAST_LISTEN McastOp = 1
	PROC_CN_MCAST_IGNORE McastOp = 2
)

// EventType identifies a process event, the what field of
// struct proc_event.
type EventType uint32

// Process event types, from uapi/linux/cn_proc.h.
const (
	PROC_EVENT_NONE         EventType = 0x00000000
	PROC_EVENT_FORK         EventType = 0x00000001
	PROC_EVENT_EXEC         EventType = 0x00000002
	PROC_EVENT_UID          EventType = 0x00000004
	PROC_EVENT_GID          EventType = 0x00000040
	PROC_EVENT_SID          EventType = 0x00000080
	PROC_EVENT_PTRACE       EventType = 0x00000100
	PROC_EVENT_COMM         EventType = 0x00000200
	PROC_EVENT_NONZERO_EXIT EventType = 0x20000000
	PROC_EVENT_COREDUMP     EventType = 0x40000000
	PROC_EVENT_EXIT         EventType = 0x80000000
)

func (i Idx) String() string {
	switch i {
	case CN_IDX_PROC:
		return "CN_IDX_PROC"
	case CN_IDX_CIFS:
		return "CN_IDX_CIFS"
	case CN_W1_IDX:
		return "CN_W1_IDX"
	case CN_IDX_V86D:
		return "CN_IDX_V86D"
	case CN_IDX_BB:
		return "CN_IDX_BB"
	case CN_DST_IDX:
		return "CN_DST_IDX"
	case CN_IDX_DM:
		return "CN_IDX_DM"
	case CN_IDX_DRBD:
		return "CN_IDX_DRBD"
	case CN_KVP_IDX:
		return "CN_KVP_IDX"
	case CN_VSS_IDX:
		return "CN_VSS_IDX"
	}
	return fmt.Sprintf("CN_IDX(0x%x)", uint32(i))
}

func (o McastOp) String() string {
	switch o {
	case PROC_CN_MCAST_LISTEN:
		return "PROC_CN_MCAST_LISTEN"
	case PROC_CN_MCAST_IGNORE:
		return "PROC_CN_MCAST_IGNORE"
	}
	return fmt.Sprintf("PROC_CN_MCAST(%d)", uint32(o))
}

func (e EventType) String() string {
	switch e {
	case PROC_EVENT_NONE:
		return "PROC_EVENT_NONE"
	case PROC_EVENT_FORK:
		return "PROC_EVENT_FORK"
	case PROC_EVENT_EXEC:
		return "PROC_EVENT_EXEC"
	case PROC_EVENT_UID:
		return "PROC_EVENT_UID"
	case PROC_EVENT_GID:
		return "PROC_EVENT_GID"
	case PROC_EVENT_SID:
		return "PROC_EVENT_SID"
	case PROC_EVENT_PTRACE:
		return "PROC_EVENT_PTRACE"
	case PROC_EVENT_COMM:
		return "PROC_EVENT_COMM"
	case PROC_EVENT_NONZERO_EXIT:
		return "PROC_EVENT_NONZERO_EXIT"
	case PROC_EVENT_COREDUMP:
		return "PROC_EVENT_COREDUMP"
	case PROC_EVENT_EXIT:
		return "PROC_EVENT_EXIT"
	}
	return fmt.Sprintf("PROC_EVENT(0x%x)", uint32(e))
}
