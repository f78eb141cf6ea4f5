package sigfetch

import (
	"errors"
)

var ErrNotImplemented = errors.New("sigfetch: not implemented")

// Fetcher gathers the facts shown next to the logo. Every method is
// independent of the others; a failure only affects its own line.
type Fetcher interface {
	GetHostIdentity() (HostIdentity, error)
	GetOsName() (string, error)
	GetMem() (Mem, error)
	GetUptime() (Uptime, error)
	GetShell() (string, error)
	GetUser(HostIdentity) (string, error)
}

type HostIdentity struct {
	KernelName    string
	KernelRelease string
	NodeName      string
}

type OsRelease struct {
	PrettyName string
}

// Mem holds kibibyte counts as reported by meminfo.
type Mem struct {
	Total     int64
	Available int64
}

func (m Mem) Used() int64 {
	return m.Total - m.Available
}

type Uptime struct {
	Length float64
}
