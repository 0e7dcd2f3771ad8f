// Package netprobe answers the single question "is the network reachable
// right now". Services consult it before any remote call so a dead link fails
// fast instead of waiting out a driver timeout. It is a cheap local check, not
// a guarantee against mid-operation network loss.
package netprobe

import (
	"net"
	"time"
)

// Checker reports local network availability.
type Checker interface {
	Online() bool
}

// Static is a fixed answer, useful in tests and offline tooling.
type Static bool

func (s Static) Online() bool { return bool(s) }

// Prober checks reachability with a short TCP dial.
type Prober struct {
	addr    string
	timeout time.Duration
}

// New creates a Prober against addr (host:port). A zero timeout defaults to
// two seconds.
func New(addr string, timeout time.Duration) *Prober {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &Prober{addr: addr, timeout: timeout}
}

// Online dials the probe address and reports whether the connection succeeded.
func (p *Prober) Online() bool {
	conn, err := net.DialTimeout("tcp", p.addr, p.timeout)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}
