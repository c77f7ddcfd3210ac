package proc

import (
	"context"

	"github.com/shirou/gopsutil/v3/process"
)

// Details holds display metadata for a matched process. Fields that
// cannot be read (permission denied, process exited) are left empty
// rather than failing the lookup.
type Details struct {
	PID     int32
	User    string
	Exe     string
	Cmdline string
}

// Describe enriches a matched PID for display. Only the PID itself is
// guaranteed to be set.
func Describe(ctx context.Context, pid int32) Details {
	d := Details{PID: pid}

	p, err := process.NewProcessWithContext(ctx, pid)
	if err != nil {
		return d
	}

	if user, err := p.UsernameWithContext(ctx); err == nil {
		d.User = user
	}
	if exe, err := p.ExeWithContext(ctx); err == nil {
		d.Exe = exe
	}
	if cmdline, err := p.CmdlineWithContext(ctx); err == nil {
		d.Cmdline = cmdline
	}

	return d
}
