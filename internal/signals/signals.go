//go:build linux

// Package signals maps human-readable signal names to Linux signal values.
package signals

import (
	"strings"
	"syscall"
)

// Descriptor pairs a canonical signal name with its kernel value.
type Descriptor struct {
	Name   string
	Signal syscall.Signal
}

// table lists the standard Linux signals in kernel numeric order.
// Declaration order is a stable contract: Names and List expose it
// unchanged to users.
var table = []Descriptor{
	{"HUP", syscall.SIGHUP},
	{"INT", syscall.SIGINT},
	{"QUIT", syscall.SIGQUIT},
	{"ILL", syscall.SIGILL},
	{"TRAP", syscall.SIGTRAP},
	{"ABRT", syscall.SIGABRT},
	{"BUS", syscall.SIGBUS},
	{"FPE", syscall.SIGFPE},
	{"KILL", syscall.SIGKILL},
	{"USR1", syscall.SIGUSR1},
	{"SEGV", syscall.SIGSEGV},
	{"USR2", syscall.SIGUSR2},
	{"PIPE", syscall.SIGPIPE},
	{"ALRM", syscall.SIGALRM},
	{"TERM", syscall.SIGTERM},
	{"STKFLT", syscall.SIGSTKFLT},
	{"CHLD", syscall.SIGCHLD},
	{"CONT", syscall.SIGCONT},
	{"STOP", syscall.SIGSTOP},
	{"TSTP", syscall.SIGTSTP},
	{"TTIN", syscall.SIGTTIN},
	{"TTOU", syscall.SIGTTOU},
	{"URG", syscall.SIGURG},
	{"XCPU", syscall.SIGXCPU},
	{"XFSZ", syscall.SIGXFSZ},
	{"VTALRM", syscall.SIGVTALRM},
	{"PROF", syscall.SIGPROF},
	{"WINCH", syscall.SIGWINCH},
	{"IO", syscall.SIGIO},
	{"PWR", syscall.SIGPWR},
	{"SYS", syscall.SIGSYS},
}

var byName = func() map[string]Descriptor {
	m := make(map[string]Descriptor, len(table))
	for _, d := range table {
		m[d.Name] = d
	}
	return m
}()

// Default returns the descriptor delivered when no signal is requested.
func Default() Descriptor {
	return byName["TERM"]
}

// Resolve looks up a signal by name, case-insensitively. An optional
// "SIG" prefix is accepted, so "term", "TERM" and "SIGTERM" all resolve
// to the same descriptor.
func Resolve(name string) (Descriptor, bool) {
	upper := strings.TrimPrefix(strings.ToUpper(name), "SIG")
	d, ok := byName[upper]
	return d, ok
}

// Names returns the canonical signal names in table order.
func Names() []string {
	names := make([]string, len(table))
	for i, d := range table {
		names[i] = d.Name
	}
	return names
}

// List returns the space-joined canonical names for display.
func List() string {
	return strings.Join(Names(), " ")
}
