//go:build unix

package main

import "golang.org/x/sys/unix"

// raisePriority lowers the nice value a little. Unprivileged users usually
// get EACCES, which leaves the default priority in place.
func raisePriority() error {
	return unix.Setpriority(unix.PRIO_PROCESS, 0, -5)
}
