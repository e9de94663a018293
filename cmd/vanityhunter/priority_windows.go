//go:build windows

package main

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var procSetProcessInformation = windows.NewLazySystemDLL("kernel32.dll").NewProc("SetProcessInformation")

// raisePriority moves the process to high priority, or above normal when
// that is refused, and turns off power throttling (Efficiency Mode).
func raisePriority() error {
	process := windows.CurrentProcess()
	if err := windows.SetPriorityClass(process, windows.HIGH_PRIORITY_CLASS); err != nil {
		if err := windows.SetPriorityClass(process, windows.ABOVE_NORMAL_PRIORITY_CLASS); err != nil {
			return err
		}
	}
	return disablePowerThrottling(process)
}

// Available on Windows 10 1709+.
func disablePowerThrottling(process windows.Handle) error {
	const (
		processPowerThrottling = 4
		executionSpeed         = 0x1
	)
	state := struct {
		Version     uint32
		ControlMask uint32
		StateMask   uint32
	}{Version: 1, ControlMask: executionSpeed}

	if err := procSetProcessInformation.Find(); err != nil {
		return nil
	}
	ret, _, err := procSetProcessInformation.Call(
		uintptr(process),
		processPowerThrottling,
		uintptr(unsafe.Pointer(&state)),
		unsafe.Sizeof(state),
	)
	if ret == 0 {
		return err
	}
	return nil
}
