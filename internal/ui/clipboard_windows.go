//go:build windows

package ui

import (
	"syscall"
	"unsafe"
)

var (
	user32   = syscall.NewLazyDLL("user32.dll")
	kernel32 = syscall.NewLazyDLL("kernel32.dll")

	procOpenCB       = user32.NewProc("OpenClipboard")
	procCloseCB      = user32.NewProc("CloseClipboard")
	procGetCBData    = user32.NewProc("GetClipboardData")
	procGlobalLock   = kernel32.NewProc("GlobalLock")
	procGlobalUnlock = kernel32.NewProc("GlobalUnlock")
)

const cfUnicodeText = 13

func readClipboard() string {
	ret, _, _ := procOpenCB.Call(0)
	if ret == 0 {
		return ""
	}
	defer procCloseCB.Call()

	h, _, _ := procGetCBData.Call(cfUnicodeText)
	if h == 0 {
		return ""
	}

	ptr, _, _ := procGlobalLock.Call(h)
	if ptr == 0 {
		return ""
	}
	defer procGlobalUnlock.Call(h)

	return syscall.UTF16ToString((*[1 << 20]uint16)(unsafe.Pointer(ptr))[:])
}
