//go:build linux

package threadlocal

import "golang.org/x/sys/unix"

func currentThreadID() int { return unix.Gettid() }
