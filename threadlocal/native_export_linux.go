//go:build linux && cgo

package threadlocal

import "C"

import "unsafe"

//export pageallocDestroy
func pageallocDestroy(key C.uint, value unsafe.Pointer) {
	if uint(key) >= maxNativeKeys {
		return
	}
	if d := nativeDestructors[key].Load(); d != nil {
		(*d)(Handle(value))
	}
}
