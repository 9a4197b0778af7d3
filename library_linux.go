//go:build linux

package procsync

import (
	"github.com/ebitengine/purego"
)

// RTLD_NOLOAD (glibc): probe for an already-loaded module without loading.
// Not exported by purego, which only wraps the portable dlfcn flags.
const rtldNoload = 0x00004

// loadLibrary prefers an existing instance: dlopen with RTLD_NOLOAD bumps
// the reference count of an already-loaded module without reading the file
// again, the moral equivalent of GetModuleHandleEx on Windows. Only if no
// instance exists is the module loaded fresh.
func loadLibrary(name string) (uintptr, Result) {
	h, err := purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL|rtldNoload)
	if err == nil && h != 0 {
		return h, ResultSuccess
	}
	h, err = purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		logDebug("Library.Load", "dlopen: "+err.Error())
		return 0, ResultFileNotFound
	}
	return h, ResultSuccess
}

func getFunction(handle uintptr, name string) (uintptr, error) {
	addr, err := purego.Dlsym(handle, name)
	if err != nil {
		return 0, err
	}
	return addr, nil
}

func closeLibrary(handle uintptr) error {
	return purego.Dlclose(handle)
}
