package procsync

import "sync"

// Library is a reference-counted handle to a dynamically loaded module.
//
// Load prefers aliasing a module the OS has already loaded (bumping its
// reference count) over loading a fresh copy; Close decrements the count
// and the OS unloads the module when it reaches zero. The zero value is an
// unloaded Library.
type Library struct {
	mu     sync.Mutex
	handle uintptr
}

// Load loads the module with the given name into this process, searching
// in the platform's usual order. If an instance of the module is already
// loaded, its reference count is incremented instead of loading a second
// copy.
//
// Returns ResultFileNotFound if the module cannot be located,
// ResultError if this Library already holds a loaded module.
func (l *Library) Load(name string) Result {
	if name == "" {
		return ResultInvalidParameter
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.handle != 0 {
		return ResultError
	}
	h, res := loadLibrary(name)
	if res != ResultSuccess {
		return res
	}
	l.handle = h
	return ResultSuccess
}

// IsLoaded reports whether the Library currently holds a loaded module.
func (l *Library) IsLoaded() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.handle != 0
}

// GetFunction resolves an exported symbol address by name. The caller must
// convert the address to the correct function type; no type checking is or
// can be performed. Returns 0 and an error if the symbol is missing or the
// library is not loaded.
func (l *Library) GetFunction(name string) (uintptr, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.handle == 0 {
		if checksEnabled {
			panic("procsync: GetFunction on unloaded Library")
		}
		return 0, ErrInvalidParameter
	}
	return getFunction(l.handle, name)
}

// Close decrements the module's OS reference count. Safe to call multiple
// times; once closed it is a no-op until the next Load.
func (l *Library) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.handle == 0 {
		return
	}
	if err := closeLibrary(l.handle); err != nil {
		logWarn("Library.Close", err, "unload failed")
	}
	l.handle = 0
}
