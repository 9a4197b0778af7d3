package procsync

import "errors"

// Standard errors. These mirror the Result kinds for callers that prefer
// error plumbing (errors.Is) over switching on Result values.
var (
	// ErrNotReady is returned when a bounded wait elapses before the object
	// is signaled. It is an expected condition, not a failure.
	ErrNotReady = errors.New("procsync: not ready")

	// ErrOperationFailed is returned for generic OS or resource failures.
	ErrOperationFailed = errors.New("procsync: operation failed")

	// ErrInvalidParameter is returned when a caller-supplied argument is
	// rejected before any OS call is made.
	ErrInvalidParameter = errors.New("procsync: invalid parameter")

	// ErrUnavailable is returned when an optional OS facility does not
	// exist on the running system (e.g. a thread-naming entry point).
	ErrUnavailable = errors.New("procsync: unavailable on this platform")

	// ErrFileNotFound is returned when a module could not be located by the
	// library loader.
	ErrFileNotFound = errors.New("procsync: file not found")

	// ErrFileIo is returned for I/O failures against files or file-backed
	// kernel objects.
	ErrFileIo = errors.New("procsync: file i/o error")
)

// Result is the discriminated outcome of every blocking or
// resource-touching operation in this package.
//
// ResultNotReady deserves emphasis: it reports an elapsed timeout and is
// folded into polling/retry loops by callers, never logged as a failure.
type Result int32

const (
	// ResultSuccess indicates the operation completed.
	ResultSuccess Result = iota
	// ResultError indicates a generic OS or resource failure.
	ResultError
	// ResultNotReady indicates a bounded wait elapsed before the object
	// was signaled. Not an error.
	ResultNotReady
	// ResultInvalidParameter indicates a rejected caller argument.
	ResultInvalidParameter
	// ResultUnavailable indicates an optional OS facility is missing.
	ResultUnavailable
	// ResultFileNotFound indicates a module or file could not be located.
	ResultFileNotFound
	// ResultFileIoError indicates an I/O failure.
	ResultFileIoError
)

// String implements fmt.Stringer.
func (r Result) String() string {
	switch r {
	case ResultSuccess:
		return "Success"
	case ResultError:
		return "Error"
	case ResultNotReady:
		return "NotReady"
	case ResultInvalidParameter:
		return "InvalidParameter"
	case ResultUnavailable:
		return "Unavailable"
	case ResultFileNotFound:
		return "FileNotFound"
	case ResultFileIoError:
		return "FileIoError"
	default:
		return "Unknown"
	}
}

// IsSuccess reports whether r is ResultSuccess.
func (r Result) IsSuccess() bool { return r == ResultSuccess }

// Err converts r to its sentinel error, or nil for ResultSuccess.
func (r Result) Err() error {
	switch r {
	case ResultSuccess:
		return nil
	case ResultNotReady:
		return ErrNotReady
	case ResultInvalidParameter:
		return ErrInvalidParameter
	case ResultUnavailable:
		return ErrUnavailable
	case ResultFileNotFound:
		return ErrFileNotFound
	case ResultFileIoError:
		return ErrFileIo
	default:
		return ErrOperationFailed
	}
}

// Handle is a platform kernel-object handle: a file descriptor on Linux, a
// HANDLE on Windows. A Handle value is meaningful only within the address
// space (handle table) of the process that owns it; see the duplication
// operations for moving handles between processes.
type Handle uintptr

// NullHandle is the invalid/empty handle value.
const NullHandle Handle = 0
