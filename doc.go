// Package procsync provides cross-process synchronization and
// thread-lifecycle primitives for developer tooling that must coordinate
// independent processes (e.g. a monitored application and an out-of-process
// tool) through shared kernel objects.
//
// # Architecture
//
// The package is layered leaves-first: atomic word operations
// ([Increment], [Add], ...) underpin the busy-wait [Spinlock]; [Mutex],
// [Event] and [Semaphore] wrap the OS wait primitives; [Thread] owns an
// OS-scheduled execution context with a completion event and
// join-with-timeout; [Library] performs reference-counted dynamic module
// loading and symbol resolution.
//
// Cross-process capability transfer is explicit: [CopySemaphoreFromProcess]
// and [CopyBufferFromProcess] pull a foreign process's handle into the
// calling process, and [SharedBuffer.ShareWithProcess] pushes a local handle
// into a foreign process where the platform supports handle-table
// duplication. No named kernel objects are ever created; named objects
// introduce cross-session collision and visibility problems, so every
// transfer requires an explicit process identity.
//
// # Platform Support
//
// Kernel objects are implemented using platform-native mechanisms:
//   - Linux: eventfd semaphores, memfd-backed shared memory, and
//     pidfd_getfd handle duplication, plus SCM_RIGHTS transfer over
//     [HandleConn] for cooperative handle passing.
//   - Windows: semaphore/file-mapping kernel objects with
//     OpenProcess + DuplicateHandle capability transfer, matching the
//     classic user-mode platform layer this package descends from.
//
// # Result Model
//
// Every blocking or resource-touching operation returns a [Result] rather
// than panicking or relying on unwinding: timeouts surface as
// [ResultNotReady] (an expected condition, not an error), missing optional
// OS facilities as [ResultUnavailable], and OS failures as [ResultError] or
// [ResultFileIoError]. Programming misuse (double unlock, destroying a held
// mutex) is a contract violation and panics; see the procsyncchecks build
// tag for the additional debug-only misuse detection.
//
// # Thread Safety
//
// All exported types are safe for concurrent use unless documented
// otherwise. [Spinlock] is safe only for same-process, microsecond-scale
// critical sections: it busy-waits without yielding to the scheduler.
package procsync
