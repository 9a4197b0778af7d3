//go:build procsyncchecks

package procsync

// checksEnabled gates the debug-only misuse detection (mutex reentrancy
// counting, use-after-close assertions). Build with -tags procsyncchecks
// to enable; the production lock behavior is identical either way.
const checksEnabled = true
