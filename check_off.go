//go:build !procsyncchecks

package procsync

const checksEnabled = false
