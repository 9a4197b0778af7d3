package procsync

import "github.com/joeycumines/logiface"

// threadOptions holds configuration options for Thread creation.
type threadOptions struct {
	name string
}

// ThreadOption configures a Thread instance.
type ThreadOption interface {
	applyThread(*threadOptions) error
}

// threadOptionImpl implements ThreadOption.
type threadOptionImpl struct {
	applyThreadFunc func(*threadOptions) error
}

func (o *threadOptionImpl) applyThread(opts *threadOptions) error {
	return o.applyThreadFunc(opts)
}

// WithThreadName sets the OS-level thread name applied when the thread
// starts. Names longer than the platform limit are truncated; see
// Thread.SetName for the best-effort semantics.
func WithThreadName(name string) ThreadOption {
	return &threadOptionImpl{func(opts *threadOptions) error {
		opts.name = name
		return nil
	}}
}

// WithLogger sets the package-level structured logger. Provided as an
// option for symmetry with construction-time configuration; equivalent to
// calling SetLogger.
func WithLogger(logger *logiface.Logger[logiface.Event]) ThreadOption {
	return &threadOptionImpl{func(opts *threadOptions) error {
		SetLogger(logger)
		return nil
	}}
}

// resolveThreadOptions applies ThreadOption instances to threadOptions.
func resolveThreadOptions(opts []ThreadOption) (*threadOptions, error) {
	cfg := &threadOptions{}
	for _, opt := range opts {
		if opt == nil {
			continue // Skip nil options gracefully
		}
		if err := opt.applyThread(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
