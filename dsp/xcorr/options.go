package xcorr

import algofft "github.com/MeKo-Christian/algo-fft"

// EngineConfig holds construction settings for [New] and [NewComplex].
type EngineConfig[C algofft.Complex] struct {
	// FFTSize overrides the working length. Zero selects the next power of
	// two >= lenA+lenB-1.
	FFTSize int

	// Factory builds the transform when no Cache is set.
	Factory TransformFactory[C]

	// Cache, when set, supplies a shared transform per FFT size.
	Cache *TransformCache[C]
}

// Option mutates an EngineConfig.
type Option[C algofft.Complex] func(*EngineConfig[C])

// DefaultEngineConfig returns the algo-fft plan backend with automatic sizing.
func DefaultEngineConfig[C algofft.Complex]() EngineConfig[C] {
	return EngineConfig[C]{
		Factory: DefaultFactory[C](),
	}
}

// WithFFTSize fixes the working FFT length. Non-positive values are ignored.
func WithFFTSize[C algofft.Complex](n int) Option[C] {
	return func(cfg *EngineConfig[C]) {
		if n > 0 {
			cfg.FFTSize = n
		}
	}
}

// WithFactory selects the transform backend. A nil factory is ignored.
func WithFactory[C algofft.Complex](factory TransformFactory[C]) Option[C] {
	return func(cfg *EngineConfig[C]) {
		if factory != nil {
			cfg.Factory = factory
		}
	}
}

// WithCache makes the engine take its transform from cache, sharing it with
// every other engine of the same FFT size.
func WithCache[C algofft.Complex](cache *TransformCache[C]) Option[C] {
	return func(cfg *EngineConfig[C]) {
		cfg.Cache = cache
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions[C algofft.Complex](opts ...Option[C]) EngineConfig[C] {
	cfg := DefaultEngineConfig[C]()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
