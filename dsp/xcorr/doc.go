// Package xcorr provides FFT-based cross-correlation of discrete signals.
//
// Correlation is computed as IFFT(FFT(a) * conj(FFT(b))) on zero-padded
// buffers of length N >= len(a)+len(b)-1, which makes the circular result
// equal to the linear one. This is O(N log N) instead of the O(len(a)*len(b))
// sliding dot product.
//
// # Usage
//
// For one-shot correlation:
//
//	corr, err := xcorr.Correlate64(a, b, xcorr.ModeFull)
//
// For repeated correlation at fixed lengths, build an engine once:
//
//	e, err := xcorr.New64(len(a), len(b), xcorr.ModeSame)
//	out := make([]float64, e.OutputLen())
//	err = e.CorrelateTo(out, a, b) // no allocations
//
// # Modes
//
// With M = max(len(a), len(b)) and m = min(len(a), len(b)):
//
//	ModeFull:  length len(a)+len(b)-1, every lag from -(len(b)-1) to len(a)-1
//	ModeSame:  length M, starting at floor((m-1)/2) in the full result
//	ModeValid: length M-m+1, starting at m-1 in the full result
//
// Index k of the full result holds lag k-(len(b)-1); use [LagFromIndex] to
// convert indices of any mode.
//
// # Backends
//
// The FFT is reached through the [Transform] interface. Available backends:
//
//   - [PlanTransform]: algo-fft plan, the default, safe to share
//   - [FastTransform]: algo-fft codelet plan for supported power-of-two sizes
//   - [GonumTransform]: gonum complex FFT, any size, float64 only
//
// New plans are checked against known spectra before use. [DefaultFactory]
// replaces a plan that fails the check with a gonum transform of the same
// size.
//
// Use [NewWithTransforms] to plug in a custom backend, and [TransformCache]
// with [WithCache] to share one plan among engines of equal FFT size.
//
// # Concurrency
//
// An [Engine] mutates its scratch buffers on every call and must not be used
// from several goroutines at once. Separate engines are independent.
package xcorr
