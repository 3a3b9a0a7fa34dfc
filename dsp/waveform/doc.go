// Package waveform synthesizes sampled sine, square and triangle waveforms.
//
// Every waveform is built in two steps: a time base of
// floor(duration*sampleRate) samples over [0, duration), then one of three
// amplitude functions applied to that time base. All functions are pure and
// allocate fresh output, so they are safe for concurrent use.
//
// # Usage
//
//	w := waveform.SineWave(waveform.NewParams(
//		waveform.WithFrequency(440),
//		waveform.WithSampleRate(48000),
//	))
//	fmt.Println(len(w.Time), len(w.Amplitude))
//
// No input validation happens during synthesis: degenerate durations or
// sample rates give empty output, and non-finite frequencies or amplitudes
// propagate as non-finite samples. Use [Params.Validate] to reject such input
// before generating.
package waveform
