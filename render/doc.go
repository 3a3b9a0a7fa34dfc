// Package render turns waveforms into either PNG plots or plain arrays.
//
// A [Renderer] owns an output directory. [Renderer.Plot] with a filename draws
// the waveform into that directory and returns no data; without a filename it
// returns a [Series], the JSON-friendly form used by the HTTP API.
//
// The output directory is created lazily by [Renderer.EnsureDir] the first
// time an image is saved, never on package load.
package render
