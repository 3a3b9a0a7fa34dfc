package render

import (
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cwbudde/phaseline/dsp/waveform"
)

func TestPlotWithoutFilenameReturnsSeries(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "graphs")
	r := New(dir)
	w := waveform.SquareWave(waveform.NewParams(
		waveform.WithFrequency(1), waveform.WithAmplitude(2), waveform.WithSampleRate(4)))

	s, err := r.Plot(w, "Square Wave", "")
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75}, s.Time)
	assert.Equal(t, []float64{0, 2, 0, -2}, s.Amplitude)

	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err), "returning data must not create the output directory")
}

func TestSeriesIsACopy(t *testing.T) {
	w := waveform.SineWave(waveform.DefaultParams())
	s := NewSeries(w)
	s.Amplitude[10] = 99
	assert.NotEqual(t, 99.0, w.Amplitude[10])
	assert.Equal(t, w.Len(), s.Len())
}

func TestSeriesSummary(t *testing.T) {
	s := NewSeries(waveform.SquareWave(waveform.NewParams(waveform.WithAmplitude(3))))
	sum := s.Summary()
	assert.Equal(t, 1000, sum.Length)
	assert.Equal(t, 3.0, sum.Peak)
	assert.Equal(t, 9, sum.ZeroCrossings)
}

func TestPlotSavesPNG(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "graphs")
	core, logs := observer.New(zap.InfoLevel)
	r := New(dir, WithDPI(50), WithLogger(zap.New(core)))

	s, err := r.Plot(waveform.SineWave(waveform.DefaultParams()), "Sine Wave", "sine_wave.png")
	require.NoError(t, err)
	assert.Nil(t, s)

	f, err := os.Open(filepath.Join(dir, "sine_wave.png"))
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	b := img.Bounds()
	assert.InDelta(t, 300, b.Dx(), 1)
	assert.InDelta(t, 200, b.Dy(), 1)

	require.Equal(t, 1, logs.FilterMessage("saved plot").Len())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestSaveAddsExtension(t *testing.T) {
	r := New(t.TempDir(), WithDPI(20))
	path, err := r.Save(waveform.TriangleWave(waveform.DefaultParams()), "Triangle Wave", "triangle")
	require.NoError(t, err)
	assert.Equal(t, "triangle.png", filepath.Base(path))
	assert.FileExists(t, path)
}

func TestSaveToleratesEmptyAndNonFinite(t *testing.T) {
	r := New(t.TempDir(), WithDPI(20))

	_, err := r.Save(waveform.SineWave(waveform.NewParams(waveform.WithDuration(0))), "Empty", "empty.png")
	require.NoError(t, err)

	w := waveform.SineWave(waveform.NewParams(waveform.WithFrequency(math.Inf(1))))
	_, err = r.Save(w, "NaN", "nan.png")
	require.NoError(t, err)
}

func TestSaveRejectsBadFilenames(t *testing.T) {
	r := New(t.TempDir())
	w := waveform.SineWave(waveform.DefaultParams())
	for _, name := range []string{"..", "../escape.png", "a/b.png", `a\b.png`, " ", "plot.jpg"} {
		_, err := r.Save(w, "bad", name)
		assert.ErrorIs(t, err, ErrInvalidFilename, "filename %q", name)
	}
}

func TestSaveRejectsMismatchedWaveform(t *testing.T) {
	r := New(t.TempDir())
	_, err := r.Save(waveform.Waveform{Time: []float64{0, 1}, Amplitude: []float64{0}}, "bad", "bad.png")
	require.Error(t, err)
}

func TestEnsureDirIdempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	r := New(dir)
	require.NoError(t, r.EnsureDir())
	require.NoError(t, r.EnsureDir())
	assert.DirExists(t, dir)
	assert.Equal(t, dir, r.Dir())
}

func TestNewDefaults(t *testing.T) {
	r := New("", WithSize(0, 0), WithDPI(-1), WithLogger(nil))
	assert.Equal(t, DefaultDir, r.Dir())
	assert.Equal(t, 300, r.dpi)
	assert.NotNil(t, r.logger)
}
