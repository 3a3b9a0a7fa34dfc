package render

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/cwbudde/phaseline/dsp/waveform"
)

// DefaultDir is the output directory used when New receives an empty path.
const DefaultDir = "graphs"

var (
	ErrInvalidFilename = errors.New("invalid plot filename")
	errLengthMismatch  = errors.New("waveform time and amplitude lengths differ")
)

// Renderer draws waveforms into PNG files inside one output directory.
// It holds only immutable configuration and is safe for concurrent use.
type Renderer struct {
	dir    string
	width  vg.Length
	height vg.Length
	dpi    int
	logger *zap.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger sets the logger used to report saved plots.
func WithLogger(l *zap.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithSize sets the physical plot size.
func WithSize(width, height vg.Length) Option {
	return func(r *Renderer) {
		if width > 0 && height > 0 {
			r.width = width
			r.height = height
		}
	}
}

// WithDPI sets the raster resolution.
func WithDPI(dpi int) Option {
	return func(r *Renderer) {
		if dpi > 0 {
			r.dpi = dpi
		}
	}
}

// New returns a Renderer writing into dir. Defaults: 6x4 inch at 300 DPI.
func New(dir string, opts ...Option) *Renderer {
	if dir == "" {
		dir = DefaultDir
	}
	r := &Renderer{
		dir:    dir,
		width:  6 * vg.Inch,
		height: 4 * vg.Inch,
		dpi:    300,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Dir returns the output directory.
func (r *Renderer) Dir() string {
	return r.dir
}

// EnsureDir creates the output directory if needed. Calling it repeatedly is
// harmless.
func (r *Renderer) EnsureDir() error {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("create output directory %s: %w", r.dir, err)
	}
	return nil
}

// Plot renders w. With a non-empty filename the plot is saved into the output
// directory and Plot returns (nil, nil). Otherwise the waveform is returned as
// a Series and nothing touches the filesystem.
func (r *Renderer) Plot(w waveform.Waveform, title, filename string) (*Series, error) {
	if filename == "" {
		return NewSeries(w), nil
	}
	if _, err := r.Save(w, title, filename); err != nil {
		return nil, err
	}
	return nil, nil
}

// Save draws w into dir/filename and returns the written path. The filename
// must be a bare name; one without extension gets ".png".
func (r *Renderer) Save(w waveform.Waveform, title, filename string) (string, error) {
	name, err := cleanFilename(filename)
	if err != nil {
		return "", err
	}
	if len(w.Time) != len(w.Amplitude) {
		return "", fmt.Errorf("%w: %d != %d", errLengthMismatch, len(w.Time), len(w.Amplitude))
	}

	p, err := newPlot(w, title)
	if err != nil {
		return "", err
	}

	if err := r.EnsureDir(); err != nil {
		return "", err
	}
	path := filepath.Join(r.dir, name)
	if err := r.writePNG(p, path); err != nil {
		return "", err
	}

	r.logger.Info("saved plot",
		zap.String("path", path),
		zap.String("title", title),
		zap.Int("samples", len(w.Time)),
	)
	return path, nil
}

func (r *Renderer) writePNG(p *plot.Plot, path string) error {
	c := vgimg.NewWith(vgimg.UseWH(r.width, r.height), vgimg.UseDPI(r.dpi))
	p.Draw(draw.New(c))

	tmp, err := os.CreateTemp(r.dir, ".plot-*.png")
	if err != nil {
		return fmt.Errorf("create plot file: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck

	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(tmp); err != nil {
		tmp.Close() //nolint:errcheck,gosec
		return fmt.Errorf("encode plot %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close plot file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("write plot %s: %w", path, err)
	}
	return nil
}

func newPlot(w waveform.Waveform, title string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Time (s)"
	p.Y.Label.Text = "Amplitude"
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, 0, len(w.Time))
	for i, t := range w.Time {
		a := w.Amplitude[i]
		if !finite(t) || !finite(a) {
			continue
		}
		pts = append(pts, plotter.XY{X: t, Y: a})
	}
	if len(pts) == 0 {
		return p, nil
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("build plot line: %w", err)
	}
	p.Add(line)
	return p, nil
}

func cleanFilename(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return "", fmt.Errorf("%w: %q", ErrInvalidFilename, name)
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case "":
		name += ".png"
	case ".png":
	default:
		return "", fmt.Errorf("%w: only .png is supported: %q", ErrInvalidFilename, name)
	}
	return name, nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
