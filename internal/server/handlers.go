package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/cwbudde/phaseline/dsp/waveform"
	"github.com/cwbudde/phaseline/internal/metrics"
	"github.com/cwbudde/phaseline/render"
	timestats "github.com/cwbudde/phaseline/stats/time"
)

const maxBodyBytes = 1 << 16

var (
	errTooManySamples = errors.New("too many samples")
	errOutOfRange     = errors.New("parameters out of range")
)

// encodeFailedBody is written verbatim when a response cannot be marshalled.
var encodeFailedBody = []byte(`{"error":"encode response failed"}` + "\n")

type waveformResponse struct {
	Kind      waveform.Kind   `json:"kind"`
	Title     string          `json:"title"`
	Params    waveform.Params `json:"params"`
	Time      []float64       `json:"time"`
	Amplitude []float64       `json:"amplitude"`
	Summary   timestats.Stats `json:"summary"`
}

type renderRequest struct {
	waveform.Params
	Title    string `json:"title"`
	Filename string `json:"filename"`
}

type renderResponse struct {
	Path    string `json:"path"`
	Samples int    `json:"samples"`
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) listKinds(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, map[string][]waveform.Kind{"kinds": waveform.Kinds()})
}

// getWaveform handles GET /v1/waveforms/{kind}.
func (s *Server) getWaveform(w http.ResponseWriter, r *http.Request) {
	kind, ok := s.kindParam(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	p, err := paramsFromQuery(q)
	if err == nil {
		err = s.checkParams(p)
	}
	if err != nil {
		s.reject(w, r, kind, err)
		return
	}

	wf, err := waveform.Generate(kind, p)
	if err != nil {
		s.reject(w, r, kind, err)
		return
	}
	title := q.Get("title")
	if title == "" {
		title = kind.Title()
	}
	series, err := s.renderer.Plot(wf, title, "")
	if err != nil {
		s.fail(w, r, kind, err)
		return
	}

	metrics.RequestsTotal.WithLabelValues(kind.String(), metrics.OutcomeOK).Inc()
	metrics.SamplesTotal.WithLabelValues(kind.String()).Add(float64(series.Len()))
	s.writeJSON(w, r, http.StatusOK, waveformResponse{
		Kind:      kind,
		Title:     title,
		Params:    p,
		Time:      series.Time,
		Amplitude: series.Amplitude,
		Summary:   series.Summary(),
	})
}

// renderWaveform handles POST /v1/waveforms/{kind}/render.
func (s *Server) renderWaveform(w http.ResponseWriter, r *http.Request) {
	kind, ok := s.kindParam(w, r)
	if !ok {
		return
	}

	req := renderRequest{Params: waveform.DefaultParams()}
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		s.reject(w, r, kind, fmt.Errorf("invalid request body: %w", err))
		return
	}
	if req.Filename == "" {
		s.reject(w, r, kind, errors.New("filename is required"))
		return
	}
	if err := s.checkParams(req.Params); err != nil {
		s.reject(w, r, kind, err)
		return
	}
	if req.Title == "" {
		req.Title = kind.Title()
	}

	wf, err := waveform.Generate(kind, req.Params)
	if err != nil {
		s.reject(w, r, kind, err)
		return
	}

	start := time.Now()
	path, err := s.renderer.Save(wf, req.Title, req.Filename)
	if errors.Is(err, render.ErrInvalidFilename) {
		s.reject(w, r, kind, err)
		return
	}
	if err != nil {
		s.fail(w, r, kind, err)
		return
	}
	metrics.RenderDuration.Observe(time.Since(start).Seconds())
	metrics.PlotsSavedTotal.Inc()
	metrics.RequestsTotal.WithLabelValues(kind.String(), metrics.OutcomeOK).Inc()
	metrics.SamplesTotal.WithLabelValues(kind.String()).Add(float64(wf.Len()))

	s.writeJSON(w, r, http.StatusCreated, renderResponse{Path: path, Samples: wf.Len()})
}

func (s *Server) kindParam(w http.ResponseWriter, r *http.Request) (waveform.Kind, bool) {
	kind, err := waveform.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		metrics.RequestsTotal.WithLabelValues("unknown", metrics.OutcomeRejected).Inc()
		s.writeError(w, r, http.StatusBadRequest, err)
		return 0, false
	}
	return kind, true
}

func (s *Server) checkParams(p waveform.Params) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if n := p.Samples(); n > s.cfg.MaxSamples {
		return fmt.Errorf("%w: %d exceeds limit %d", errTooManySamples, n, s.cfg.MaxSamples)
	}
	return checkRange(p)
}

// checkRange rejects finite parameters whose samples or summary would not be.
func checkRange(p waveform.Params) error {
	if cycles := 2 * math.Pi * p.Frequency * p.Duration; math.IsInf(cycles, 0) {
		return fmt.Errorf("%w: frequency %v over %v s overflows the phase", errOutOfRange, p.Frequency, p.Duration)
	}
	if energy := p.Amplitude * p.Amplitude * float64(p.Samples()); math.IsInf(energy, 0) {
		return fmt.Errorf("%w: amplitude %v overflows the signal energy", errOutOfRange, p.Amplitude)
	}
	return nil
}

func (s *Server) reject(w http.ResponseWriter, r *http.Request, kind waveform.Kind, err error) {
	metrics.RequestsTotal.WithLabelValues(kind.String(), metrics.OutcomeRejected).Inc()
	s.writeError(w, r, http.StatusBadRequest, err)
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, kind waveform.Kind, err error) {
	metrics.RequestsTotal.WithLabelValues(kind.String(), metrics.OutcomeError).Inc()
	s.logger.Error("render failed",
		zap.String("requestId", RequestIDFrom(r.Context())),
		zap.Stringer("kind", kind),
		zap.Error(err),
	)
	s.writeError(w, r, http.StatusInternalServerError, errors.New("render failed"))
}

// paramsFromQuery overrides the defaults with whichever query values are set.
func paramsFromQuery(q url.Values) (waveform.Params, error) {
	var opts []waveform.Option

	floats := []struct {
		key string
		opt func(float64) waveform.Option
	}{
		{"frequency", waveform.WithFrequency},
		{"amplitude", waveform.WithAmplitude},
		{"duration", waveform.WithDuration},
	}
	for _, f := range floats {
		v := q.Get(f.key)
		if v == "" {
			continue
		}
		x, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return waveform.Params{}, fmt.Errorf("%s must be a number: %q", f.key, v)
		}
		opts = append(opts, f.opt(x))
	}

	if v := q.Get("sampling_rate"); v != "" {
		rate, err := strconv.Atoi(v)
		if err != nil {
			return waveform.Params{}, fmt.Errorf("sampling_rate must be an integer: %q", v)
		}
		opts = append(opts, waveform.WithSampleRate(rate))
	}

	return waveform.NewParams(opts...), nil
}

// writeJSON marshals v before committing status. A value that fails to encode
// is logged and answered with a 500.
func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		s.logger.Error("encode response failed",
			zap.String("requestId", RequestIDFrom(r.Context())),
			zap.Int("status", status),
			zap.Error(err),
		)
		status, body = http.StatusInternalServerError, encodeFailedBody
	} else {
		body = append(body, '\n')
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	s.writeJSON(w, r, status, map[string]string{"error": err.Error()})
}
