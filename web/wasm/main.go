//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/cwbudde/phaseline/dsp/waveform"
	"github.com/cwbudde/phaseline/render"
)

var funcs []js.Func

func main() {
	api := js.Global().Get("Object").New()

	api.Set("kinds", export(func(_ []js.Value) any {
		kinds := waveform.Kinds()
		out := make([]any, len(kinds))
		for i, k := range kinds {
			out[i] = k.String()
		}
		return js.ValueOf(out)
	}))

	// generate(kind, {frequency, amplitude, duration, samplingRate}) returns
	// {time: Float64Array, amplitude: Float64Array} or an error string.
	api.Set("generate", export(func(args []js.Value) any {
		if len(args) < 1 {
			return "generate requires a waveform kind"
		}
		kind, err := waveform.ParseKind(args[0].String())
		if err != nil {
			return err.Error()
		}

		p := waveform.DefaultParams()
		if len(args) > 1 && args[1].Type() == js.TypeObject {
			p = paramsFrom(args[1], p)
		}
		if err := p.Validate(); err != nil {
			return err.Error()
		}

		w, err := waveform.Generate(kind, p)
		if err != nil {
			return err.Error()
		}
		s := render.NewSeries(w)

		out := js.Global().Get("Object").New()
		out.Set("time", float64Array(s.Time))
		out.Set("amplitude", float64Array(s.Amplitude))
		return out
	}))

	js.Global().Set("Phaseline", api)
	select {}
}

func paramsFrom(obj js.Value, p waveform.Params) waveform.Params {
	if v := obj.Get("frequency"); v.Type() == js.TypeNumber {
		p.Frequency = v.Float()
	}
	if v := obj.Get("amplitude"); v.Type() == js.TypeNumber {
		p.Amplitude = v.Float()
	}
	if v := obj.Get("duration"); v.Type() == js.TypeNumber {
		p.Duration = v.Float()
	}
	if v := obj.Get("samplingRate"); v.Type() == js.TypeNumber {
		p.SampleRate = v.Int()
	}
	return p
}

func float64Array(x []float64) js.Value {
	arr := js.Global().Get("Float64Array").New(len(x))
	for i, v := range x {
		arr.SetIndex(i, v)
	}
	return arr
}

func export(fn func([]js.Value) any) js.Func {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		return fn(args)
	})
	funcs = append(funcs, f)
	return f
}
