package waveform

import (
	"strconv"
	"testing"
)

func BenchmarkGenerate(b *testing.B) {
	rates := []int{1000, 48000, 192000}
	for _, k := range Kinds() {
		for _, rate := range rates {
			p := NewParams(WithFrequency(440), WithSampleRate(rate))
			b.Run(k.String()+"/"+strconv.Itoa(rate), func(b *testing.B) {
				b.ReportAllocs()
				b.SetBytes(int64(rate * 16))

				for range b.N {
					if _, err := Generate(k, p); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}
