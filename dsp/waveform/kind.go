package waveform

import (
	"fmt"
	"strings"
)

// Kind identifies a waveform shape.
type Kind int

const (
	KindSine Kind = iota
	KindSquare
	KindTriangle
)

var kindNames = [...]string{
	KindSine:     "sine",
	KindSquare:   "square",
	KindTriangle: "triangle",
}

// Kinds returns every supported kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindSine, KindSquare, KindTriangle}
}

// String returns the lower-case kind name.
func (k Kind) String() string {
	if !k.valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

func (k Kind) valid() bool {
	return k >= 0 && int(k) < len(kindNames)
}

// Title returns a display title such as "Sine Wave".
func (k Kind) Title() string {
	if !k.valid() {
		return "Waveform"
	}
	s := kindNames[k]
	return strings.ToUpper(s[:1]) + s[1:] + " Wave"
}

// ParseKind maps a case-insensitive name to its Kind.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown waveform kind %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.valid() {
		return nil, fmt.Errorf("unknown waveform kind: %d", int(k))
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
