package pace

import (
	"encoding"
	"encoding/json"
	"fmt"
)

// SizeKind classifies how much a schedule knows about its own length.
type SizeKind int

const (
	Unknown  SizeKind = iota // Length unknown; the consumer bounds iteration.
	Infinite                 // Provably unbounded (Loop).
	Exact                    // Exactly Size.Len values.
)

var (
	sizeKindNames  = [...]string{Unknown: "Unknown", Infinite: "Infinite", Exact: "Exact"}
	sizeKindByName = map[string]SizeKind{
		"Unknown":  Unknown,
		"Infinite": Infinite,
		"Exact":    Exact,
	}
)

// Compile-time interface checks.
var (
	_ fmt.Stringer             = SizeKind(0)
	_ json.Marshaler           = SizeKind(0)
	_ json.Unmarshaler         = (*SizeKind)(nil)
	_ encoding.TextMarshaler   = SizeKind(0)
	_ encoding.TextUnmarshaler = (*SizeKind)(nil)
)

func (k SizeKind) isValid() bool {
	return k >= Unknown && k <= Exact
}

// String returns the name of the kind ("Unknown", "Infinite", "Exact").
// For invalid values it returns "SizeKind(n)".
func (k SizeKind) String() string {
	if k.isValid() {
		return sizeKindNames[k]
	}
	return fmt.Sprintf("SizeKind(%d)", int(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k SizeKind) MarshalText() ([]byte, error) {
	if !k.isValid() {
		return nil, fmt.Errorf("pace: invalid size kind: %d", int(k))
	}
	return []byte(sizeKindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *SizeKind) UnmarshalText(text []byte) error {
	v, ok := sizeKindByName[string(text)]
	if !ok {
		return fmt.Errorf("pace: invalid size kind: %q", text)
	}
	*k = v
	return nil
}

// MarshalJSON implements json.Marshaler. SizeKind serializes as a JSON string.
func (k SizeKind) MarshalJSON() ([]byte, error) {
	text, err := k.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON implements json.Unmarshaler. Expects a JSON string.
func (k *SizeKind) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("pace: invalid size kind: %s", data)
	}
	return k.UnmarshalText([]byte(str))
}

// Size is a schedule's length hint: unknown, infinite, or exactly Len values.
// It lets consumers of Values decide whether to bound iteration themselves.
type Size struct {
	Kind SizeKind `json:"kind"`
	Len  int      `json:"len,omitempty"` // set only when Kind == Exact
}

// UnknownSize reports an unknown length.
func UnknownSize() Size { return Size{Kind: Unknown} }

// InfiniteSize reports a provably unbounded sequence.
func InfiniteSize() Size { return Size{Kind: Infinite} }

// ExactSize reports a sequence of exactly n values.
func ExactSize(n int) Size { return Size{Kind: Exact, Len: n} }
