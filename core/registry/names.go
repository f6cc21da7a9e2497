package registry

import (
	"errors"
	"fmt"
)

// ProviderName identifies a provider as it appears on the wire.
type ProviderName string

const (
	Gemini    ProviderName = "Google Gemini"
	OpenAI    ProviderName = "OpenAI"
	Anthropic ProviderName = "Anthropic"
	Groq      ProviderName = "Groq"
)

// ProviderNames lists every supported provider in display order.
var ProviderNames = []ProviderName{Gemini, OpenAI, Anthropic, Groq}

// ErrUnsupportedProvider is returned for a provider name outside ProviderNames.
var ErrUnsupportedProvider = errors.New("unsupported provider")

// UnsupportedProviderError carries the rejected name. It matches
// ErrUnsupportedProvider with errors.Is.
type UnsupportedProviderError struct {
	Name string
}

func (e *UnsupportedProviderError) Error() string {
	return fmt.Sprintf("provider %q is not supported", e.Name)
}

func (e *UnsupportedProviderError) Unwrap() error {
	return ErrUnsupportedProvider
}

// ParseProviderName validates s against the supported names. Matching is exact.
func ParseProviderName(s string) (ProviderName, error) {
	for _, name := range ProviderNames {
		if string(name) == s {
			return name, nil
		}
	}
	return "", &UnsupportedProviderError{Name: s}
}

// LabelUnknown is the metric label for names outside ProviderNames.
const LabelUnknown = "unknown"

// MetricLabel returns s when it is a supported name and LabelUnknown
// otherwise, so arbitrary input never becomes a label value.
func MetricLabel(s string) string {
	if name, err := ParseProviderName(s); err == nil {
		return string(name)
	}
	return LabelUnknown
}

func (n ProviderName) String() string {
	return string(n)
}
