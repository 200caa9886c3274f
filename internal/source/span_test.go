package source

import (
	"testing"
)

func TestSpan_IsZero(t *testing.T) {
	tests := []struct {
		name string
		span Span
		want bool
	}{
		{name: "zero span has no location", span: Span{}, want: true},
		{name: "NoSpan is zero", span: NoSpan, want: true},
		{name: "span in a real file", span: Span{File: 1, Start: 0, End: 0}, want: false},
		{name: "offset without file is still zero-file", span: Span{File: 0, Start: 3, End: 5}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.span.IsZero(); got != tt.want {
				t.Errorf("IsZero() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSpan_Cover(t *testing.T) {
	tests := []struct {
		name     string
		span     Span
		other    Span
		expected Span
	}{
		{
			name:     "disjoint later span extends end",
			span:     Span{File: 1, Start: 10, End: 20},
			other:    Span{File: 1, Start: 30, End: 40},
			expected: Span{File: 1, Start: 10, End: 40},
		},
		{
			name:     "earlier span extends start",
			span:     Span{File: 1, Start: 10, End: 20},
			other:    Span{File: 1, Start: 2, End: 5},
			expected: Span{File: 1, Start: 2, End: 20},
		},
		{
			name:     "contained span changes nothing",
			span:     Span{File: 1, Start: 10, End: 20},
			other:    Span{File: 1, Start: 12, End: 18},
			expected: Span{File: 1, Start: 10, End: 20},
		},
		{
			name:     "different file is ignored",
			span:     Span{File: 1, Start: 10, End: 20},
			other:    Span{File: 2, Start: 0, End: 100},
			expected: Span{File: 1, Start: 10, End: 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.span.Cover(tt.other); got != tt.expected {
				t.Errorf("Cover() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestSpan_String(t *testing.T) {
	if got := (Span{File: 2, Start: 3, End: 9}).String(); got != "2:3-9" {
		t.Errorf("String() = %q", got)
	}
	if got := NoSpan.String(); got != "<no location>" {
		t.Errorf("NoSpan.String() = %q", got)
	}
}
