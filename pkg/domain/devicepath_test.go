package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/netgrid/pkg/domain"
)

func TestParseDevicePath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		segments []string
		out      string
	}{
		{"plain", "a/b/c", []string{"a", "b", "c"}, "a/b/c"},
		{"leading slash", "/main", []string{"main"}, "main"},
		{"messy slashes", "/a//b/", []string{"a", "b"}, "a/b"},
		{"empty", "", nil, ""},
		{"only slashes", "///", nil, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := domain.ParseDevicePath(tc.input)
			if tc.segments == nil {
				assert.Empty(t, p.Segments)
				assert.True(t, p.IsEmpty())
			} else {
				assert.Equal(t, tc.segments, p.Segments)
			}
			assert.Equal(t, tc.out, p.String())
		})
	}
}

func TestDevicePathRoundTrip(t *testing.T) {
	assert.Equal(t, "a/b/c", domain.ParseDevicePath("a/b/c").String())
	assert.Equal(t, "a/b", domain.ParseDevicePath("/a//b/").String())
}

func TestDevicePathEqual(t *testing.T) {
	a := domain.ParseDevicePath("main/net3")
	b := domain.ParseDevicePath("/main/net3/")
	c := domain.ParseDevicePath("main/net4")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(domain.DevicePath{}))
}
