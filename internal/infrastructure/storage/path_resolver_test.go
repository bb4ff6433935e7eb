package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathResolver_Resolve(t *testing.T) {
	resolver := NewPathResolver("driveyard-media")

	tests := []struct {
		name     string
		url      string
		expected string
		ok       bool
	}{
		{
			name:     "bucket URL",
			url:      "https://storage.googleapis.com/driveyard-media/car-images/abc-123.jpg",
			expected: "car-images/abc-123.jpg",
			ok:       true,
		},
		{
			name:     "bucket URL with query string",
			url:      "https://storage.googleapis.com/driveyard-media/car-images/abc-123.jpg?alt=media&token=xyz",
			expected: "car-images/abc-123.jpg",
			ok:       true,
		},
		{
			name:     "legacy public object URL",
			url:      "https://old-host.example.com/storage/v1/object/public/car-images/legacy.png",
			expected: "car-images/legacy.png",
			ok:       true,
		},
		{
			name:     "bare object path stays unchanged",
			url:      "car-images/abc-123.jpg",
			expected: "car-images/abc-123.jpg",
			ok:       true,
		},
		{
			name:     "leading slash is trimmed",
			url:      "/car-images/abc-123.jpg",
			expected: "car-images/abc-123.jpg",
			ok:       true,
		},
		{
			name:     "foreign URL falls back to filename",
			url:      "https://cdn.example.com/photos/xyz.webp",
			expected: "xyz.webp",
			ok:       true,
		},
		{
			name: "URL without a filename is not resolved",
			url:  "https://example.com/photos/gallery",
			ok:   false,
		},
		{
			name: "empty string is not resolved",
			url:  "",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, ok := resolver.Resolve(tt.url)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, path)
		})
	}
}

func TestPathResolver_ResolveIsIdempotent(t *testing.T) {
	resolver := NewPathResolver("driveyard-media")

	urls := []string{
		"https://storage.googleapis.com/driveyard-media/car-images/a.jpg",
		"https://old-host.example.com/storage/v1/object/public/car-images/b.png",
		"car-images/c.webp",
	}

	for _, url := range urls {
		first, ok := resolver.Resolve(url)
		assert.True(t, ok, url)

		second, ok := resolver.Resolve(first)
		assert.True(t, ok, first)
		assert.Equal(t, first, second)
	}
}
