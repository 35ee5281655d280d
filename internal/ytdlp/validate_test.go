package ytdlp

import "testing"

func TestIsYouTubeURL(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", true},
		{"http://youtube.com/watch?v=abc123", true},
		{"https://youtu.be/dQw4w9WgXcQ", true},
		{"https://m.youtube.com/watch?v=abc", true},
		{"https://www.youtube.com/shorts/abc123", true},
		{"HTTPS://YOUTU.BE/ABC", true},
		{"https://vimeo.com/12345", false},
		{"pas une url", false},
		{"", false},
	}
	for _, tc := range tests {
		if got := IsYouTubeURL(tc.url); got != tc.want {
			t.Errorf("IsYouTubeURL(%q) = %v; want %v", tc.url, got, tc.want)
		}
	}
}
