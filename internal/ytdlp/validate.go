package ytdlp

import "regexp"

// accepte les formes complètes (watch?v=), courtes (youtu.be) et shorts
var ytRegex = regexp.MustCompile(`(?i)https?://(www\.|m\.)?(youtube\.com/(watch\?v=|shorts/)|youtu\.be/)`)

func IsYouTubeURL(s string) bool {
	return ytRegex.MatchString(s)
}
