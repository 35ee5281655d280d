package subtitles

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// tagRegex enlève le balisage embarqué (<i>, <font...>, <00:00:01.000>, etc.)
var tagRegex = regexp.MustCompile(`<[^>]+>`)

// ParseSRT parse un flux SRT et retourne les entrées dans l'ordre du fichier.
//
// Le parser est volontairement tolérant : les index manquants, les timestamps
// malformés, les fins de ligne CRLF et un BOM en tête de fichier sont acceptés.
// Les sous-titres auto-générés de YouTube convertis par yt-dlp sont loin d'être
// toujours conformes à la lettre du format.
//
// Les entrées dont le texte est vide après nettoyage sont écartées.
func ParseSRT(r io.Reader) ([]Entry, error) {
	var entries []Entry

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		cur       Entry
		textParts []string
		inBlock   bool
		first     = true
	)

	commit := func() {
		if !inBlock {
			return
		}
		text := cleanLine(strings.Join(textParts, " "))
		if text != "" {
			cur.Text = text
			entries = append(entries, cur)
		}
		cur = Entry{}
		textParts = textParts[:0]
		inBlock = false
	}

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if first {
			line = strings.TrimPrefix(line, "\uFEFF")
			first = false
		}
		trimmed := strings.TrimSpace(line)

		// ligne vide = fin du bloc courant
		if trimmed == "" {
			commit()
			continue
		}

		// ligne de timing "00:00:01,000 --> 00:00:04,000"
		if strings.Contains(trimmed, "-->") {
			inBlock = true
			start, end := parseTimeRange(trimmed)
			cur.Start, cur.End = start, end
			continue
		}

		// index de séquence : uniquement s'il précède le bloc (pas de texte accumulé)
		if !inBlock && len(textParts) == 0 {
			if n, err := strconv.Atoi(trimmed); err == nil {
				cur.Index = n
				inBlock = true
				continue
			}
			// pas un index : texte orphelin, on l'accepte quand même
			inBlock = true
		}

		textParts = append(textParts, trimmed)
	}
	commit()

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("lecture SRT : %w", err)
	}
	return entries, nil
}

// ParseSRTFile ouvre path et délègue à ParseSRT.
func ParseSRTFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ouverture du fichier de sous-titres %s : %w", path, err)
	}
	defer f.Close()
	return ParseSRT(f)
}

// cleanLine enlève le balisage et normalise les espaces.
func cleanLine(s string) string {
	s = tagRegex.ReplaceAllString(s, "")
	return normalizeWhitespace(s)
}

// normalizeWhitespace nettoie les espaces : un seul espace entre mots, aucun en début/fin
func normalizeWhitespace(s string) string {
	return strings.TrimSpace(strings.Join(strings.Fields(s), " "))
}

// parseTimeRange parse la ligne de timing. En cas de timestamp malformé on
// garde zéro : l'entrée reste exploitable, seul le texte compte au final.
func parseTimeRange(line string) (time.Duration, time.Duration) {
	parts := strings.SplitN(line, "-->", 2)
	if len(parts) != 2 {
		return 0, 0
	}
	start, _ := parseTimestamp(strings.TrimSpace(parts[0]))
	end, _ := parseTimestamp(strings.TrimSpace(parts[1]))
	return start, end
}

// parseTimestamp parse "HH:MM:SS,mmm" (la virgule SRT ; le point VTT est toléré).
func parseTimestamp(s string) (time.Duration, error) {
	s = strings.ReplaceAll(s, ",", ".")
	// certaines lignes portent des attributs après le timestamp (position, etc.)
	if i := strings.IndexByte(s, ' '); i >= 0 {
		s = s[:i]
	}

	var h, m int
	var sec float64
	if _, err := fmt.Sscanf(s, "%d:%d:%f", &h, &m, &sec); err != nil {
		return 0, fmt.Errorf("timestamp malformé %q : %w", s, err)
	}
	d := time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(sec*float64(time.Second))
	return d, nil
}
