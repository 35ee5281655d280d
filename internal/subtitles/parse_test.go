package subtitles

import (
	"strings"
	"testing"
	"time"
)

func TestParseSRT_Basic(t *testing.T) {
	src := "1\n" +
		"00:00:01,000 --> 00:00:02,500\n" +
		"Hello world\n" +
		"\n" +
		"2\n" +
		"00:00:02,500 --> 00:00:04,000\n" +
		"this is\n" +
		"a test\n" +
		"\n"

	entries, err := ParseSRT(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseSRT: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2: %#v", len(entries), entries)
	}

	if entries[0].Index != 1 || entries[0].Text != "Hello world" {
		t.Errorf("entry 0 = %#v", entries[0])
	}
	if entries[0].Start != time.Second {
		t.Errorf("entry 0 start = %v; want 1s", entries[0].Start)
	}
	if entries[0].End != 2500*time.Millisecond {
		t.Errorf("entry 0 end = %v; want 2.5s", entries[0].End)
	}
	// les lignes multiples d'un même bloc sont jointes par un espace
	if entries[1].Text != "this is a test" {
		t.Errorf("entry 1 text = %q; want %q", entries[1].Text, "this is a test")
	}
}

func TestParseSRT_Tolerance(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		wantTexts []string
	}{
		{
			name:      "crlf et bom",
			in:        "\uFEFF1\r\n00:00:00,000 --> 00:00:01,000\r\nBonjour\r\n\r\n",
			wantTexts: []string{"Bonjour"},
		},
		{
			name:      "balisage html retiré",
			in:        "1\n00:00:00,000 --> 00:00:01,000\n<font color=\"red\">Hello</font> <i>there</i>\n\n",
			wantTexts: []string{"Hello there"},
		},
		{
			name:      "bloc sans index",
			in:        "00:00:00,000 --> 00:00:01,000\nsans index\n\n",
			wantTexts: []string{"sans index"},
		},
		{
			name:      "timestamp malformé conservé",
			in:        "1\nnot a timestamp --> junk\ntexte gardé\n\n",
			wantTexts: []string{"texte gardé"},
		},
		{
			name:      "espaces internes normalisés",
			in:        "1\n00:00:00,000 --> 00:00:01,000\n  trop    d'espaces  \n\n",
			wantTexts: []string{"trop d'espaces"},
		},
		{
			name:      "bloc au texte vide écarté",
			in:        "1\n00:00:00,000 --> 00:00:01,000\n<b></b>\n\n2\n00:00:01,000 --> 00:00:02,000\nok\n\n",
			wantTexts: []string{"ok"},
		},
		{
			name:      "pas de ligne vide finale",
			in:        "1\n00:00:00,000 --> 00:00:01,000\ndernier bloc",
			wantTexts: []string{"dernier bloc"},
		},
		{
			name:      "fichier vide",
			in:        "",
			wantTexts: nil,
		},
		{
			name:      "uniquement des lignes vides",
			in:        "\n\n\n",
			wantTexts: nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			entries, err := ParseSRT(strings.NewReader(tc.in))
			if err != nil {
				t.Fatalf("ParseSRT: %v", err)
			}
			if len(entries) != len(tc.wantTexts) {
				t.Fatalf("got %d entries, want %d: %#v", len(entries), len(tc.wantTexts), entries)
			}
			for i, want := range tc.wantTexts {
				if entries[i].Text != want {
					t.Errorf("entry %d text = %q; want %q", i, entries[i].Text, want)
				}
			}
		})
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"00:00:01,000", time.Second, false},
		{"00:01:05,250", time.Minute + 5*time.Second + 250*time.Millisecond, false},
		{"01:01:01,000", time.Hour + time.Minute + time.Second, false},
		{"00:00:02.000", 2 * time.Second, false}, // point VTT toléré
		{"garbage", 0, true},
	}
	for _, tc := range tests {
		got, err := parseTimestamp(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("parseTimestamp(%q): erreur attendue", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseTimestamp(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("parseTimestamp(%q) = %v; want %v", tc.in, got, tc.want)
		}
	}
}
