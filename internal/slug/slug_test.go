package slug

import "testing"

// TestGenerate exercises the slug generator with typical catalog names,
// Turkish characters, punctuation, and boundary conditions.
func TestGenerate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		// --- Plain names ---
		{
			name:  "simple two words",
			input: "Hello World",
			want:  "hello-world",
		},
		{
			name:  "already lowercase",
			input: "already lowercase",
			want:  "already-lowercase",
		},
		{
			name:  "mixed case",
			input: "Krom Üzengi Takımı",
			want:  "krom-uzengi-takimi",
		},

		// --- Turkish category names from the seed data ---
		{
			name:  "timar ekipmanlari",
			input: "Tımar Ekipmanları",
			want:  "timar-ekipmanlari",
		},
		{
			name:  "at kosu ekipmanlari",
			input: "At Koşu Ekipmanları",
			want:  "at-kosu-ekipmanlari",
		},
		{
			name:  "at bakim ekipmanlari",
			input: "At Bakım Ekipmanları",
			want:  "at-bakim-ekipmanlari",
		},
		{
			name:  "araba ve fayton takimi",
			input: "Araba ve Fayton Takımı",
			want:  "araba-ve-fayton-takimi",
		},
		{
			name:  "capital dotted i",
			input: "İthal Gem",
			want:  "ithal-gem",
		},
		{
			name:  "all turkish special letters",
			input: "çğıöşü ÇĞİÖŞÜ",
			want:  "cgiosu-cgiosu",
		},

		// --- Accented Latin ---
		{
			name:  "french accents folded",
			input: "Café Résumé",
			want:  "cafe-resume",
		},
		{
			name:  "german umlauts folded",
			input: "Über die Brücke",
			want:  "uber-die-brucke",
		},

		// --- Special characters ---
		{
			name:  "punctuation stripped",
			input: "Gem, Dizgin & Yular!",
			want:  "gem-dizgin-yular",
		},
		{
			name:  "parentheses and numbers",
			input: "Eyer (Model 2026)",
			want:  "eyer-model-2026",
		},
		{
			name:  "single hyphen preserved",
			input: "kosum-takimi seti",
			want:  "kosum-takimi-seti",
		},

		// --- Whitespace and hyphen runs ---
		{
			name:  "surrounding whitespace trimmed",
			input: "  kapali nal seti  ",
			want:  "kapali-nal-seti",
		},
		{
			name:  "hyphen runs collapsed",
			input: "gem---klasik",
			want:  "gem-klasik",
		},
		{
			name:  "leading and trailing hyphens trimmed",
			input: "--binici--",
			want:  "binici",
		},

		// --- Edge cases ---
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "only symbols",
			input: "!@#$%",
			want:  "",
		},
		{
			name:  "only spaces",
			input: "    ",
			want:  "",
		},
		{
			name:  "digits kept",
			input: "Nal 42",
			want:  "nal-42",
		},
		{
			name:  "underscores kept for file-style names",
			input: "kapali_nal_seti",
			want:  "kapali_nal_seti",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Generate(tt.input)
			if got != tt.want {
				t.Errorf("Generate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestGenerate_Idempotent verifies that generating a slug from an already
// valid slug produces the same result.
func TestGenerate_Idempotent(t *testing.T) {
	slugs := []string{
		"kosum-takimi",
		"timar-ekipmanlari",
		"eyer",
		"nal-42",
	}

	for _, s := range slugs {
		t.Run(s, func(t *testing.T) {
			got := Generate(s)
			if got != s {
				t.Errorf("Generate(%q) = %q, want idempotent result %q", s, got, s)
			}
		})
	}
}
