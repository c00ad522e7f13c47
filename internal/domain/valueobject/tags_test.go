package valueobject_test

import (
	"testing"

	"github.com/kartinke/kartinke/internal/domain/valueobject"
)

func TestExtractTags(t *testing.T) {
	cases := []struct {
		name    string
		caption string
		want    []string
	}{
		{
			name:    "hashtags among plain words",
			caption: "nice #Sunset and #beach2024",
			want:    []string{"Sunset", "beach2024"},
		},
		{
			name:    "no hashtags",
			caption: "no tags here",
			want:    nil,
		},
		{
			name:    "empty caption",
			caption: "",
			want:    nil,
		},
		{
			name:    "hash must be the first character",
			caption: "c# is not a tag but #go is",
			want:    []string{"go"},
		},
		{
			name:    "case is preserved",
			caption: "#CamelCase #UPPER",
			want:    []string{"CamelCase", "UPPER"},
		},
		{
			name:    "unicode tags survive unchanged",
			caption: "фото #закат über #straße",
			want:    []string{"закат", "straße"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := valueobject.ExtractTags(tc.caption)
			if len(got) != len(tc.want) {
				t.Fatalf("ExtractTags(%q) = %v, want %v", tc.caption, got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("ExtractTags(%q)[%d] = %q, want %q", tc.caption, i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestJoinTags(t *testing.T) {
	if got := valueobject.JoinTags([]string{"Sunset", "beach2024"}); got != "Sunset beach2024" {
		t.Errorf("JoinTags = %q, want %q", got, "Sunset beach2024")
	}
	if got := valueobject.JoinTags(nil); got != "" {
		t.Errorf("JoinTags(nil) = %q, want empty", got)
	}
}
