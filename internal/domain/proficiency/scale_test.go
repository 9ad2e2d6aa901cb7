package proficiency

import "testing"

func TestScore_KnownLevels(t *testing.T) {
	cases := []struct {
		level string
		want  int
	}{
		{"none", 0},
		{"aware", 1},
		{"beginner", 2},
		{"intermediate", 3},
		{"advanced", 4},
		{"expert", 5},
		{"master", 5},
	}
	for _, tc := range cases {
		if got := Score(tc.level, -1); got != tc.want {
			t.Errorf("Score(%q) = %d, want %d", tc.level, got, tc.want)
		}
	}
}

func TestScore_CaseInsensitive(t *testing.T) {
	if got := Score("Advanced", -1); got != 4 {
		t.Fatalf("Score(Advanced) = %d, want 4", got)
	}
	if got := Score("  EXPERT  ", -1); got != 5 {
		t.Fatalf("Score(EXPERT) = %d, want 5", got)
	}
}

func TestScore_UnknownFallsBack(t *testing.T) {
	if got := Score("wizard", 0); got != 0 {
		t.Fatalf("Score(wizard, 0) = %d, want 0", got)
	}
	if got := Score("", IntermediateScore); got != IntermediateScore {
		t.Fatalf("Score(empty, 3) = %d, want 3", got)
	}
}

func TestKnown(t *testing.T) {
	if !Known("Master") {
		t.Fatalf("expected master to be known")
	}
	if Known("ninja") {
		t.Fatalf("expected ninja to be unknown")
	}
}
