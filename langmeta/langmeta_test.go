package langmeta

import "testing"

func TestResolveExactCodes(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"en", "English"},
		{"es", "Spanish"},
		{"pt", "Portuguese (Brazil)"},
		{"ptpt", "Portuguese (Portugal)"},
		{"zh", "Chinese"},
		{"ht", "Haitian Creole"},
	}
	for _, tc := range tests {
		if got := Resolve(tc.code).Name; got != tc.want {
			t.Fatalf("Resolve(%q).Name = %q, want %q", tc.code, got, tc.want)
		}
	}
}

func TestResolveVariants(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"pt_BR", "Portuguese (Brazil)"},
		{"pt-BR", "Portuguese (Brazil)"},
		{"pt-PT", "Portuguese (Portugal)"},
		{"pt_PT", "Portuguese (Portugal)"},
		{"zh-Hans", "Chinese"},
		{"EN", "English"},
		{" fr ", "French"},
	}
	for _, tc := range tests {
		if got := Resolve(tc.code).Name; got != tc.want {
			t.Fatalf("Resolve(%q).Name = %q, want %q", tc.code, got, tc.want)
		}
	}
}

func TestResolveUnknownFallsBackToCode(t *testing.T) {
	got := Resolve("xx-klingon")
	if got.Name != "xx-klingon" || got.Flag != "" {
		t.Fatalf("Resolve(xx-klingon) = %+v", got)
	}
}

func TestKnown(t *testing.T) {
	if !Known("sw") {
		t.Fatal("sw should be known")
	}
	if !Known("pt-PT") {
		t.Fatal("pt-PT should resolve to a known language")
	}
	if Known("xx-klingon") {
		t.Fatal("xx-klingon should be unknown")
	}
}

func TestRegistryEntriesComplete(t *testing.T) {
	for code, m := range Registry {
		if m.Name == "" || m.Native == "" || m.Flag == "" {
			t.Fatalf("incomplete metadata for %s: %+v", code, m)
		}
	}
}
