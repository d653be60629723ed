package request

import (
	"errors"
	"strings"
	"testing"

	"github.com/translation-bot/catsync/registry"
)

func testRegistry(t *testing.T, mapping map[string]string) *registry.Registry {
	t.Helper()
	r := registry.New()
	r.Register("test", mapping)
	if err := r.Finalize(); err != nil {
		t.Fatalf("Finalize() = %v", err)
	}
	return r
}

func TestBuildSortsAndBatches(t *testing.T) {
	reg := testRegistry(t, map[string]string{
		"c": "gamma", "a": "alpha", "b": "beta", "d": "delta", "e": "epsilon",
	})

	docs, err := Build("es", []string{"e", "c", "a", "d", "b"}, reg, 2)
	if err != nil {
		t.Fatalf("Build() = %v", err)
	}
	if len(docs) != 3 {
		t.Fatalf("len(docs) = %d, want 3", len(docs))
	}

	var order []string
	for i, d := range docs {
		if d.Seq != i+1 || d.Total != 3 {
			t.Fatalf("doc %d: Seq/Total = %d/%d", i, d.Seq, d.Total)
		}
		if d.Language != "es" || d.LanguageName != "Spanish" {
			t.Fatalf("doc %d: language = %s (%s)", i, d.Language, d.LanguageName)
		}
		for _, e := range d.Entries {
			order = append(order, e.Key)
		}
	}
	if got := strings.Join(order, ""); got != "abcde" {
		t.Fatalf("entry order = %q, want abcde", got)
	}
	if len(docs[2].Entries) != 1 {
		t.Fatalf("last batch size = %d, want 1", len(docs[2].Entries))
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	reg := testRegistry(t, map[string]string{
		"greeting_normal": "Hello {0}!",
		"items_normal":    "You have {1} items, {0}",
	})
	missing := []string{"items_normal", "greeting_normal"}

	first, err := Build("fr", missing, reg, DefaultBatchSize)
	if err != nil {
		t.Fatalf("Build() = %v", err)
	}
	second, err := Build("fr", missing, reg, DefaultBatchSize)
	if err != nil {
		t.Fatalf("Build() = %v", err)
	}

	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("batch counts = %d/%d, want 1/1", len(first), len(second))
	}
	if first[0].Render() != second[0].Render() {
		t.Fatal("re-run produced different document bytes")
	}
}

func TestBuildEmptyMissingSet(t *testing.T) {
	reg := testRegistry(t, map[string]string{"a": "x"})
	docs, err := Build("de", nil, reg, 10)
	if err != nil {
		t.Fatalf("Build() = %v", err)
	}
	if docs != nil {
		t.Fatalf("docs = %v, want nil", docs)
	}
}

func TestBuildUnknownKey(t *testing.T) {
	reg := testRegistry(t, map[string]string{"a": "x"})
	_, err := Build("de", []string{"a", "ghost"}, reg, 10)

	var unknown *registry.UnknownKeyError
	if !errors.As(err, &unknown) {
		t.Fatalf("error type = %T, want *UnknownKeyError", err)
	}
	if unknown.Key != "ghost" {
		t.Fatalf("unknown.Key = %q", unknown.Key)
	}
}

func TestBuildZeroBatchSizeUsesDefault(t *testing.T) {
	mapping := make(map[string]string)
	missing := make([]string, 0, DefaultBatchSize+1)
	for i := 0; i < DefaultBatchSize+1; i++ {
		key := strings.Repeat("k", i+1)
		mapping[key] = "v"
		missing = append(missing, key)
	}
	reg := testRegistry(t, mapping)

	docs, err := Build("it", missing, reg, 0)
	if err != nil {
		t.Fatalf("Build() = %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("len(docs) = %d, want 2", len(docs))
	}
	if len(docs[0].Entries) != DefaultBatchSize || len(docs[1].Entries) != 1 {
		t.Fatalf("batch sizes = %d/%d", len(docs[0].Entries), len(docs[1].Entries))
	}
}

func TestFilename(t *testing.T) {
	d := Document{Language: "ru", Seq: 7}
	if got := d.Filename(); got != "ru-007.txt" {
		t.Fatalf("Filename() = %q, want ru-007.txt", got)
	}
}

func TestRenderContents(t *testing.T) {
	reg := testRegistry(t, map[string]string{
		"greeting_normal": "Hello {0}, you have {1} items",
		"plain_normal":    "No structure here",
	})

	docs, err := Build("ja", []string{"greeting_normal", "plain_normal"}, reg, 10)
	if err != nil {
		t.Fatalf("Build() = %v", err)
	}
	out := docs[0].Render()

	for _, want := range []string{
		"Japanese (ja), batch 1/1",
		"### greeting_normal",
		"constraint: placeholders: {0} {1}",
		"source: Hello {0}, you have {1} items",
		"### plain_normal",
		"constraint: plain text",
		`{"language": "ja", "translations":`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("Render() missing %q in:\n%s", want, out)
		}
	}
}
