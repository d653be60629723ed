package i18n

import "testing"

func clearLocaleEnv(t *testing.T) {
	t.Helper()
	t.Setenv("LANGUAGE", "")
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "")
}

func TestDetectLanguagePriorityAndNormalization(t *testing.T) {
	t.Run("LANGUAGE has highest priority", func(t *testing.T) {
		clearLocaleEnv(t)
		t.Setenv("LANGUAGE", "ru_RU.UTF-8:en_US")
		t.Setenv("LC_ALL", "de_DE.UTF-8")

		if got := detectLanguage(); got != "ru_RU" {
			t.Fatalf("detectLanguage() = %q, want %q", got, "ru_RU")
		}
	})

	t.Run("C and POSIX are skipped", func(t *testing.T) {
		clearLocaleEnv(t)
		t.Setenv("LANGUAGE", "C")
		t.Setenv("LC_ALL", "POSIX")
		t.Setenv("LC_MESSAGES", "fr_FR.UTF-8")

		if got := detectLanguage(); got != "fr_FR" {
			t.Fatalf("detectLanguage() = %q, want %q", got, "fr_FR")
		}
	})

	t.Run("falls back to en", func(t *testing.T) {
		clearLocaleEnv(t)
		if got := detectLanguage(); got != "en" {
			t.Fatalf("detectLanguage() = %q, want %q", got, "en")
		}
	})
}

func TestTAndNFallbackWhenUninitialized(t *testing.T) {
	old := po
	po = nil
	t.Cleanup(func() { po = old })

	if got := T("Reconcile complete!"); got != "Reconcile complete!" {
		t.Fatalf("T fallback = %q, want passthrough", got)
	}

	if got := N("%d key missing", "%d keys missing", 1); got != "%d key missing" {
		t.Fatalf("N singular fallback = %q", got)
	}

	if got := N("%d key missing", "%d keys missing", 2); got != "%d keys missing" {
		t.Fatalf("N plural fallback = %q", got)
	}
}

func TestInitLoadsEmbeddedCatalog(t *testing.T) {
	old := po
	t.Cleanup(func() { po = old })

	Init("ru")
	if got := T("Reconcile complete!"); got != "Сверка завершена!" {
		t.Fatalf("T() = %q, want the embedded Russian translation", got)
	}

	// Untranslated strings pass through.
	if got := T("no such msgid"); got != "no such msgid" {
		t.Fatalf("T() = %q, want passthrough", got)
	}

	Init("es")
	if got := T("up to date"); got != "al día" {
		t.Fatalf("T() = %q, want the embedded Spanish translation", got)
	}

	Init("de")
	if got := T("Prune complete!"); got != "Bereinigung abgeschlossen!" {
		t.Fatalf("T() = %q, want the embedded German translation", got)
	}
}
