// catsync — keeps the bot's per-language string catalogs synchronized
// with the canonical master templates.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/translation-bot/catsync/catalog"
	"github.com/translation-bot/catsync/config"
	"github.com/translation-bot/catsync/i18n"
	"github.com/translation-bot/catsync/langmeta"
	"github.com/translation-bot/catsync/ledger"
	"github.com/translation-bot/catsync/merge"
	"github.com/translation-bot/catsync/reconcile"
	"github.com/translation-bot/catsync/registry"
	"github.com/translation-bot/catsync/request"
	"github.com/translation-bot/catsync/templates"
)

// Version information (set via -ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// ANSI colors
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[0;31m"
	colorGreen  = "\033[0;32m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
)

func logInfo(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorBlue+"[INFO]"+colorReset+" "+format+"\n", args...)
}

func logSuccess(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorGreen+"[OK]"+colorReset+" "+format+"\n", args...)
}

func logWarning(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorYellow+"[WARN]"+colorReset+" "+format+"\n", args...)
}

func logError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorRed+"[ERROR]"+colorReset+" "+format+"\n", args...)
}

// ---------------------------------------------------------------------------
// Global flag
// ---------------------------------------------------------------------------

var rootDir string

// ---------------------------------------------------------------------------
// Root command
// ---------------------------------------------------------------------------

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "catsync",
		Short: "Keep chat-bot string catalogs in sync with the master templates",
		Long: `catsync — catalog synchronizer for the bot's localized responses.

Compares every language catalog against the canonical English templates,
writes batched translation request documents for an external translator
(human or LLM), and merges returned translations back after structural
validation. Existing valid translations are never rewritten.

Commands:
  status      Show per-language translation statistics
  reconcile   Compute missing keys and write translation request documents
  apply       Validate and merge translation response documents
  prune       Remove orphaned keys from catalogs (explicit, never automatic)`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global persistent flag — inherited by all subcommands
	root.PersistentFlags().StringVar(&rootDir, "root", ".", "Project root directory")

	root.AddCommand(
		newStatusCmd(),
		newReconcileCmd(),
		newApplyCmd(),
		newPruneCmd(),
		newVersionCmd(),
	)

	return root
}

func main() {
	i18n.Init("")
	if err := newRootCmd().Execute(); err != nil {
		logError("%v", err)
		os.Exit(1)
	}
}

// ---------------------------------------------------------------------------
// version (display version information)
// ---------------------------------------------------------------------------

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display version, commit hash, and build date.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("catsync version %s\n", version)
			fmt.Printf("  commit:    %s\n", commit)
			fmt.Printf("  built:     %s\n", date)
		},
	}

	return cmd
}

// ---------------------------------------------------------------------------
// Project loading
// ---------------------------------------------------------------------------

// loadProject loads configuration and builds the finalized template
// registry. A duplicate canonical key is the one fatal configuration
// error: every language's correctness depends on an unambiguous set.
func loadProject() (*config.Config, *registry.Registry, error) {
	cfg, err := config.Load(rootDir)
	if err != nil {
		return nil, nil, err
	}

	reg := registry.New()
	templates.Register(reg)

	categories := make([]string, 0, len(cfg.TemplateFiles))
	for category := range cfg.TemplateFiles {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	for _, category := range categories {
		path := cfg.TemplateFiles[category]
		if !filepath.IsAbs(path) {
			path = filepath.Join(rootDir, path)
		}
		if err := reg.LoadTOML(category, path); err != nil {
			return nil, nil, fmt.Errorf("loading template category %q: %w", category, err)
		}
	}

	if err := reg.Finalize(); err != nil {
		return nil, nil, err
	}
	return cfg, reg, nil
}

// ---------------------------------------------------------------------------
// status (read-only: per-language translation stats)
// ---------------------------------------------------------------------------

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show per-language translation statistics",
		Long: `Show the canonical template inventory and per-language translation
progress. Does not modify any files.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus()
		},
	}

	return cmd
}

func runStatus() error {
	cfg, reg, err := loadProject()
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "\n%sProject%s\n", colorBlue, colorReset)
	fmt.Fprintln(os.Stderr, strings.Repeat("─", 60))

	absRoot, _ := filepath.Abs(rootDir)
	fmt.Fprintf(os.Stderr, "  Root:       %s\n", absRoot)
	fmt.Fprintf(os.Stderr, "  Source:     %s\n", cfg.SourceLang)
	fmt.Fprintf(os.Stderr, "  Catalogs:   %s\n", cfg.CatalogDir)
	fmt.Fprintf(os.Stderr, "  Categories: %s\n", strings.Join(reg.Categories(), ", "))
	fmt.Fprintf(os.Stderr, "  Keys:       %d\n", reg.Len())
	fmt.Fprintln(os.Stderr)

	showStatsTable(cfg, reg)

	led, err := ledger.Load(rootDir)
	if err != nil {
		logWarning("Cannot read ledger: %v", err)
		return nil
	}
	if langs, keys := led.Stats(); langs > 0 {
		logInfo("Outstanding requests: %d key(s) across %d language(s)", keys, langs)
	}

	return nil
}

func showStatsTable(cfg *config.Config, reg *registry.Registry) {
	canonical := reg.AllKeys()
	total := len(canonical)
	catalogDir := filepath.Join(rootDir, cfg.CatalogDir)

	fmt.Fprintf(os.Stderr, "%sTranslation Statistics%s\n", colorBlue, colorReset)
	fmt.Fprintln(os.Stderr, strings.Repeat("─", 60))
	fmt.Fprintf(os.Stderr, "\n%-10s %-12s %-10s %-10s %-8s\n", "Lang", "Translated", "Missing", "Orphans", "Percent")
	fmt.Fprintln(os.Stderr, strings.Repeat("─", 52))

	for _, lang := range cfg.TargetLanguages() {
		cat, err := catalog.Load(catalogDir, lang)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%-10s %-12s %-10s %-10s %-8s\n", lang, "corrupt", "-", "-", "-")
			continue
		}

		res := reconcile.Reconcile(canonical, cat, cfg.ForceRetranslate)
		translated := total - len(res.Missing)
		percent := 0
		if total > 0 {
			percent = translated * 100 / total
		}

		meta := langmeta.Resolve(lang)
		fmt.Fprintf(os.Stderr, "%-10s %-12d %-10d %-10d %d%% %s\n",
			lang, translated, len(res.Missing), len(res.Orphans), percent, meta.Flag)
	}

	fmt.Fprintln(os.Stderr, strings.Repeat("─", 52))
	fmt.Fprintf(os.Stderr, "Total keys: %d\n\n", total)
}

// ---------------------------------------------------------------------------
// reconcile (compute missing keys + write request documents)
// ---------------------------------------------------------------------------

func newReconcileCmd() *cobra.Command {
	var (
		lang      string
		batchSize int
		force     string
		dryRun    bool
	)

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Compute missing keys and write translation request documents",
		Long: `Compare each language catalog against the canonical templates and
write batched translation request documents into the requests directory.

Keys on the force-retranslation list are dropped in memory first, so
they always resurface as missing; the stored catalog is untouched until
a fresh translation is merged. Orphaned keys (present in a catalog but
absent from the templates) are reported, never removed — use 'prune'.

This command is idempotent: re-running with an unchanged missing set
produces byte-identical request documents.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var extraForce []string
			if force != "" {
				extraForce = strings.Split(force, ",")
			}
			return runReconcile(lang, batchSize, extraForce, dryRun)
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "", "Restrict to one language code")
	cmd.Flags().IntVar(&batchSize, "batch-size", 0, "Max keys per request document")
	cmd.Flags().StringVar(&force, "force", "", "Extra keys to force-retranslate (comma-separated)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report only; write nothing")

	return cmd
}

func runReconcile(only string, batchSize int, extraForce []string, dryRun bool) error {
	cfg, reg, err := loadProject()
	if err != nil {
		return err
	}
	if batchSize <= 0 {
		batchSize = cfg.BatchSize
	}
	force := append(append([]string(nil), cfg.ForceRetranslate...), extraForce...)

	langs, err := targetLangs(cfg, only)
	if err != nil {
		return err
	}

	led, err := ledger.Load(rootDir)
	if err != nil {
		return err
	}

	canonical := reg.AllKeys()
	catalogDir := filepath.Join(rootDir, cfg.CatalogDir)
	requestsDir := filepath.Join(rootDir, cfg.RequestsDir)
	if !dryRun {
		if err := os.MkdirAll(requestsDir, 0755); err != nil {
			return fmt.Errorf("creating %s: %w", requestsDir, err)
		}
	}

	totalMissing, totalDocs, skipped := 0, 0, 0

	for _, lang := range langs {
		cat, err := catalog.Load(catalogDir, lang)
		if err != nil {
			// Per-language failure: report and move on.
			logError("%v", err)
			skipped++
			continue
		}

		res := reconcile.Reconcile(canonical, cat, force)

		for _, orphan := range res.Orphans {
			logWarning("%s: orphaned key %q (no template entry; 'prune' removes it)", lang, orphan)
		}

		if len(res.Missing) == 0 {
			logInfo("%s: %s", lang, i18n.T("up to date"))
			continue
		}

		docs, err := request.Build(lang, res.Missing, reg, batchSize)
		if err != nil {
			return err
		}

		if dryRun {
			logInfo("%s: %d missing key(s), %d request document(s)", lang, len(res.Missing), len(docs))
			totalMissing += len(res.Missing)
			totalDocs += len(docs)
			continue
		}

		for _, doc := range docs {
			path := filepath.Join(requestsDir, doc.Filename())
			if err := os.WriteFile(path, []byte(doc.Render()), 0644); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}
		}

		solicited := make(map[string]string, len(res.Missing))
		for _, key := range res.Missing {
			value, err := reg.Value(key)
			if err != nil {
				return err
			}
			solicited[key] = value
		}
		led.Record(lang, solicited)

		logSuccess("%s: %d missing key(s) → %d request document(s)", lang, len(res.Missing), len(docs))
		totalMissing += len(res.Missing)
		totalDocs += len(docs)
	}

	if !dryRun && totalDocs > 0 {
		if err := led.Save(); err != nil {
			return err
		}
	}

	logInfo("Summary: %d missing key(s), %d document(s), %d language(s) skipped", totalMissing, totalDocs, skipped)
	logSuccess("%s", i18n.T("Reconcile complete!"))
	return nil
}

// ---------------------------------------------------------------------------
// apply (validate + merge response documents)
// ---------------------------------------------------------------------------

func newApplyCmd() *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "apply <response.json>...",
		Short: "Validate and merge translation response documents",
		Long: `Merge externally produced translations back into the catalogs.

Each response document is a JSON object:
    {"language": "ru", "translations": {"<key>": "<translated text>"}}

Every key is validated independently: non-empty, placeholder tokens
preserved, selector cases preserved, and actually solicited by the last
'reconcile' run. Rejected keys are reported and stay missing for the
next cycle; accepted keys are written with one atomic catalog save per
response document.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(args, lang)
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "", "Language code for responses that carry none")

	return cmd
}

func runApply(paths []string, langOverride string) error {
	cfg, reg, err := loadProject()
	if err != nil {
		return err
	}

	led, err := ledger.Load(rootDir)
	if err != nil {
		return err
	}

	catalogDir := filepath.Join(rootDir, cfg.CatalogDir)
	totalAccepted, totalRejected := 0, 0

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			logError("Reading %s: %v", path, err)
			continue
		}

		resp, err := merge.ParseResponse(data)
		if err != nil {
			logError("%s: %v", path, err)
			continue
		}

		lang := resp.Language
		if lang == "" {
			lang = langOverride
		}
		if lang == "" {
			logError("%s: response carries no language; pass --lang", path)
			continue
		}
		if !cfg.IsSupported(lang) {
			logError("%s: unsupported language %q", path, lang)
			continue
		}
		if lang == cfg.SourceLang {
			logError("%s: refusing to overwrite the canonical language %q", path, lang)
			continue
		}

		cat, err := catalog.Load(catalogDir, lang)
		if err != nil {
			logError("%v", err)
			continue
		}

		solicited := led.SolicitedKeys(lang)
		rejections := dropStale(led, reg, lang, solicited, resp.Translations)

		accepted, rejected := merge.Apply(cat, reg, solicited, resp.Translations)
		rejections = append(rejections, rejected...)
		sort.Slice(rejections, func(i, j int) bool { return rejections[i].Key < rejections[j].Key })

		if len(accepted) > 0 {
			if err := cat.Save(catalogDir); err != nil {
				// Atomic replace failed; the old catalog is intact.
				logError("Saving catalog for %s: %v", lang, err)
				continue
			}
			led.ClearAccepted(lang, accepted)
		}

		logSuccess("%s (%s): %d accepted, %d rejected", path, lang, len(accepted), len(rejections))
		for _, r := range rejections {
			logWarning("  %s: %s", r.Key, r.Reason)
		}

		totalAccepted += len(accepted)
		totalRejected += len(rejections)
	}

	if err := led.Save(); err != nil {
		return err
	}

	logInfo("Summary: %d accepted, %d rejected", totalAccepted, totalRejected)
	logSuccess("%s", i18n.T("Apply complete!"))
	return nil
}

// ---------------------------------------------------------------------------
// prune (explicit orphan removal)
// ---------------------------------------------------------------------------

func newPruneCmd() *cobra.Command {
	var (
		lang   string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Remove orphaned keys from catalogs",
		Long: `Remove keys that exist in a catalog but no longer in the templates.

Orphans are never removed automatically — a missing template entry may
just be a rename in progress — so pruning is this explicit command.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrune(lang, dryRun)
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "", "Restrict to one language code")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report orphans without removing them")

	return cmd
}

func runPrune(only string, dryRun bool) error {
	cfg, reg, err := loadProject()
	if err != nil {
		return err
	}

	langs, err := targetLangs(cfg, only)
	if err != nil {
		return err
	}

	canonical := reg.AllKeys()
	catalogDir := filepath.Join(rootDir, cfg.CatalogDir)
	pruned := 0

	for _, lang := range langs {
		cat, err := catalog.Load(catalogDir, lang)
		if err != nil {
			logError("%v", err)
			continue
		}

		res := reconcile.Reconcile(canonical, cat, nil)
		if len(res.Orphans) == 0 {
			continue
		}

		if dryRun {
			logInfo("%s: would prune %d orphan(s): %s", lang, len(res.Orphans), strings.Join(res.Orphans, ", "))
			continue
		}

		for _, key := range res.Orphans {
			delete(cat.Entries, key)
		}
		if err := cat.Save(catalogDir); err != nil {
			logError("Saving catalog for %s: %v", lang, err)
			continue
		}
		logSuccess("%s: pruned %d orphan(s)", lang, len(res.Orphans))
		pruned += len(res.Orphans)
	}

	logInfo("Summary: %d orphan(s) pruned", pruned)
	logSuccess("%s", i18n.T("Prune complete!"))
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// dropStale removes solicited keys whose canonical value changed since
// the request was issued. Accepting them would pair a translation with a
// template it never saw. Each stale key is deleted from both the
// solicited set and the translations map so merge.Apply does not reject
// the same key a second time as unsolicited.
func dropStale(led *ledger.Ledger, reg *registry.Registry, lang string, solicited map[string]bool, translations map[string]string) []merge.Rejection {
	keys := make([]string, 0, len(translations))
	for key := range translations {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var rejections []merge.Rejection
	for _, key := range keys {
		if !solicited[key] {
			continue
		}
		value, err := reg.Value(key)
		if err != nil {
			continue
		}
		if led.IsStale(lang, key, value) {
			delete(solicited, key)
			delete(translations, key)
			rejections = append(rejections, merge.Rejection{Key: key, Reason: merge.ReasonStale})
		}
	}
	return rejections
}

// targetLangs resolves the language set for a command: every configured
// target, or the one named by --lang. The canonical language is never a
// target — it is never reconciled against its own templates.
func targetLangs(cfg *config.Config, only string) ([]string, error) {
	if only == "" {
		return cfg.TargetLanguages(), nil
	}
	if only == cfg.SourceLang {
		return nil, fmt.Errorf("%q is the canonical language; it is never reconciled", only)
	}
	if !cfg.IsSupported(only) {
		return nil, fmt.Errorf("unsupported language %q", only)
	}
	return []string{only}, nil
}
