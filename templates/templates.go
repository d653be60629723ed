// Package templates holds the built-in master (English) message tables
// for the bot, split by category. The tables are the source of truth:
// a key present here must exist in every language catalog.
//
// The tables are registered through registry.Register so cross-category
// key conflicts surface at startup instead of silently shadowing.
package templates

import "github.com/translation-bot/catsync/registry"

// CategoryAdmin names the admin-command response table.
const CategoryAdmin = "admin"

// CategoryGeneral names the general UI response table.
const CategoryGeneral = "general"

// Register adds all built-in categories to the registry. The caller
// still owns Finalize.
func Register(r *registry.Registry) {
	r.Register(CategoryAdmin, AdminStrings)
	r.Register(CategoryGeneral, GeneralUIStrings)
}
