// Package migrations embeds the goose SQL migrations for the trip planner
// schema: hotel stays, checklist items and checks, cached AI suggestions and
// preferences.
package migrations

import "embed"

// FS holds every *.sql migration. cmd/api applies it on start through a
// goose.Provider, and the repository tests apply it in TestMain.
//
//go:embed *.sql
var FS embed.FS
