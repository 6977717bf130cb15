// Package migrations holds the schema of campaigns, route traces and
// dispatches as numbered golang-migrate files.
package migrations

import "embed"

// FS is read by db.Migrate through the iofs source driver.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version db.Migrate migrates to. Bump it with every
// new pair of files.
const Version = 2
