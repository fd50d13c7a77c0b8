// Package scaffold provides the embedded starter files written by
// "blogseed init".
package scaffold

import "embed"

// Templates contains all starter files.
// Files use Go text/template syntax and have a .tmpl suffix.
//
//go:embed all:templates
var Templates embed.FS
