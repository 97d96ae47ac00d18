// Package web holds the embedded chat frontend.
package web

import "embed"

//go:embed static
var FS embed.FS
