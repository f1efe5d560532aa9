// Package views embeds the HTML templates.
package views

import "embed"

//go:embed *.html
var FS embed.FS
