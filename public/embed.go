// Package public holds the browser client. The files are embedded so the
// server works without a public directory on disk.
package public

import "embed"

// FS contains index.html and the assets it loads.
//
//go:embed index.html game.js style.css
var FS embed.FS
