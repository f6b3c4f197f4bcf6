// Package web holds the embedded chat page.
package web

import _ "embed"

//go:embed index.html
var IndexHTML []byte
