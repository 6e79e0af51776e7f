// Package web embeds the blog submission page and its assets into the
// binary so the server ships as a single executable with no file
// dependencies at runtime.
package web

import _ "embed"

//go:embed static/index.html
var IndexHTML []byte

//go:embed static/app.js
var AppJS []byte

//go:embed static/style.css
var StyleCSS []byte
