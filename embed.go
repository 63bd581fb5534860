package convcalc

import "embed"

// EmbeddedAssets contains static assets shipped with the server:
// convcalc.css, converter.js and site.js.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
