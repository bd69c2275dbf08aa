package components

import "embed"

// Assets holds the static files served under /static/: the client runtime
// script, the stylesheet, the development live-reload client, and images.
//
//go:embed assets
var Assets embed.FS

// AssetsRoot is the embedded directory prefix to strip when serving.
const AssetsRoot = "assets"
