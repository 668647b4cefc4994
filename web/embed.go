package web

import (
	"embed"
	"io/fs"
)

// FS contains the embedded documentation corpus: the manifest and one HTML
// fragment per topic. The patterns are relative to this file's directory.
//
//go:embed content/manifest.yaml content/topics/*.html
var FS embed.FS

// Content returns the corpus rooted at the content directory.
func Content() fs.FS {
	sub, err := fs.Sub(FS, "content")
	if err != nil {
		// fs.Sub only fails on an invalid path literal.
		panic(err)
	}
	return sub
}
