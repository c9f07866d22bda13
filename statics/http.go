package statics

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed www/*
var www embed.FS

// ServeStatics serves the embedded web console, or the files in staticsDir
// when it is set.
func ServeStatics(staticsDir string) http.HandlerFunc {
	if staticsDir != "" {
		return http.FileServer(http.Dir(staticsDir)).ServeHTTP
	}
	root, err := fs.Sub(www, "www")
	if err != nil {
		panic(err)
	}
	return http.FileServer(http.FS(root)).ServeHTTP
}
