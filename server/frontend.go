package server

import (
	"net/http"
	"net/http/httputil"
	"net/url"
	"path"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// staticHandler serves files from dir and answers every other GET with
// dir/index.html so client-side routes resolve.
func staticHandler(dir string) gin.HandlerFunc {
	root := http.Dir(dir)
	files := http.FileServer(root)
	index := filepath.Join(dir, "index.html")

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not Found"})
			return
		}

		if f, err := root.Open(path.Clean("/" + c.Request.URL.Path)); err == nil {
			info, statErr := f.Stat()
			_ = f.Close()
			if statErr == nil && !info.IsDir() {
				files.ServeHTTP(c.Writer, c.Request)
				return
			}
		}

		c.File(index)
	}
}

// devProxyHandler forwards unknown routes to the frontend dev server.
func devProxyHandler(target *url.URL) gin.HandlerFunc {
	proxy := httputil.NewSingleHostReverseProxy(target)
	return func(c *gin.Context) {
		proxy.ServeHTTP(c.Writer, c.Request)
	}
}
