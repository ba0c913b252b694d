package routes

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// Static serves the built site from dist. Prerendered pages live at
// <path>/index.html; anything else unknown falls back to the application
// shell so that client-side routing can take over.
func Static(dist string) func(c *gin.Context) {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		if strings.HasPrefix(c.Request.URL.Path, "/v1/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}

		clean := path.Clean("/" + c.Request.URL.Path)
		target := filepath.Join(dist, filepath.FromSlash(clean))

		if info, err := os.Stat(target); err == nil {
			if !info.IsDir() {
				c.File(target)
				return
			}
			index := filepath.Join(target, "index.html")
			if _, err := os.Stat(index); err == nil {
				c.File(index)
				return
			}
		}
		c.File(filepath.Join(dist, "index.html"))
	}
}
