package api

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"pdfchat/web"
)

// SetupStaticRoutes serves the embedded chat frontend
func SetupStaticRoutes(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		serveStaticFile(c, "index.html")
	})
	r.GET("/static/*filepath", func(c *gin.Context) {
		path := strings.TrimPrefix(c.Param("filepath"), "/")
		if path == "" {
			path = "index.html"
		}
		serveStaticFile(c, path)
	})
}

func serveStaticFile(c *gin.Context, filename string) {
	file, err := web.FS.Open("static/" + filename)
	if err != nil {
		c.String(http.StatusNotFound, "File not found")
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to read file")
		return
	}

	contentType := "text/html; charset=utf-8"
	if strings.HasSuffix(filename, ".js") {
		contentType = "application/javascript"
	} else if strings.HasSuffix(filename, ".css") {
		contentType = "text/css"
	}

	c.Data(http.StatusOK, contentType, content)
}
