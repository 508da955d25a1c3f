package handlers

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/publicthrone547/inavora-chatbot/internal/chat"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded pages for gin's HTML renderer.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.html"))
}

func Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Service":    ServiceName,
		"MaxRetries": chat.MaxRetries,
	})
}
