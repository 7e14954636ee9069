package api

import (
	"net/http"
	"net/url"

	"jigsaw-gateway/internal/storage"
	"jigsaw-gateway/web"

	"github.com/gin-gonic/gin"
)

const (
	staticURLPrefix = "/static/"
	defaultImageURL = staticURLPrefix + "images/default.jpg"
	uploadsURL      = staticURLPrefix + storage.UploadsPath + "/"
)

type PageHandler struct {
	DefaultNumPieces string
}

func NewPageHandler(defaultNumPieces string) *PageHandler {
	return &PageHandler{DefaultNumPieces: defaultNumPieces}
}

// Index renders the puzzle page for the image named in ?image=, or the default asset.
// numPieces is handed to the page as-is; the front-end decides what to do with odd values.
func (h *PageHandler) Index(c *gin.Context) {
	imageName := c.Query("image")
	numPieces := c.DefaultQuery("numPieces", h.DefaultNumPieces)

	c.HTML(http.StatusOK, web.IndexTemplate, gin.H{
		"ImageURL":  ImageURL(imageName),
		"ImageName": imageName,
		"NumPieces": numPieces,
	})
}

// ImageURL maps an uploaded filename to its static URL. The name is not checked
// against the upload directory.
func ImageURL(name string) string {
	if name == "" {
		return defaultImageURL
	}
	u := url.URL{Path: uploadsURL + name}
	return u.EscapedPath()
}
