package api

import (
	"log"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"

	"jigsaw-gateway/internal/storage"

	"github.com/gin-gonic/gin"
)

const noImageMessage = "No image uploaded"

type UploadHandler struct {
	Store *storage.Store
}

func NewUploadHandler(store *storage.Store) *UploadHandler {
	return &UploadHandler{Store: store}
}

// Upload stores the multipart "image" field and redirects to the page showing it
func (h *UploadHandler) Upload(c *gin.Context) {
	header, err := c.FormFile("image")
	if err != nil || header.Filename == "" {
		c.String(http.StatusBadRequest, noImageMessage)
		return
	}

	file, err := header.Open()
	if err != nil {
		log.Printf("Error opening upload %q: %v", header.Filename, err)
		c.String(http.StatusInternalServerError, "Failed to read image")
		return
	}
	defer file.Close()

	filename := storage.SanitizeFilename(clientFilename(header))
	image, err := h.Store.Save(filename, file)
	if err != nil {
		log.Printf("Error saving upload [%s]: %v", c.GetString(RequestIDKey), err)
		c.String(http.StatusInternalServerError, "Failed to save image")
		return
	}

	log.Printf("Stored upload %q as %s (%d bytes)", header.Filename, image.Filename, image.Size)
	c.Redirect(http.StatusFound, "/?"+url.Values{"image": {image.Filename}}.Encode())
}

// clientFilename returns the filename exactly as the client sent it.
// multipart already strips directories from header.Filename, which would turn
// "a/b.png" into "b.png" instead of "a_b.png".
func clientFilename(header *multipart.FileHeader) string {
	_, params, err := mime.ParseMediaType(header.Header.Get("Content-Disposition"))
	if err == nil && params["filename"] != "" {
		return params["filename"]
	}
	return header.Filename
}
