package api

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the page renderer and the upload handler.
func RegisterRoutes(r gin.IRouter, page *PageHandler, upload *UploadHandler) {
	r.GET("/", page.Index)
	r.POST("/upload", upload.Upload)
}
