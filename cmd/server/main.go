package main

import (
	"log"

	"jigsaw-gateway/internal/api"
	"jigsaw-gateway/internal/config"
	"jigsaw-gateway/internal/storage"
	"jigsaw-gateway/web"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.LoadConfig()

	store, err := storage.New(cfg.StaticDir)
	if err != nil {
		log.Fatalf("Failed to prepare upload directory: %v", err)
	}
	log.Printf("Storing uploads in %s", store.Dir)

	tmpl, err := web.Templates()
	if err != nil {
		log.Fatalf("Failed to parse templates: %v", err)
	}

	r := gin.Default()
	r.Use(api.RequestID())
	r.MaxMultipartMemory = cfg.MaxMultipartMemory
	r.SetHTMLTemplate(tmpl)
	r.Static("/static", cfg.StaticDir)

	pageHandler := api.NewPageHandler(cfg.DefaultNumPieces)
	uploadHandler := api.NewUploadHandler(store)

	api.RegisterRoutes(r, pageHandler, uploadHandler)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
