package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"klinik-backend/internal/config"
	"klinik-backend/internal/metrics"
	"klinik-backend/internal/routes"
	"klinik-backend/pkg/utils"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file tidak ditemukan")
	}

	// 2. Setup Logger
	config.InitLogger()

	// 3. Buka store + muat state domain
	config.Init()
	defer config.Store.Close()

	// Init Firebase (opsional, no-op kalau credential tidak ada)
	utils.InitFCM()

	// 4. Init Router
	r := gin.Default()

	// 5. Setup Routes
	routes.SetupRoutes(r)

	// 6. Health check + metrics Prometheus
	r.GET("/ping", func(c *gin.Context) {
		utils.APIResponse(c, 200, true, "Server OK!", nil)
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// 7. Run Server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Info().Str("port", port).Msg("server klinik berjalan")
	if err := r.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server gagal jalan")
	}
}
