package main

import (
	"log"
	"strings"

	"api/config"
	"api/database"
	"api/middleware"
	v1 "api/routes/v1"
	"api/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title CubeHub API
// @version 1.0
// @description Daily speedcubing challenge API: one shared scramble per day, one timed solve per user per day, rolling statistics and a ranked daily leaderboard
// @BasePath /api/v1
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	config.LoadConfig()
	gin.SetMode(config.GinMode)

	database.InitDB()
	services.InitCache()

	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	if config.AllowedOrigins == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = strings.Split(config.AllowedOrigins, ",")
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	v1.Register(r)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Start periodic collection of runtime and system metrics
	middleware.UpdateSystemMetrics()

	log.Println("Starting server on port", config.Port)
	if err := r.Run(":" + config.Port); err != nil {
		log.Fatal("failed to start server: ", err)
	}
}
