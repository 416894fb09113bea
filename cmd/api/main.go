package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"

	"neuralpress/internal/handler"
	"neuralpress/pkg/news"
	"neuralpress/pkg/rank"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	apiKey := os.Getenv("NEWS_API_KEY")
	if apiKey == "" {
		slog.Warn("NEWS_API_KEY not set, every request will serve mock articles")
	}

	aiServiceURL := os.Getenv("AI_SERVICE_URL")
	if aiServiceURL == "" {
		aiServiceURL = "http://localhost:8000"
	}

	source := news.NewNewsAPIClient(apiKey, os.Getenv("NEWS_API_BASE"))
	ranker := rank.NewClient(aiServiceURL)
	newsHandler := handler.NewNewsHandler(source, ranker)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if frontendOrigin := os.Getenv("FRONTEND_ORIGIN"); frontendOrigin != "" {
		allowedOrigins = append(allowedOrigins, frontendOrigin)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/api/news", newsHandler.GetNews)
	r.POST("/api/news/rank", newsHandler.RankNews)
	r.GET("/api/health", newsHandler.GetHealth)

	if dir := os.Getenv("FRONTEND_DIR"); dir != "" {
		r.NoRoute(gin.WrapH(http.FileServer(http.Dir(dir))))
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	err := r.Run(":" + port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
