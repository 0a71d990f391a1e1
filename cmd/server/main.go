package main

import (
	"fmt"
	"html/template"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"storyvault/internal/board"
	"storyvault/internal/db"
	"storyvault/internal/handlers"
	"storyvault/internal/services"
	"storyvault/internal/storage"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, finding env vars from system")
	}

	// Storage: Postgres when configured, in-memory otherwise.
	var store board.PostStore
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		store = storage.NewGormStore(db.Init(dsn))
	} else {
		log.Println("DATABASE_URL not set, using in-memory store (posts are lost on restart)")
		store = storage.NewMemoryStore()
	}

	siteURL := os.Getenv("SITE_URL")
	if siteURL == "" {
		siteURL = "http://localhost:8080"
	}

	lifecycle := board.NewLifecycle(store, services.NewMailService(), board.NewTokenIssuer(), siteURL)
	validator := board.NewValidator(store)

	// Initialize Gin
	r := gin.Default()

	// Setup Sessions
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "secret_key_change_me"
	}
	sessionStore := cookie.NewStore([]byte(secret))
	r.Use(sessions.Sessions("storyvault_session", sessionStore))

	r.HTMLRender = loadTemplates("./web/templates")
	r.Static("/static", "./web/static")

	postHandler := handlers.NewPostHandler(lifecycle, validator, store)

	r.GET("/", postHandler.Index)
	r.POST("/post", postHandler.Create)
	r.GET("/post/:id/edit", postHandler.ShowEdit)
	r.POST("/post/:id/edit", postHandler.Edit)
	r.GET("/post/:id/delete", postHandler.ShowDelete)
	r.POST("/post/:id/delete", postHandler.Delete)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("StoryVault server starting on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

func loadTemplates(templatesDir string) multitemplate.Renderer {
	r := multitemplate.NewRenderer()

	layout := templatesDir + "/layouts/base.html"

	assemble := func(view string) []string {
		return []string{layout, templatesDir + view}
	}

	funcMap := template.FuncMap{
		"add": func(a, b int) int {
			return a + b
		},
		"safeHTML": func(s string) template.HTML {
			return template.HTML(s)
		},
		"timeAgo": func(t time.Time) string {
			seconds := int(time.Since(t).Seconds())
			switch {
			case seconds < 60:
				return fmt.Sprintf("%d seconds ago", seconds)
			case seconds < 3600:
				return fmt.Sprintf("%d minutes ago", seconds/60)
			case seconds < 86400:
				return fmt.Sprintf("%d hours ago", seconds/3600)
			case seconds < 2592000:
				return fmt.Sprintf("%d days ago", seconds/86400)
			case seconds < 31536000:
				return fmt.Sprintf("%d months ago", seconds/2592000)
			}
			return fmt.Sprintf("%d years ago", seconds/31536000)
		},
	}

	r.AddFromFilesFuncs("post/index.html", funcMap, assemble("/views/post/index.html")...)
	r.AddFromFilesFuncs("post/edit.html", funcMap, assemble("/views/post/edit.html")...)
	r.AddFromFilesFuncs("post/delete.html", funcMap, assemble("/views/post/delete.html")...)

	return r
}
