package delivery

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS lets any origin call the API; the whiteboard is served from elsewhere.
func CORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Accept"},
		MaxAge:         300,
	})
}
