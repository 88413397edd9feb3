package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

func CORS(allowedOrigins []string) gin.HandlerFunc {
	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           600,
	})

	return func(ctx *gin.Context) {
		c.HandlerFunc(ctx.Writer, ctx.Request)

		// Preflight requests end here, before auth runs.
		if ctx.Request.Method == http.MethodOptions &&
			ctx.GetHeader("Access-Control-Request-Method") != "" {
			if !ctx.Writer.Written() {
				ctx.Status(http.StatusNoContent)
			}
			ctx.Abort()
			return
		}

		ctx.Next()
	}
}

// OriginChecker applies the CORS origin list to websocket upgrades.
// Requests without an Origin header come from non-browser clients and pass.
func OriginChecker(allowedOrigins []string) func(*http.Request) bool {
	c := cors.New(cors.Options{AllowedOrigins: allowedOrigins})
	return func(r *http.Request) bool {
		if r.Header.Get("Origin") == "" {
			return true
		}
		return c.OriginAllowed(r)
	}
}
