// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// RequestObserver records served HTTP requests.
type RequestObserver interface {
	ObserveRequest(method, route string, status int, duration time.Duration)
}

// Metrics returns a Gin middleware that records every request by route template.
func Metrics(observer RequestObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		observer.ObserveRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
