package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/ikkim/udonggeum-storefront/internal/app/view"
)

const pageKey = "page"

// Page tags the request with the page type whose renderer should run.
func Page(page view.Page) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(pageKey, page)
		c.Next()
	}
}

// GetPage returns the page tag, or view.PageNone for untagged routes.
func GetPage(c *gin.Context) view.Page {
	if v, ok := c.Get(pageKey); ok {
		if p, ok := v.(view.Page); ok {
			return p
		}
	}
	return view.PageNone
}
