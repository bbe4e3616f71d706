package middleware

import (
	"context"

	"github.com/billfold/billfold/internal/types"
	"github.com/gin-gonic/gin"
)

func RequestIDMiddleware(c *gin.Context) {
	ctx := c.Request.Context()

	requestID := c.GetHeader(types.HeaderRequestID)
	if requestID == "" {
		requestID = types.GenerateUUIDWithPrefix(types.UUID_PREFIX_REQUEST)
	}

	ctx = context.WithValue(ctx, types.CtxRequestID, requestID)
	c.Request = c.Request.WithContext(ctx)

	// Add headers for response
	c.Header(types.HeaderRequestID, requestID)

	c.Next()
}
