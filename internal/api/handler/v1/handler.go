package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/gigguide/gigguide-api/internal/api/middleware"
)

// maxGalleryFiles caps a single multipart gallery upload.
const maxGalleryFiles = 10

// getAuthUserID reads the user ID the JWT middleware stored on the context.
func getAuthUserID(ctx *gin.Context) (uint, bool) {
	v, ok := ctx.Get(middleware.ContextKeyUserID)
	if !ok {
		return 0, false
	}

	userID, ok := v.(uint)

	return userID, ok
}
