package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gigguide/gigguide-api/internal/api/handler/v1/response"
	"github.com/gigguide/gigguide-api/internal/domain"
)

type AclService interface {
	Roles(ctx context.Context) ([]domain.AclTrust, error)
}

type AclHandler struct {
	svc AclService
}

func NewAclHandler(svc AclService) *AclHandler {
	return &AclHandler{svc: svc}
}

// HandleListRoles godoc
// @Summary      List the role catalog
// @Tags         acl
// @Produce      json
// @Success      200  {array}   domain.AclTrust
// @Failure      500  {object}  response.Err
// @Router       /acl/roles [get]
func (h *AclHandler) HandleListRoles(ctx *gin.Context) {
	roles, err := h.svc.Roles(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListRoles -> h.svc.Roles -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, roles)
}
