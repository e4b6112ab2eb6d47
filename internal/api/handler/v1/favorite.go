package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gigguide/gigguide-api/internal/api/handler/v1/request"
	"github.com/gigguide/gigguide-api/internal/api/handler/v1/response"
	"github.com/gigguide/gigguide-api/internal/domain"
	"github.com/gigguide/gigguide-api/internal/service"
)

type FavoriteService interface {
	Add(ctx context.Context, userID uint, favType domain.FavoriteType, itemID uint) (domain.Favorite, error)
	Remove(ctx context.Context, userID uint, favType domain.FavoriteType, itemID uint) error
	Check(ctx context.Context, userID uint, favType domain.FavoriteType, itemID uint) (bool, error)
	List(ctx context.Context, userID uint, favType domain.FavoriteType) ([]domain.Favorite, error)
	ListAll(ctx context.Context, userID uint) (map[domain.FavoriteType][]domain.Favorite, error)
}

type FavoriteHandler struct {
	svc FavoriteService
}

func NewFavoriteHandler(svc FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{svc: svc}
}

// HandleAddFavorite godoc
// @Summary      Add a favorite
// @Tags         favorites
// @Produce      json
// @Param        request   body      request.FavoriteRequest true "request body"
// @Success      201  {object}  domain.Favorite
// @Failure      400  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /favorites [post]
// @Security BearerAuth
func (h *FavoriteHandler) HandleAddFavorite(ctx *gin.Context) {
	userID, req, ok := h.favoriteRequest(ctx)
	if !ok {
		return
	}

	fav, err := h.svc.Add(ctx.Request.Context(), userID, domain.FavoriteType(req.Type), req.ItemID)
	if err != nil {
		if errors.Is(err, service.ErrFavoriteExists) {
			response.RenderErr(ctx, response.ErrConflict(err))

			return
		}
		if errors.Is(err, service.ErrInvalidFavoriteType) {
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}

		err = fmt.Errorf("v1.HandleAddFavorite -> h.svc.Add -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, fav)
}

// HandleRemoveFavorite godoc
// @Summary      Remove a favorite
// @Tags         favorites
// @Produce      json
// @Param        request   body      request.FavoriteRequest true "request body"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /favorites [delete]
// @Security BearerAuth
func (h *FavoriteHandler) HandleRemoveFavorite(ctx *gin.Context) {
	userID, req, ok := h.favoriteRequest(ctx)
	if !ok {
		return
	}

	err := h.svc.Remove(ctx.Request.Context(), userID, domain.FavoriteType(req.Type), req.ItemID)
	if err != nil {
		if errors.Is(err, service.ErrFavoriteNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("favorite", "item ID", req.ItemID))

			return
		}
		if errors.Is(err, service.ErrInvalidFavoriteType) {
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}

		err = fmt.Errorf("v1.HandleRemoveFavorite -> h.svc.Remove -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "favorite removed"})
}

// HandleCheckFavorite godoc
// @Summary      Check whether an item is favorited
// @Tags         favorites
// @Produce      json
// @Param        type     query     string  true  "favorite type"
// @Param        item_id  query     int     true  "item ID"
// @Success      200  {object}  response.FavoriteStatusResponse
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /favorites/check [get]
// @Security BearerAuth
func (h *FavoriteHandler) HandleCheckFavorite(ctx *gin.Context) {
	userID, ok := getAuthUserID(ctx)
	if !ok {
		response.RenderErr(ctx, response.ErrUnauthorized())

		return
	}

	favType := domain.FavoriteType(ctx.Query("type"))
	itemID, err := strconv.ParseUint(ctx.Query("item_id"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid item_id (%v)", ctx.Query("item_id"))))

		return
	}

	exists, err := h.svc.Check(ctx.Request.Context(), userID, favType, uint(itemID))
	if err != nil {
		if errors.Is(err, service.ErrInvalidFavoriteType) {
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}

		err = fmt.Errorf("v1.HandleCheckFavorite -> h.svc.Check -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.FavoriteStatusResponse{IsFavorite: exists})
}

// HandleListFavoritesByType godoc
// @Summary      List the caller's favorites of one type
// @Tags         favorites
// @Produce      json
// @Param        type   path      string  true  "favorite type"
// @Success      200  {array}   domain.Favorite
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /favorites/{type} [get]
// @Security BearerAuth
func (h *FavoriteHandler) HandleListFavoritesByType(ctx *gin.Context) {
	userID, ok := getAuthUserID(ctx)
	if !ok {
		response.RenderErr(ctx, response.ErrUnauthorized())

		return
	}

	favType := domain.FavoriteType(ctx.Param("type"))

	favs, err := h.svc.List(ctx.Request.Context(), userID, favType)
	if err != nil {
		if errors.Is(err, service.ErrInvalidFavoriteType) {
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}

		err = fmt.Errorf("v1.HandleListFavoritesByType -> h.svc.List -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, favs)
}

// HandleListFavorites godoc
// @Summary      List all of the caller's favorites grouped by type
// @Tags         favorites
// @Produce      json
// @Success      200  {object}  map[string][]domain.Favorite
// @Failure      500  {object}  response.Err
// @Router       /favorites [get]
// @Security BearerAuth
func (h *FavoriteHandler) HandleListFavorites(ctx *gin.Context) {
	userID, ok := getAuthUserID(ctx)
	if !ok {
		response.RenderErr(ctx, response.ErrUnauthorized())

		return
	}

	all, err := h.svc.ListAll(ctx.Request.Context(), userID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListFavorites -> h.svc.ListAll -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, all)
}

func (h *FavoriteHandler) favoriteRequest(ctx *gin.Context) (uint, request.FavoriteRequest, bool) {
	userID, ok := getAuthUserID(ctx)
	if !ok {
		response.RenderErr(ctx, response.ErrUnauthorized())

		return 0, request.FavoriteRequest{}, false
	}

	var req request.FavoriteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return 0, request.FavoriteRequest{}, false
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return 0, request.FavoriteRequest{}, false
	}

	return userID, req, true
}
