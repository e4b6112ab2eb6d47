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

type RatingService interface {
	Rate(ctx context.Context, rating domain.Rating) (domain.Rating, domain.RatingAggregate, error)
	Aggregate(ctx context.Context, rateableID uint, rateableType domain.RateableType) (domain.RatingAggregate, error)
}

type RatingHandler struct {
	svc RatingService
}

func NewRatingHandler(svc RatingService) *RatingHandler {
	return &RatingHandler{svc: svc}
}

// HandleCreateRating godoc
// @Summary      Rate an artist, event, venue or organiser
// @Description  A second rating from the same user replaces the first
// @Tags         ratings
// @Produce      json
// @Param        request   body      request.RatingRequest true "request body"
// @Success      200  {object}  response.RatingResponse
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /ratings [post]
// @Security BearerAuth
func (h *RatingHandler) HandleCreateRating(ctx *gin.Context) {
	userID, ok := getAuthUserID(ctx)
	if !ok {
		response.RenderErr(ctx, response.ErrUnauthorized())

		return
	}

	var req request.RatingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	rating, agg, err := h.svc.Rate(ctx.Request.Context(), domain.Rating{
		UserID:       userID,
		RateableID:   req.RateableID,
		RateableType: domain.RateableType(req.RateableType),
		Rating:       req.Rating,
		Review:       req.Review,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidRating) || errors.Is(err, service.ErrInvalidFavoriteType) {
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}

		err = fmt.Errorf("v1.HandleCreateRating -> h.svc.Rate -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.RatingResponse{
		Rating:    rating,
		Aggregate: agg,
	})
}

// HandleGetRatings godoc
// @Summary      Get the rating aggregate for a target
// @Tags         ratings
// @Produce      json
// @Param        rateableType   path      string  true  "artist, event, venue or organiser"
// @Param        rateableID     path      int     true  "target ID"
// @Success      200  {object}  domain.RatingAggregate
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /ratings/{rateableType}/{rateableID} [get]
func (h *RatingHandler) HandleGetRatings(ctx *gin.Context) {
	rateableType := domain.RateableType(ctx.Param("rateableType"))
	raw := ctx.Param("rateableID")
	rateableID, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid rateable ID (%v)", raw)))

		return
	}

	agg, err := h.svc.Aggregate(ctx.Request.Context(), uint(rateableID), rateableType)
	if err != nil {
		if errors.Is(err, service.ErrInvalidFavoriteType) {
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}

		err = fmt.Errorf("v1.HandleGetRatings -> h.svc.Aggregate -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, agg)
}
