package v1

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gigguide/gigguide-api/internal/api/handler/v1/request"
	"github.com/gigguide/gigguide-api/internal/api/handler/v1/response"
	"github.com/gigguide/gigguide-api/internal/domain"
	"github.com/gigguide/gigguide-api/internal/service"
	"github.com/gigguide/gigguide-api/internal/storage"
)

type VenueService interface {
	CreateVenue(ctx context.Context, venue domain.Venue, actorUserID uint) (domain.Venue, error)
	ListVenues(ctx context.Context) ([]domain.Venue, error)
	GetVenue(ctx context.Context, id uint) (domain.Venue, error)
	ListVenuesByOwner(ctx context.Context, ownerID uint, ownerType domain.OwnerType) ([]domain.Venue, error)
	UpdateVenue(ctx context.Context, venue domain.Venue, actorUserID uint) (domain.Venue, error)
	DeleteVenue(ctx context.Context, id, actorUserID uint) error
	UploadMainPicture(ctx context.Context, venueID uint, fh *multipart.FileHeader) (string, error)
	UploadGallery(ctx context.Context, venueID uint, files []*multipart.FileHeader) (domain.UploadResult, error)
	DeleteGalleryImage(ctx context.Context, venueID uint, imagePath string) ([]string, error)
}

type VenueHandler struct {
	svc VenueService
}

func NewVenueHandler(svc VenueService) *VenueHandler {
	return &VenueHandler{svc: svc}
}

// HandleCreateVenue godoc
// @Summary      Create a venue
// @Description  The owner defaults to the caller's artist or organiser profile unless owner_id/owner_type name one explicitly
// @Tags         venues
// @Produce      json
// @Param        request   body      request.VenueRequest true "request body"
// @Success      201  {object}  domain.Venue
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /venues [post]
// @Security BearerAuth
func (h *VenueHandler) HandleCreateVenue(ctx *gin.Context) {
	userID, ok := getAuthUserID(ctx)
	if !ok {
		response.RenderErr(ctx, response.ErrUnauthorized())

		return
	}

	var req request.VenueRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	venue, err := h.svc.CreateVenue(ctx.Request.Context(), req.ToDomain(), userID)
	if err != nil {
		if errors.Is(err, service.ErrOwnerNotFound) || errors.Is(err, service.ErrInvalidOwner) {
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}

		err = fmt.Errorf("v1.HandleCreateVenue -> h.svc.CreateVenue -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, venue)
}

// HandleListVenues godoc
// @Summary      List all venues
// @Tags         venues
// @Produce      json
// @Success      200  {array}   domain.Venue
// @Failure      500  {object}  response.Err
// @Router       /venues [get]
func (h *VenueHandler) HandleListVenues(ctx *gin.Context) {
	venues, err := h.svc.ListVenues(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListVenues -> h.svc.ListVenues -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, venues)
}

// HandleGetVenue godoc
// @Summary      Get a venue by ID
// @Tags         venues
// @Produce      json
// @Param        venueID   path      int  true  "venue ID"
// @Success      200  {object}  domain.Venue
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /venues/{venueID} [get]
func (h *VenueHandler) HandleGetVenue(ctx *gin.Context) {
	venueID, ok := h.venueIDParam(ctx)
	if !ok {
		return
	}

	venue, err := h.svc.GetVenue(ctx.Request.Context(), venueID)
	if err != nil {
		if errors.Is(err, service.ErrVenueNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("venue", "ID", venueID))

			return
		}

		err = fmt.Errorf("v1.HandleGetVenue -> h.svc.GetVenue -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, venue)
}

// HandleListVenuesByOwner godoc
// @Summary      List venues for an owner
// @Tags         venues
// @Produce      json
// @Param        ownerType   path      string  true  "artist or organiser"
// @Param        ownerID     path      int     true  "owner ID"
// @Success      200  {array}   domain.Venue
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /venues/owner/{ownerType}/{ownerID} [get]
func (h *VenueHandler) HandleListVenuesByOwner(ctx *gin.Context) {
	ownerID, ownerType, ok := ownerParams(ctx)
	if !ok {
		return
	}

	venues, err := h.svc.ListVenuesByOwner(ctx.Request.Context(), ownerID, ownerType)
	if err != nil {
		if errors.Is(err, service.ErrInvalidOwner) {
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}

		err = fmt.Errorf("v1.HandleListVenuesByOwner -> h.svc.ListVenuesByOwner -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, venues)
}

// HandleUpdateVenue godoc
// @Summary      Update a venue
// @Tags         venues
// @Produce      json
// @Param        venueID   path      int  true  "venue ID"
// @Param        request   body      request.VenueRequest true "request body"
// @Success      200  {object}  domain.Venue
// @Failure      400  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /venues/{venueID} [put]
// @Security BearerAuth
func (h *VenueHandler) HandleUpdateVenue(ctx *gin.Context) {
	venueID, ok := h.venueIDParam(ctx)
	if !ok {
		return
	}

	userID, ok := getAuthUserID(ctx)
	if !ok {
		response.RenderErr(ctx, response.ErrUnauthorized())

		return
	}

	var req request.VenueRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	venue := req.ToDomain()
	venue.ID = venueID

	updated, err := h.svc.UpdateVenue(ctx.Request.Context(), venue, userID)
	if err != nil {
		h.renderOwnedVenueErr(ctx, err, venueID, "v1.HandleUpdateVenue -> h.svc.UpdateVenue")

		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteVenue godoc
// @Summary      Delete a venue
// @Tags         venues
// @Produce      json
// @Param        venueID   path      int  true  "venue ID"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /venues/{venueID} [delete]
// @Security BearerAuth
func (h *VenueHandler) HandleDeleteVenue(ctx *gin.Context) {
	venueID, ok := h.venueIDParam(ctx)
	if !ok {
		return
	}

	userID, ok := getAuthUserID(ctx)
	if !ok {
		response.RenderErr(ctx, response.ErrUnauthorized())

		return
	}

	if err := h.svc.DeleteVenue(ctx.Request.Context(), venueID, userID); err != nil {
		h.renderOwnedVenueErr(ctx, err, venueID, "v1.HandleDeleteVenue -> h.svc.DeleteVenue")

		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "venue deleted"})
}

// HandleUploadMainPicture godoc
// @Summary      Upload a venue main picture
// @Tags         venues
// @Accept       multipart/form-data
// @Produce      json
// @Param        venueID       path      int  true  "venue ID"
// @Param        main_picture  formData  file true  "image file"
// @Success      200  {object}  response.SingleUploadResponse
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /venues/{venueID}/main-picture [put]
// @Security BearerAuth
func (h *VenueHandler) HandleUploadMainPicture(ctx *gin.Context) {
	venueID, ok := h.venueIDParam(ctx)
	if !ok {
		return
	}

	fh, err := ctx.FormFile("main_picture")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("main_picture file is required")))

		return
	}

	path, err := h.svc.UploadMainPicture(ctx.Request.Context(), venueID, fh)
	if err != nil {
		if errors.Is(err, storage.ErrFileRejected) {
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}
		if errors.Is(err, service.ErrVenueNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("venue", "ID", venueID))

			return
		}

		err = fmt.Errorf("v1.HandleUploadMainPicture -> h.svc.UploadMainPicture -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.SingleUploadResponse{
		Message: "main picture updated",
		Path:    path,
	})
}

// HandleUploadGallery godoc
// @Summary      Upload venue gallery images
// @Tags         venues
// @Accept       multipart/form-data
// @Produce      json
// @Param        venueID   path      int  true  "venue ID"
// @Success      200  {object}  response.UploadResponse
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /venues/{venueID}/gallery [put]
// @Security BearerAuth
func (h *VenueHandler) HandleUploadGallery(ctx *gin.Context) {
	venueID, ok := h.venueIDParam(ctx)
	if !ok {
		return
	}

	files, ok := galleryFiles(ctx)
	if !ok {
		return
	}

	result, err := h.svc.UploadGallery(ctx.Request.Context(), venueID, files)
	if err != nil {
		if errors.Is(err, service.ErrVenueNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("venue", "ID", venueID))

			return
		}

		err = fmt.Errorf("v1.HandleUploadGallery -> h.svc.UploadGallery -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.UploadResponse{
		Message:  "gallery updated",
		Uploaded: result.Accepted,
		Rejected: result.Rejected,
		Gallery:  result.Gallery,
	})
}

// HandleDeleteGalleryImage godoc
// @Summary      Delete a venue gallery image
// @Tags         venues
// @Produce      json
// @Param        venueID   path      int  true  "venue ID"
// @Param        request   body      request.DeleteGalleryImageRequest true "request body"
// @Success      200  {object}  response.GalleryResponse
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /venues/{venueID}/gallery [delete]
// @Security BearerAuth
func (h *VenueHandler) HandleDeleteGalleryImage(ctx *gin.Context) {
	venueID, ok := h.venueIDParam(ctx)
	if !ok {
		return
	}

	var req request.DeleteGalleryImageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	gallery, err := h.svc.DeleteGalleryImage(ctx.Request.Context(), venueID, req.ImagePath)
	if err != nil {
		if errors.Is(err, service.ErrMediaNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("gallery image", "path", req.ImagePath))

			return
		}
		if errors.Is(err, service.ErrVenueNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("venue", "ID", venueID))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteGalleryImage -> h.svc.DeleteGalleryImage -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.GalleryResponse{
		Message: "gallery image deleted",
		Gallery: gallery,
	})
}

func (h *VenueHandler) venueIDParam(ctx *gin.Context) (uint, bool) {
	raw := ctx.Param("venueID")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid venue ID (%v)", raw)))

		return 0, false
	}

	return uint(id), true
}

func (h *VenueHandler) renderOwnedVenueErr(ctx *gin.Context, err error, venueID uint, op string) {
	switch {
	case errors.Is(err, service.ErrVenueNotFound):
		response.RenderErr(ctx, response.ErrNotFound("venue", "ID", venueID))
	case errors.Is(err, service.ErrNotOwner):
		response.RenderErr(ctx, response.ErrForbidden(err))
	case errors.Is(err, service.ErrOwnerNotFound):
		response.RenderErr(ctx, response.ErrForbidden(err))
	default:
		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("%s -> %w", op, err)))
	}
}

// ownerParams parses the :ownerType/:ownerID pair used by owner-scoped listings.
func ownerParams(ctx *gin.Context) (uint, domain.OwnerType, bool) {
	ownerType := domain.OwnerType(ctx.Param("ownerType"))
	if !ownerType.Valid() {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid owner type (%v)", ctx.Param("ownerType"))))

		return 0, "", false
	}

	raw := ctx.Param("ownerID")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid owner ID (%v)", raw)))

		return 0, "", false
	}

	return uint(id), ownerType, true
}
