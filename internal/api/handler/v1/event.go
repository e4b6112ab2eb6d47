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

type EventService interface {
	CreateEvent(ctx context.Context, event domain.Event, actorUserID uint) (domain.Event, error)
	ListEvents(ctx context.Context) ([]domain.Event, error)
	GetEvent(ctx context.Context, id uint) (domain.Event, error)
	ListEventsByOwner(ctx context.Context, ownerID uint, ownerType domain.OwnerType) ([]domain.Event, error)
	UpdateEvent(ctx context.Context, event domain.Event, actorUserID uint) (domain.Event, error)
	DeleteEvent(ctx context.Context, id, actorUserID uint) error
	UploadPoster(ctx context.Context, eventID uint, fh *multipart.FileHeader) (string, error)
	UploadGallery(ctx context.Context, eventID uint, files []*multipart.FileHeader) (domain.UploadResult, error)
	DeleteGalleryImage(ctx context.Context, eventID uint, imagePath string) ([]string, error)
}

type EventHandler struct {
	svc EventService
}

func NewEventHandler(svc EventService) *EventHandler {
	return &EventHandler{svc: svc}
}

// HandleCreateEvent godoc
// @Summary      Create an event
// @Description  The owner defaults to the caller's artist or organiser profile unless owner_id/owner_type name one explicitly
// @Tags         events
// @Produce      json
// @Param        request   body      request.EventRequest true "request body"
// @Success      201  {object}  domain.Event
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /events [post]
// @Security BearerAuth
func (h *EventHandler) HandleCreateEvent(ctx *gin.Context) {
	userID, ok := getAuthUserID(ctx)
	if !ok {
		response.RenderErr(ctx, response.ErrUnauthorized())

		return
	}

	var req request.EventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	event, err := req.ToDomain()
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	created, err := h.svc.CreateEvent(ctx.Request.Context(), event, userID)
	if err != nil {
		if errors.Is(err, service.ErrOwnerNotFound) || errors.Is(err, service.ErrInvalidOwner) {
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}

		err = fmt.Errorf("v1.HandleCreateEvent -> h.svc.CreateEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleListEvents godoc
// @Summary      List all events
// @Tags         events
// @Produce      json
// @Success      200  {array}   domain.Event
// @Failure      500  {object}  response.Err
// @Router       /events [get]
func (h *EventHandler) HandleListEvents(ctx *gin.Context) {
	events, err := h.svc.ListEvents(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListEvents -> h.svc.ListEvents -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, events)
}

// HandleGetEvent godoc
// @Summary      Get an event by ID
// @Tags         events
// @Produce      json
// @Param        eventID   path      int  true  "event ID"
// @Success      200  {object}  domain.Event
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /events/{eventID} [get]
func (h *EventHandler) HandleGetEvent(ctx *gin.Context) {
	eventID, ok := h.eventIDParam(ctx)
	if !ok {
		return
	}

	event, err := h.svc.GetEvent(ctx.Request.Context(), eventID)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", eventID))

			return
		}

		err = fmt.Errorf("v1.HandleGetEvent -> h.svc.GetEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, event)
}

// HandleListEventsByOwner godoc
// @Summary      List events for an owner
// @Tags         events
// @Produce      json
// @Param        ownerType   path      string  true  "artist or organiser"
// @Param        ownerID     path      int     true  "owner ID"
// @Success      200  {array}   domain.Event
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /events/owner/{ownerType}/{ownerID} [get]
func (h *EventHandler) HandleListEventsByOwner(ctx *gin.Context) {
	ownerID, ownerType, ok := ownerParams(ctx)
	if !ok {
		return
	}

	events, err := h.svc.ListEventsByOwner(ctx.Request.Context(), ownerID, ownerType)
	if err != nil {
		if errors.Is(err, service.ErrInvalidOwner) {
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}

		err = fmt.Errorf("v1.HandleListEventsByOwner -> h.svc.ListEventsByOwner -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, events)
}

// HandleUpdateEvent godoc
// @Summary      Update an event
// @Tags         events
// @Produce      json
// @Param        eventID   path      int  true  "event ID"
// @Param        request   body      request.EventRequest true "request body"
// @Success      200  {object}  domain.Event
// @Failure      400  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /events/{eventID} [put]
// @Security BearerAuth
func (h *EventHandler) HandleUpdateEvent(ctx *gin.Context) {
	eventID, ok := h.eventIDParam(ctx)
	if !ok {
		return
	}

	userID, ok := getAuthUserID(ctx)
	if !ok {
		response.RenderErr(ctx, response.ErrUnauthorized())

		return
	}

	var req request.EventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	event, err := req.ToDomain()
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}
	event.ID = eventID

	updated, err := h.svc.UpdateEvent(ctx.Request.Context(), event, userID)
	if err != nil {
		h.renderOwnedEventErr(ctx, err, eventID, "v1.HandleUpdateEvent -> h.svc.UpdateEvent")

		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteEvent godoc
// @Summary      Delete an event
// @Tags         events
// @Produce      json
// @Param        eventID   path      int  true  "event ID"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /events/{eventID} [delete]
// @Security BearerAuth
func (h *EventHandler) HandleDeleteEvent(ctx *gin.Context) {
	eventID, ok := h.eventIDParam(ctx)
	if !ok {
		return
	}

	userID, ok := getAuthUserID(ctx)
	if !ok {
		response.RenderErr(ctx, response.ErrUnauthorized())

		return
	}

	if err := h.svc.DeleteEvent(ctx.Request.Context(), eventID, userID); err != nil {
		h.renderOwnedEventErr(ctx, err, eventID, "v1.HandleDeleteEvent -> h.svc.DeleteEvent")

		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "event deleted"})
}

// HandleUploadPoster godoc
// @Summary      Upload an event poster
// @Tags         events
// @Accept       multipart/form-data
// @Produce      json
// @Param        eventID   path      int  true  "event ID"
// @Param        poster    formData  file true  "image file"
// @Success      200  {object}  response.SingleUploadResponse
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /events/{eventID}/poster [put]
// @Security BearerAuth
func (h *EventHandler) HandleUploadPoster(ctx *gin.Context) {
	eventID, ok := h.eventIDParam(ctx)
	if !ok {
		return
	}

	fh, err := ctx.FormFile("poster")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("poster file is required")))

		return
	}

	path, err := h.svc.UploadPoster(ctx.Request.Context(), eventID, fh)
	if err != nil {
		if errors.Is(err, storage.ErrFileRejected) {
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", eventID))

			return
		}

		err = fmt.Errorf("v1.HandleUploadPoster -> h.svc.UploadPoster -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.SingleUploadResponse{
		Message: "poster updated",
		Path:    path,
	})
}

// HandleUploadGallery godoc
// @Summary      Upload event gallery images
// @Tags         events
// @Accept       multipart/form-data
// @Produce      json
// @Param        eventID   path      int  true  "event ID"
// @Success      200  {object}  response.UploadResponse
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /events/{eventID}/gallery [put]
// @Security BearerAuth
func (h *EventHandler) HandleUploadGallery(ctx *gin.Context) {
	eventID, ok := h.eventIDParam(ctx)
	if !ok {
		return
	}

	files, ok := galleryFiles(ctx)
	if !ok {
		return
	}

	result, err := h.svc.UploadGallery(ctx.Request.Context(), eventID, files)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", eventID))

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
// @Summary      Delete an event gallery image
// @Tags         events
// @Produce      json
// @Param        eventID   path      int  true  "event ID"
// @Param        request   body      request.DeleteGalleryImageRequest true "request body"
// @Success      200  {object}  response.GalleryResponse
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /events/{eventID}/gallery [delete]
// @Security BearerAuth
func (h *EventHandler) HandleDeleteGalleryImage(ctx *gin.Context) {
	eventID, ok := h.eventIDParam(ctx)
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

	gallery, err := h.svc.DeleteGalleryImage(ctx.Request.Context(), eventID, req.ImagePath)
	if err != nil {
		if errors.Is(err, service.ErrMediaNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("gallery image", "path", req.ImagePath))

			return
		}
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", eventID))

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

func (h *EventHandler) eventIDParam(ctx *gin.Context) (uint, bool) {
	raw := ctx.Param("eventID")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid event ID (%v)", raw)))

		return 0, false
	}

	return uint(id), true
}

func (h *EventHandler) renderOwnedEventErr(ctx *gin.Context, err error, eventID uint, op string) {
	switch {
	case errors.Is(err, service.ErrEventNotFound):
		response.RenderErr(ctx, response.ErrNotFound("event", "ID", eventID))
	case errors.Is(err, service.ErrNotOwner):
		response.RenderErr(ctx, response.ErrForbidden(err))
	case errors.Is(err, service.ErrOwnerNotFound):
		response.RenderErr(ctx, response.ErrForbidden(err))
	default:
		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("%s -> %w", op, err)))
	}
}
