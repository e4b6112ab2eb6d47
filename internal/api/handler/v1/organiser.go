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

type OrganiserService interface {
	ListOrganisers(ctx context.Context) ([]domain.Organiser, error)
	GetOrganiser(ctx context.Context, id uint) (domain.Organiser, error)
	UpdateOrganiser(ctx context.Context, organiser domain.Organiser) (domain.Organiser, error)
	UploadLogo(ctx context.Context, organiserID uint, fh *multipart.FileHeader) (string, error)
}

type OrganiserHandler struct {
	svc OrganiserService
}

func NewOrganiserHandler(svc OrganiserService) *OrganiserHandler {
	return &OrganiserHandler{svc: svc}
}

// HandleListOrganisers godoc
// @Summary      List all organisers
// @Tags         organisers
// @Produce      json
// @Success      200  {array}   domain.Organiser
// @Failure      500  {object}  response.Err
// @Router       /organisers [get]
func (h *OrganiserHandler) HandleListOrganisers(ctx *gin.Context) {
	organisers, err := h.svc.ListOrganisers(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListOrganisers -> h.svc.ListOrganisers -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, organisers)
}

// HandleGetOrganiser godoc
// @Summary      Get an organiser by ID
// @Tags         organisers
// @Produce      json
// @Param        organiserID   path      int  true  "organiser ID"
// @Success      200  {object}  domain.Organiser
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /organisers/{organiserID} [get]
func (h *OrganiserHandler) HandleGetOrganiser(ctx *gin.Context) {
	organiserID, ok := h.organiserIDParam(ctx)
	if !ok {
		return
	}

	organiser, err := h.svc.GetOrganiser(ctx.Request.Context(), organiserID)
	if err != nil {
		if errors.Is(err, service.ErrOrganiserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("organiser", "ID", organiserID))

			return
		}

		err = fmt.Errorf("v1.HandleGetOrganiser -> h.svc.GetOrganiser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, organiser)
}

// HandleUpdateOrganiser godoc
// @Summary      Update an organiser profile
// @Tags         organisers
// @Produce      json
// @Param        organiserID   path      int  true  "organiser ID"
// @Param        request       body      request.UpdateOrganiserRequest true "request body"
// @Success      200  {object}  domain.Organiser
// @Failure      400  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /organisers/{organiserID} [put]
// @Security BearerAuth
func (h *OrganiserHandler) HandleUpdateOrganiser(ctx *gin.Context) {
	organiserID, ok := h.organiserIDParam(ctx)
	if !ok {
		return
	}

	var req request.UpdateOrganiserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	existing, ok := h.ownedOrganiser(ctx, organiserID)
	if !ok {
		return
	}

	existing.Name = coalesce(req.Name, existing.Name)
	existing.ContactEmail = coalesce(req.ContactEmail, existing.ContactEmail)
	existing.PhoneNumber = coalesce(req.PhoneNumber, existing.PhoneNumber)
	existing.Website = coalesce(req.Website, existing.Website)

	updated, err := h.svc.UpdateOrganiser(ctx.Request.Context(), existing)
	if err != nil {
		if errors.Is(err, service.ErrOrganiserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("organiser", "ID", organiserID))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateOrganiser -> h.svc.UpdateOrganiser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleUploadLogo godoc
// @Summary      Upload an organiser logo
// @Tags         organisers
// @Accept       multipart/form-data
// @Produce      json
// @Param        organiserID   path      int  true  "organiser ID"
// @Param        logo          formData  file true  "image file"
// @Success      200  {object}  response.SingleUploadResponse
// @Failure      400  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /organisers/{organiserID}/logo [put]
// @Security BearerAuth
func (h *OrganiserHandler) HandleUploadLogo(ctx *gin.Context) {
	organiserID, ok := h.organiserIDParam(ctx)
	if !ok {
		return
	}

	if _, ok = h.ownedOrganiser(ctx, organiserID); !ok {
		return
	}

	fh, err := ctx.FormFile("logo")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("logo file is required")))

		return
	}

	path, err := h.svc.UploadLogo(ctx.Request.Context(), organiserID, fh)
	if err != nil {
		if errors.Is(err, storage.ErrFileRejected) {
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}

		err = fmt.Errorf("v1.HandleUploadLogo -> h.svc.UploadLogo -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.SingleUploadResponse{
		Message: "logo updated",
		Path:    path,
	})
}

func (h *OrganiserHandler) organiserIDParam(ctx *gin.Context) (uint, bool) {
	raw := ctx.Param("organiserID")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid organiser ID (%v)", raw)))

		return 0, false
	}

	return uint(id), true
}

func (h *OrganiserHandler) ownedOrganiser(ctx *gin.Context, organiserID uint) (domain.Organiser, bool) {
	userID, ok := getAuthUserID(ctx)
	if !ok {
		response.RenderErr(ctx, response.ErrUnauthorized())

		return domain.Organiser{}, false
	}

	organiser, err := h.svc.GetOrganiser(ctx.Request.Context(), organiserID)
	if err != nil {
		if errors.Is(err, service.ErrOrganiserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("organiser", "ID", organiserID))

			return domain.Organiser{}, false
		}

		err = fmt.Errorf("v1.ownedOrganiser -> h.svc.GetOrganiser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return domain.Organiser{}, false
	}

	if organiser.UserID != userID {
		response.RenderErr(ctx, response.ErrForbidden(errNotProfileOwner))

		return domain.Organiser{}, false
	}

	return organiser, true
}
