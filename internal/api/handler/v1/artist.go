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

var errNotProfileOwner = errors.New("profile belongs to another user")

type ArtistService interface {
	ListArtists(ctx context.Context) ([]domain.Artist, error)
	GetArtist(ctx context.Context, id uint) (domain.Artist, error)
	UpdateArtist(ctx context.Context, artist domain.Artist) (domain.Artist, error)
	UploadProfilePicture(ctx context.Context, artistID uint, fh *multipart.FileHeader) (string, error)
	UploadGallery(ctx context.Context, artistID uint, files []*multipart.FileHeader) (domain.UploadResult, error)
	DeleteGalleryImage(ctx context.Context, artistID uint, imagePath string) ([]string, error)
}

type ArtistHandler struct {
	svc ArtistService
}

func NewArtistHandler(svc ArtistService) *ArtistHandler {
	return &ArtistHandler{svc: svc}
}

// HandleListArtists godoc
// @Summary      List all artists
// @Tags         artists
// @Produce      json
// @Success      200  {array}   domain.Artist
// @Failure      500  {object}  response.Err
// @Router       /artists [get]
func (h *ArtistHandler) HandleListArtists(ctx *gin.Context) {
	artists, err := h.svc.ListArtists(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListArtists -> h.svc.ListArtists -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, artists)
}

// HandleGetArtist godoc
// @Summary      Get an artist by ID
// @Tags         artists
// @Produce      json
// @Param        artistID   path      int  true  "artist ID"
// @Success      200  {object}  domain.Artist
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /artists/{artistID} [get]
func (h *ArtistHandler) HandleGetArtist(ctx *gin.Context) {
	artistID, ok := h.artistIDParam(ctx)
	if !ok {
		return
	}

	artist, err := h.svc.GetArtist(ctx.Request.Context(), artistID)
	if err != nil {
		if errors.Is(err, service.ErrArtistNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("artist", "ID", artistID))

			return
		}

		err = fmt.Errorf("v1.HandleGetArtist -> h.svc.GetArtist -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, artist)
}

// HandleUpdateArtist godoc
// @Summary      Update an artist profile
// @Tags         artists
// @Produce      json
// @Param        artistID   path      int  true  "artist ID"
// @Param        request    body      request.UpdateArtistRequest true "request body"
// @Success      200  {object}  domain.Artist
// @Failure      400  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /artists/{artistID} [put]
// @Security BearerAuth
func (h *ArtistHandler) HandleUpdateArtist(ctx *gin.Context) {
	artistID, ok := h.artistIDParam(ctx)
	if !ok {
		return
	}

	var req request.UpdateArtistRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	existing, ok := h.ownedArtist(ctx, artistID)
	if !ok {
		return
	}

	existing.StageName = coalesce(req.StageName, existing.StageName)
	existing.RealName = coalesce(req.RealName, existing.RealName)
	existing.Genre = coalesce(req.Genre, existing.Genre)
	existing.Bio = coalesce(req.Bio, existing.Bio)
	existing.ContactEmail = coalesce(req.ContactEmail, existing.ContactEmail)
	existing.PhoneNumber = coalesce(req.PhoneNumber, existing.PhoneNumber)
	existing.Instagram = coalesce(req.Instagram, existing.Instagram)
	existing.Facebook = coalesce(req.Facebook, existing.Facebook)
	existing.Twitter = coalesce(req.Twitter, existing.Twitter)

	updated, err := h.svc.UpdateArtist(ctx.Request.Context(), existing)
	if err != nil {
		if errors.Is(err, service.ErrArtistNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("artist", "ID", artistID))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateArtist -> h.svc.UpdateArtist -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleUploadProfilePicture godoc
// @Summary      Upload an artist profile picture
// @Tags         artists
// @Accept       multipart/form-data
// @Produce      json
// @Param        artistID   path      int  true  "artist ID"
// @Param        profile_picture  formData  file  true  "image file"
// @Success      200  {object}  response.SingleUploadResponse
// @Failure      400  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /artists/{artistID}/profile-picture [put]
// @Security BearerAuth
func (h *ArtistHandler) HandleUploadProfilePicture(ctx *gin.Context) {
	artistID, ok := h.artistIDParam(ctx)
	if !ok {
		return
	}

	if _, ok = h.ownedArtist(ctx, artistID); !ok {
		return
	}

	fh, err := ctx.FormFile("profile_picture")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("profile_picture file is required")))

		return
	}

	path, err := h.svc.UploadProfilePicture(ctx.Request.Context(), artistID, fh)
	if err != nil {
		if errors.Is(err, storage.ErrFileRejected) {
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}

		err = fmt.Errorf("v1.HandleUploadProfilePicture -> h.svc.UploadProfilePicture -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.SingleUploadResponse{
		Message: "profile picture updated",
		Path:    path,
	})
}

// HandleUploadGallery godoc
// @Summary      Upload artist gallery images
// @Description  Accepts up to 10 images as gallery_images[]; valid files are stored even when others are rejected
// @Tags         artists
// @Accept       multipart/form-data
// @Produce      json
// @Param        artistID   path      int  true  "artist ID"
// @Success      200  {object}  response.UploadResponse
// @Failure      400  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /artists/{artistID}/gallery [put]
// @Security BearerAuth
func (h *ArtistHandler) HandleUploadGallery(ctx *gin.Context) {
	artistID, ok := h.artistIDParam(ctx)
	if !ok {
		return
	}

	if _, ok = h.ownedArtist(ctx, artistID); !ok {
		return
	}

	files, ok := galleryFiles(ctx)
	if !ok {
		return
	}

	result, err := h.svc.UploadGallery(ctx.Request.Context(), artistID, files)
	if err != nil {
		if errors.Is(err, service.ErrArtistNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("artist", "ID", artistID))

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
// @Summary      Delete an artist gallery image
// @Tags         artists
// @Produce      json
// @Param        artistID   path      int  true  "artist ID"
// @Param        request    body      request.DeleteGalleryImageRequest true "request body"
// @Success      200  {object}  response.GalleryResponse
// @Failure      400  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /artists/{artistID}/gallery [delete]
// @Security BearerAuth
func (h *ArtistHandler) HandleDeleteGalleryImage(ctx *gin.Context) {
	artistID, ok := h.artistIDParam(ctx)
	if !ok {
		return
	}

	if _, ok = h.ownedArtist(ctx, artistID); !ok {
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

	gallery, err := h.svc.DeleteGalleryImage(ctx.Request.Context(), artistID, req.ImagePath)
	if err != nil {
		if errors.Is(err, service.ErrMediaNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("gallery image", "path", req.ImagePath))

			return
		}
		if errors.Is(err, service.ErrArtistNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("artist", "ID", artistID))

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

func (h *ArtistHandler) artistIDParam(ctx *gin.Context) (uint, bool) {
	raw := ctx.Param("artistID")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid artist ID (%v)", raw)))

		return 0, false
	}

	return uint(id), true
}

// ownedArtist loads the artist and rejects callers that don't own the profile.
func (h *ArtistHandler) ownedArtist(ctx *gin.Context, artistID uint) (domain.Artist, bool) {
	userID, ok := getAuthUserID(ctx)
	if !ok {
		response.RenderErr(ctx, response.ErrUnauthorized())

		return domain.Artist{}, false
	}

	artist, err := h.svc.GetArtist(ctx.Request.Context(), artistID)
	if err != nil {
		if errors.Is(err, service.ErrArtistNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("artist", "ID", artistID))

			return domain.Artist{}, false
		}

		err = fmt.Errorf("v1.ownedArtist -> h.svc.GetArtist -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return domain.Artist{}, false
	}

	if artist.UserID != userID {
		response.RenderErr(ctx, response.ErrForbidden(errNotProfileOwner))

		return domain.Artist{}, false
	}

	return artist, true
}

// galleryFiles pulls gallery_images[] out of the multipart form.
func galleryFiles(ctx *gin.Context) ([]*multipart.FileHeader, bool) {
	form, err := ctx.MultipartForm()
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return nil, false
	}

	files := form.File["gallery_images[]"]
	if len(files) == 0 {
		files = form.File["gallery_images"]
	}
	if len(files) == 0 {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("no gallery_images files provided")))

		return nil, false
	}
	if len(files) > maxGalleryFiles {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("at most %d images per upload", maxGalleryFiles)))

		return nil, false
	}

	return files, true
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
