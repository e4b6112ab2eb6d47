package api

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/gigguide/gigguide-api/docs"
	v1 "github.com/gigguide/gigguide-api/internal/api/handler/v1"
	"github.com/gigguide/gigguide-api/internal/api/middleware"
	"github.com/gigguide/gigguide-api/internal/config"
	"github.com/gigguide/gigguide-api/internal/pkg/rolecache"
	"github.com/gigguide/gigguide-api/internal/repository"
	"github.com/gigguide/gigguide-api/internal/repository/dao"
	"github.com/gigguide/gigguide-api/internal/service"
	"github.com/gigguide/gigguide-api/internal/storage"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine

	store  *storage.Store
	aclSvc *service.AclService
}

func NewServer(conf *config.AppConfig, db *gorm.DB) (*Server, error) {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	if err := dao.InitTables(db); err != nil {
		return nil, fmt.Errorf("dao.InitTables -> %w", err)
	}

	store, err := storage.New(conf.Storage.BasePath)
	if err != nil {
		return nil, fmt.Errorf("storage.New -> %w", err)
	}

	s := &Server{
		Config: conf,
		Router: engine,
		store:  store,
	}

	s.MountMiddlewares()

	ownerSvc := s.initOwnerService(db)
	authHandler := s.initAuthHandler(db)
	artistHandler := s.initArtistHandler(db, ownerSvc)
	organiserHandler := s.initOrganiserHandler(db, ownerSvc)
	venueHandler := s.initVenueHandler(db, ownerSvc)
	eventHandler := s.initEventHandler(db, ownerSvc)
	favoriteHandler := s.initFavoriteHandler(db)
	ratingHandler := s.initRatingHandler(db)
	aclHandler := s.initAclHandler(db)
	s.MountHandlers(authHandler, artistHandler, organiserHandler, venueHandler, eventHandler, favoriteHandler, ratingHandler, aclHandler)

	return s, nil
}

// Close releases background resources. Safe to call more than once.
func (s *Server) Close() {
	if s.aclSvc != nil {
		s.aclSvc.Stop()
	}
}

func (s *Server) initOwnerService(db *gorm.DB) *service.OwnerService {
	ownerDAO := dao.NewOwnerDAO(db)
	repo := repository.NewOwnerRepository(ownerDAO)

	return service.NewOwnerService(repo, s.store)
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewAuthService(repo, s.store)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initArtistHandler(db *gorm.DB, ownerSvc *service.OwnerService) *v1.ArtistHandler {
	ownerDAO := dao.NewOwnerDAO(db)
	repo := repository.NewOwnerRepository(ownerDAO)
	svc := service.NewArtistService(repo, ownerSvc, s.store)
	handler := v1.NewArtistHandler(svc)

	return handler
}

func (s *Server) initOrganiserHandler(db *gorm.DB, ownerSvc *service.OwnerService) *v1.OrganiserHandler {
	ownerDAO := dao.NewOwnerDAO(db)
	repo := repository.NewOwnerRepository(ownerDAO)
	svc := service.NewOrganiserService(repo, ownerSvc, s.store)
	handler := v1.NewOrganiserHandler(svc)

	return handler
}

func (s *Server) initVenueHandler(db *gorm.DB, ownerSvc *service.OwnerService) *v1.VenueHandler {
	venueDAO := dao.NewVenueDAO(db)
	repo := repository.NewVenueRepository(venueDAO)
	svc := service.NewVenueService(repo, ownerSvc, s.store)
	handler := v1.NewVenueHandler(svc)

	return handler
}

func (s *Server) initEventHandler(db *gorm.DB, ownerSvc *service.OwnerService) *v1.EventHandler {
	eventDAO := dao.NewEventDAO(db)
	repo := repository.NewEventRepository(eventDAO)
	svc := service.NewEventService(repo, ownerSvc, s.store)
	handler := v1.NewEventHandler(svc)

	return handler
}

func (s *Server) initFavoriteHandler(db *gorm.DB) *v1.FavoriteHandler {
	favoriteDAO := dao.NewFavoriteDAO(db)
	repo := repository.NewFavoriteRepository(favoriteDAO)
	svc := service.NewFavoriteService(repo)
	handler := v1.NewFavoriteHandler(svc)

	return handler
}

func (s *Server) initRatingHandler(db *gorm.DB) *v1.RatingHandler {
	ratingDAO := dao.NewRatingDAO(db)
	repo := repository.NewRatingRepository(ratingDAO)
	svc := service.NewRatingService(repo)
	handler := v1.NewRatingHandler(svc)

	return handler
}

func (s *Server) initAclHandler(db *gorm.DB) *v1.AclHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)

	ttl := time.Duration(s.Config.Cache.RoleTTLMinutes) * time.Minute
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	s.aclSvc = service.NewAclService(repo, rolecache.New(ttl))
	handler := v1.NewAclHandler(s.aclSvc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	artistHandler *v1.ArtistHandler,
	organiserHandler *v1.OrganiserHandler,
	venueHandler *v1.VenueHandler,
	eventHandler *v1.EventHandler,
	favoriteHandler *v1.FavoriteHandler,
	ratingHandler *v1.RatingHandler,
	aclHandler *v1.AclHandler,
) {
	const basePath = "/api/v1"

	public := s.Router.Group(basePath)
	{
		public.POST("/auth/register", authHandler.HandleRegister)
		public.POST("/auth/login", authHandler.HandleLogin)

		public.GET("/artists", artistHandler.HandleListArtists)
		public.GET("/artists/:artistID", artistHandler.HandleGetArtist)
		public.GET("/organisers", organiserHandler.HandleListOrganisers)
		public.GET("/organisers/:organiserID", organiserHandler.HandleGetOrganiser)

		public.GET("/venues", venueHandler.HandleListVenues)
		public.GET("/venues/:venueID", venueHandler.HandleGetVenue)
		public.GET("/venues/owner/:ownerType/:ownerID", venueHandler.HandleListVenuesByOwner)
		public.GET("/events", eventHandler.HandleListEvents)
		public.GET("/events/:eventID", eventHandler.HandleGetEvent)
		public.GET("/events/owner/:ownerType/:ownerID", eventHandler.HandleListEventsByOwner)

		public.GET("/ratings/:rateableType/:rateableID", ratingHandler.HandleGetRatings)
		public.GET("/acl/roles", aclHandler.HandleListRoles)
	}

	authed := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		authed.PUT("/artists/:artistID", artistHandler.HandleUpdateArtist)
		authed.PUT("/artists/:artistID/profile-picture", artistHandler.HandleUploadProfilePicture)
		authed.PUT("/artists/:artistID/gallery", artistHandler.HandleUploadGallery)
		authed.DELETE("/artists/:artistID/gallery", artistHandler.HandleDeleteGalleryImage)

		authed.PUT("/organisers/:organiserID", organiserHandler.HandleUpdateOrganiser)
		authed.PUT("/organisers/:organiserID/logo", organiserHandler.HandleUploadLogo)

		authed.POST("/venues", venueHandler.HandleCreateVenue)
		authed.PUT("/venues/:venueID", venueHandler.HandleUpdateVenue)
		authed.DELETE("/venues/:venueID", venueHandler.HandleDeleteVenue)
		authed.PUT("/venues/:venueID/main-picture", venueHandler.HandleUploadMainPicture)
		authed.PUT("/venues/:venueID/gallery", venueHandler.HandleUploadGallery)
		authed.DELETE("/venues/:venueID/gallery", venueHandler.HandleDeleteGalleryImage)

		authed.POST("/events", eventHandler.HandleCreateEvent)
		authed.PUT("/events/:eventID", eventHandler.HandleUpdateEvent)
		authed.DELETE("/events/:eventID", eventHandler.HandleDeleteEvent)
		authed.PUT("/events/:eventID/poster", eventHandler.HandleUploadPoster)
		authed.PUT("/events/:eventID/gallery", eventHandler.HandleUploadGallery)
		authed.DELETE("/events/:eventID/gallery", eventHandler.HandleDeleteGalleryImage)

		authed.POST("/favorites", favoriteHandler.HandleAddFavorite)
		authed.DELETE("/favorites", favoriteHandler.HandleRemoveFavorite)
		authed.GET("/favorites/check", favoriteHandler.HandleCheckFavorite)
		authed.GET("/favorites/:type", favoriteHandler.HandleListFavoritesByType)
		authed.GET("/favorites", favoriteHandler.HandleListFavorites)

		authed.POST("/ratings", ratingHandler.HandleCreateRating)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Uploaded media is served straight off disk.
	s.Router.Static("/artists", filepath.Join(s.store.BasePath(), "artists"))
	s.Router.Static("/organiser", filepath.Join(s.store.BasePath(), "organiser"))

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Gig Guide API"
	docs.SwaggerInfo.Description = "Directory API for artists, organisers, venues and events."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
