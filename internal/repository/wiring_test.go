package repository_test

import (
	"github.com/gigguide/gigguide-api/internal/repository"
	"github.com/gigguide/gigguide-api/internal/service"
)

// The service interfaces are satisfied structurally, so a drifted parameter
// order or type in a repository method only surfaces where the two sides are
// wired together. These assertions pin every pairing server.go relies on.
var (
	_ service.AuthUserRepository  = (*repository.UserRepository)(nil)
	_ service.AclRepository       = (*repository.UserRepository)(nil)
	_ service.OwnerRepository     = (*repository.OwnerRepository)(nil)
	_ service.ArtistRepository    = (*repository.OwnerRepository)(nil)
	_ service.OrganiserRepository = (*repository.OwnerRepository)(nil)
	_ service.VenueRepository     = (*repository.VenueRepository)(nil)
	_ service.EventRepository     = (*repository.EventRepository)(nil)
	_ service.FavoriteRepository  = (*repository.FavoriteRepository)(nil)
	_ service.RatingRepository    = (*repository.RatingRepository)(nil)
)
