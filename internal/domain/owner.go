package domain

type OwnerType string

const (
	OwnerTypeArtist    OwnerType = "artist"
	OwnerTypeOrganiser OwnerType = "organiser"
)

func (t OwnerType) Valid() bool {
	return t == OwnerTypeArtist || t == OwnerTypeOrganiser
}

// RoleCode is the acl_trusts id used as the folder name prefix.
func (t OwnerType) RoleCode() int {
	if t == OwnerTypeArtist {
		return RoleArtist
	}

	return RoleOrganiser
}

// Owner is the resolved side of the polymorphic (owner_id, owner_type) pair
// on venues and events. Exactly one of Artist or Organiser is set, matching Type.
type Owner struct {
	ID        uint      `json:"id"`
	Type      OwnerType `json:"type"`
	Artist    *Artist   `json:"artist,omitempty"`
	Organiser *Organiser `json:"organiser,omitempty"`
}

func (o Owner) Settings() *Settings {
	if o.Type == OwnerTypeArtist && o.Artist != nil {
		return o.Artist.Settings
	}
	if o.Type == OwnerTypeOrganiser && o.Organiser != nil {
		return o.Organiser.Settings
	}

	return nil
}

func (o Owner) Username() string {
	if o.Type == OwnerTypeArtist && o.Artist != nil {
		return o.Artist.StageName
	}
	if o.Type == OwnerTypeOrganiser && o.Organiser != nil {
		return o.Organiser.Name
	}

	return ""
}
