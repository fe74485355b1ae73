package models

import "time"

// Club categories derived from Booqable tags. An empty string means the tag
// list carried no matching tag.
const (
	CategoryDriver  = "driver"
	CategoryFairway = "fairway-woods-hybrids"
	CategoryIrons   = "irons"
	CategoryWedges  = "wedges"
	CategoryPutter  = "putter"

	ShaftFlexible = "flexible"
	ShaftStiff    = "stiff"

	IronBlades     = "blades"
	IronCavityBack = "cavity-back"
	IronMuscleBack = "muscle-back"
)

// Club is a rentable product sourced live from Booqable. Clubs are never
// persisted locally; Category, ShaftType and IronType are recomputed from
// Tags on every read.
type Club struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	SKU         string    `json:"sku,omitempty"`
	Description string    `json:"description,omitempty"`
	Photo       string    `json:"photo,omitempty"`
	Brand       string    `json:"brand,omitempty"`
	Archived    bool      `json:"archived"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"createdAt"`

	Category  string `json:"category,omitempty"`
	ShaftType string `json:"shaftType,omitempty"`
	IronType  string `json:"ironType,omitempty"`
}

// AvailableClub is a Club annotated with per-course/per-date availability.
// UnavailabilityReason is null unless Available is false.
type AvailableClub struct {
	Club
	Available            bool    `json:"available"`
	UnavailabilityReason *string `json:"unavailabilityReason"`
}
