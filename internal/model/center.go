package model

import "time"

// ScreeningCenter is a directory entry for a facility offering breast
// screening. SourceID links entries imported from the external registry.
type ScreeningCenter struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	SourceID  string    `json:"sourceId,omitempty" bson:"sourceId,omitempty"`
	Name      string    `json:"name" bson:"name"`
	City      string    `json:"city" bson:"city"`
	Address   string    `json:"address" bson:"address"`
	Phone     string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Latitude  float64   `json:"lat,omitempty" bson:"lat,omitempty"`
	Longitude float64   `json:"lng,omitempty" bson:"lng,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}
