package db_models

import "gorm.io/datatypes"

type Hotel struct {
	BaseModel
	Name        string                      `json:"name"`
	Location    string                      `gorm:"index" json:"location"`
	Price       float64                     `json:"price"`
	Rating      float64                     `json:"rating"`
	Available   *bool                       `json:"available,omitempty"`
	Image       string                      `json:"image,omitempty"`
	Amenities   datatypes.JSONSlice[string] `json:"amenities,omitempty"`
	Reviews     int                         `json:"reviews"`
	Badge       string                      `json:"badge,omitempty"`
	SocialProof string                      `json:"social_proof,omitempty"`
	Latitude    float64                     `json:"lat"`
	Longitude   float64                     `json:"lng"`
}

// IsAvailable treats an unset availability flag as available.
func (h Hotel) IsAvailable() bool {
	return h.Available == nil || *h.Available
}
