package models

import "strings"

// DefaultVenueCapacity applies when a venue definition leaves capacity unset.
const DefaultVenueCapacity = 20

// Venue is a bookable space from the registry.
type Venue struct {
	ID       int64  `json:"id" yaml:"-"`
	Name     string `json:"name" yaml:"name"`
	Type     string `json:"type" yaml:"type"`
	Capacity int    `json:"capacity" yaml:"capacity"`
	Location string `json:"location" yaml:"location"`
}

// Normalize trims text fields and applies the default capacity.
func (v Venue) Normalize() Venue {
	v.Name = strings.TrimSpace(v.Name)
	v.Type = strings.TrimSpace(v.Type)
	v.Location = strings.TrimSpace(v.Location)
	if v.Capacity <= 0 {
		v.Capacity = DefaultVenueCapacity
	}
	return v
}
