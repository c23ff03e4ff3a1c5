package domain

// Location is a named place involved in the booking. Address and Facility are
// stored separately and referenced by id; a "shallow" location carries only
// the ids, a "deep" read loads both sub-objects inline.
type Location struct {
	ID             string   `json:"id" bson:"_id,omitempty"`
	Name           string   `json:"location_name,omitempty" bson:"location_name,omitempty"`
	UNLocationCode string   `json:"un_location_code,omitempty" bson:"un_location_code,omitempty"`
	Latitude       *float64 `json:"latitude,omitempty" bson:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty" bson:"longitude,omitempty"`
	AddressID      *string  `json:"-" bson:"address_id,omitempty"`
	FacilityID     *string  `json:"-" bson:"facility_id,omitempty"`
}

// Address is the postal detail optionally linked to a location or a party.
type Address struct {
	ID           string `json:"id" bson:"_id,omitempty"`
	Name         string `json:"name,omitempty" bson:"name,omitempty"`
	Street       string `json:"street,omitempty" bson:"street,omitempty"`
	StreetNumber string `json:"street_number,omitempty" bson:"street_number,omitempty"`
	Floor        string `json:"floor,omitempty" bson:"floor,omitempty"`
	PostCode     string `json:"post_code,omitempty" bson:"post_code,omitempty"`
	City         string `json:"city,omitempty" bson:"city,omitempty"`
	StateRegion  string `json:"state_region,omitempty" bson:"state_region,omitempty"`
	Country      string `json:"country,omitempty" bson:"country,omitempty"`
}

// Facility is the terminal detail optionally linked to a location.
type Facility struct {
	ID             string `json:"id" bson:"_id,omitempty"`
	Name           string `json:"facility_name,omitempty" bson:"facility_name,omitempty"`
	UNLocationCode string `json:"un_location_code,omitempty" bson:"un_location_code,omitempty"`
	BICCode        string `json:"facility_bic_code,omitempty" bson:"facility_bic_code,omitempty"`
	SMDGCode       string `json:"facility_smdg_code,omitempty" bson:"facility_smdg_code,omitempty"`
}
