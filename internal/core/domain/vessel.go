package domain

// Vessel is identified by its IMO number (globally unique) and/or its name
// (not unique). Resolution must yield exactly one vessel or fail.
type Vessel struct {
	ID                  string   `json:"id" bson:"_id,omitempty"`
	IMONumber           string   `json:"vessel_imo_number" bson:"vessel_imo_number"`
	Name                string   `json:"vessel_name,omitempty" bson:"vessel_name,omitempty"`
	Flag                string   `json:"vessel_flag,omitempty" bson:"vessel_flag,omitempty"`
	CallSign            string   `json:"vessel_call_sign_number,omitempty" bson:"vessel_call_sign_number,omitempty"`
	OperatorCarrierCode string   `json:"vessel_operator_carrier_code,omitempty" bson:"vessel_operator_carrier_code,omitempty"`
	LengthOverall       *float64 `json:"length_overall,omitempty" bson:"length_overall,omitempty"`
	Width               *float64 `json:"width,omitempty" bson:"width,omitempty"`
}
