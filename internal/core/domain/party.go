package domain

// Party is a legal entity referenced by one or more document parties.
type Party struct {
	ID               string               `json:"id" bson:"_id,omitempty"`
	Name             string               `json:"party_name,omitempty" bson:"party_name,omitempty"`
	TaxReference1    string               `json:"tax_reference_1,omitempty" bson:"tax_reference_1,omitempty"`
	TaxReference2    string               `json:"tax_reference_2,omitempty" bson:"tax_reference_2,omitempty"`
	PublicKey        string               `json:"public_key,omitempty" bson:"public_key,omitempty"`
	Address          *Address             `json:"address,omitempty" bson:"address,omitempty"`
	IdentifyingCodes []IdentifyingCode    `json:"identifying_codes,omitempty" bson:"identifying_codes,omitempty"`
	ContactDetails   []PartyContactDetail `json:"party_contact_details,omitempty" bson:"party_contact_details,omitempty"`
}

// IdentifyingCode is an agency-issued code identifying a party (SCAC, SMDG…).
type IdentifyingCode struct {
	ResponsibleAgencyCode string `json:"dcsa_responsible_agency_code" bson:"responsible_agency_code"`
	PartyCode             string `json:"party_code" bson:"party_code"`
	CodeListName          string `json:"code_list_name,omitempty" bson:"code_list_name,omitempty"`
}

// PartyContactDetail is a named contact channel for a party.
type PartyContactDetail struct {
	Name  string `json:"name" bson:"name"`
	Phone string `json:"phone,omitempty" bson:"phone,omitempty"`
	Email string `json:"email,omitempty" bson:"email,omitempty"`
	URL   string `json:"url,omitempty" bson:"url,omitempty"`
}

// DocumentParty assigns a party a function (shipper, consignee, notify…) on a
// booking. DisplayedAddress carries the free-form address lines printed on
// the transport document.
type DocumentParty struct {
	ID               string   `json:"id" bson:"_id,omitempty"`
	BookingID        string   `json:"-" bson:"booking_id"`
	Party            Party    `json:"party" bson:"party"`
	PartyFunction    string   `json:"party_function" bson:"party_function"`
	IsToBeNotified   bool     `json:"is_to_be_notified" bson:"is_to_be_notified"`
	DisplayedAddress []string `json:"displayed_address,omitempty" bson:"displayed_address,omitempty"`
}
