package domain

import "time"

// Commodity describes one line of cargo on a booking.
type Commodity struct {
	ID                      string     `json:"id" bson:"_id,omitempty"`
	BookingID               string     `json:"-" bson:"booking_id"`
	CommodityType           string     `json:"commodity_type" bson:"commodity_type"`
	HSCode                  string     `json:"hs_code,omitempty" bson:"hs_code,omitempty"`
	CargoGrossWeight        float64    `json:"cargo_gross_weight" bson:"cargo_gross_weight"`
	CargoGrossWeightUnit    string     `json:"cargo_gross_weight_unit" bson:"cargo_gross_weight_unit"`
	ExportLicenseIssueDate  *time.Time `json:"export_license_issue_date,omitempty" bson:"export_license_issue_date,omitempty"`
	ExportLicenseExpiryDate *time.Time `json:"export_license_expiry_date,omitempty" bson:"export_license_expiry_date,omitempty"`
}

// ValueAddedServiceRequest asks the carrier for an additional service
// (e.g. customs clearance, cargo insurance).
type ValueAddedServiceRequest struct {
	ID          string `json:"id" bson:"_id,omitempty"`
	BookingID   string `json:"-" bson:"booking_id"`
	ServiceCode string `json:"value_added_service_code" bson:"value_added_service_code"`
}

// Reference is a shipper- or carrier-supplied reference attached to a booking
// (FF = freight forwarder, PO = purchase order, …).
type Reference struct {
	ID        string `json:"id" bson:"_id,omitempty"`
	BookingID string `json:"-" bson:"booking_id"`
	Type      string `json:"reference_type" bson:"reference_type"`
	Value     string `json:"reference_value" bson:"reference_value"`
}

// RequestedEquipment is the shipper's container request on a booking.
type RequestedEquipment struct {
	ID             string `json:"id" bson:"_id,omitempty"`
	BookingID      string `json:"-" bson:"booking_id"`
	SizeType       string `json:"requested_equipment_size_type" bson:"requested_equipment_size_type"`
	Units          int    `json:"requested_equipment_units" bson:"requested_equipment_units"`
	IsShipperOwned bool   `json:"is_shipper_owned" bson:"is_shipper_owned"`
}

// ConfirmedEquipment is the carrier's committed equipment on a shipment.
type ConfirmedEquipment struct {
	ID         string `json:"id" bson:"_id,omitempty"`
	ShipmentID string `json:"-" bson:"shipment_id"`
	SizeType   string `json:"confirmed_equipment_size_type" bson:"confirmed_equipment_size_type"`
	Units      int    `json:"confirmed_equipment_units" bson:"confirmed_equipment_units"`
}
