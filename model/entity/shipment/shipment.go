package shipment

// Shipment represents the Shipment table. OriginID and DestinationID reference Location(LocationID),
// which is maintained outside this tool.
type Shipment struct {
	ShipmentID    uint   `gorm:"column:ShipmentID;primaryKey;autoIncrement" json:"shipment_id,omitempty"`
	OriginID      *int64 `gorm:"column:OriginID" json:"origin_id,omitempty"`
	DestinationID *int64 `gorm:"column:DestinationID" json:"destination_id,omitempty"`
	Date          string `gorm:"column:Date" json:"date"`
}

func (Shipment) TableName() string {
	return "Shipment"
}
