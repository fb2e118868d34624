package shipment

// ShipmentProduct represents the ShipmentProduct table: one product line of a shipment.
type ShipmentProduct struct {
	ShipmentID uint  `gorm:"column:ShipmentID;primaryKey;autoIncrement:false" json:"shipment_id"`
	ProductID  uint  `gorm:"column:ProductID;primaryKey;autoIncrement:false" json:"product_id"`
	Quantity   int64 `gorm:"column:Quantity" json:"quantity"`
}

func (ShipmentProduct) TableName() string {
	return "ShipmentProduct"
}
