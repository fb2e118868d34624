package shipment

import (
	"gorm.io/gorm"

	shipmentEntity "petdept.GO/model/entity/shipment"
)

type ShipmentRepository struct {
	db *gorm.DB
}

func NewShipmentRepository(db *gorm.DB) *ShipmentRepository {
	return &ShipmentRepository{db: db}
}

// Create inserts s and fills in its ShipmentID.
func (r *ShipmentRepository) Create(s *shipmentEntity.Shipment) error {
	return r.db.Create(s).Error
}

// AddProduct inserts one line item linking a shipment to a product.
func (r *ShipmentRepository) AddProduct(line *shipmentEntity.ShipmentProduct) error {
	return r.db.Create(line).Error
}

func (r *ShipmentRepository) Lines(shipmentID uint) ([]shipmentEntity.ShipmentProduct, error) {
	var lines []shipmentEntity.ShipmentProduct
	err := r.db.Where("ShipmentID = ?", shipmentID).Order("ProductID").Find(&lines).Error
	return lines, err
}

func (r *ShipmentRepository) Count() (int64, error) {
	var n int64
	err := r.db.Model(&shipmentEntity.Shipment{}).Count(&n).Error
	return n, err
}
