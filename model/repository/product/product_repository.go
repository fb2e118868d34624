package product

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	productEntity "petdept.GO/model/entity/product"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// InsertOrIgnore inserts p unless a product with the same Name and ManufacturerID exists.
// It reports whether a row was written; a duplicate is not an error.
func (r *ProductRepository) InsertOrIgnore(p *productEntity.Product) (bool, error) {
	res := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(p)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// FindByNameAndManufacturer returns every product matching the pair, in ProductID order.
// A nil manufacturerID matches products stored without one.
func (r *ProductRepository) FindByNameAndManufacturer(name string, manufacturerID *int64) ([]productEntity.Product, error) {
	var products []productEntity.Product
	q := r.db.Where("Name = ?", name)
	if manufacturerID == nil {
		q = q.Where("ManufacturerID IS NULL")
	} else {
		q = q.Where("ManufacturerID = ?", *manufacturerID)
	}
	err := q.Order("ProductID").Find(&products).Error
	return products, err
}

func (r *ProductRepository) FindByID(id uint) (*productEntity.Product, error) {
	var p productEntity.Product
	if err := r.db.First(&p, "ProductID = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) Count() (int64, error) {
	var n int64
	err := r.db.Model(&productEntity.Product{}).Count(&n).Error
	return n, err
}
