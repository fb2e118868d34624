package product

// Product represents the Product table. Name and ManufacturerID are unique together.
// Optional attributes are pointers so blank spreadsheet cells are stored as NULL.
type Product struct {
	ProductID        uint     `gorm:"column:ProductID;primaryKey;autoIncrement" json:"product_id,omitempty" mapstructure:"-"`
	Name             string   `gorm:"column:Name;not null;uniqueIndex:uq_product_name_manufacturer" json:"name" mapstructure:"Name"`
	Type             *string  `gorm:"column:Type" json:"type,omitempty" mapstructure:"Type"`
	ManufacturerID   *int64   `gorm:"column:ManufacturerID;uniqueIndex:uq_product_name_manufacturer" json:"manufacturer_id,omitempty" mapstructure:"ManufacturerID"`
	Weight           *float64 `gorm:"column:Weight" json:"weight,omitempty" mapstructure:"Weight"`
	Flavor           *string  `gorm:"column:Flavor" json:"flavor,omitempty" mapstructure:"Flavor"`
	HealthCondition  *string  `gorm:"column:HealthCondition" json:"health_condition,omitempty" mapstructure:"HealthCondition"`
	Material         *string  `gorm:"column:Material" json:"material,omitempty" mapstructure:"Material"`
	Durability       *string  `gorm:"column:Durability" json:"durability,omitempty" mapstructure:"Durability"`
	Color            *string  `gorm:"column:Color" json:"color,omitempty" mapstructure:"Color"`
	Size             *string  `gorm:"column:Size" json:"size,omitempty" mapstructure:"Size"`
	CareInstructions *string  `gorm:"column:CareInstructions" json:"care_instructions,omitempty" mapstructure:"CareInstructions"`
}

func (Product) TableName() string {
	return "Product"
}

// Columns lists the spreadsheet header names a product row must carry.
var Columns = []string{
	"Name", "Type", "ManufacturerID", "Weight", "Flavor", "HealthCondition",
	"Material", "Durability", "Color", "Size", "CareInstructions",
}
