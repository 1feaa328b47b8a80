package models

// Product is a catalog entry. The catalog is read-only at runtime; the
// repository's Create exists for seeding and tests.
type Product struct {
	ID          uint    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string  `json:"name" gorm:"type:varchar(100)" validate:"required,min=2,max=100"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Image       string  `json:"image" gorm:"type:varchar(255)"`
	Description string  `json:"description" gorm:"type:varchar(500)" validate:"omitempty,max=500"`
	Stock       int     `json:"stock" validate:"gte=0"`
}
