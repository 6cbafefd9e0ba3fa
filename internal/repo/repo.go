package repo

import (
	"gorm.io/gorm"
)

// GormRepo is the single store handle of the process. It is constructed in
// main and injected into every service; nothing reaches for a global DB.
type GormRepo struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *GormRepo {
	return &GormRepo{DB: db}
}
