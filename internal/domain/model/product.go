package model

import (
	"strconv"
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID          int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string         `gorm:"type:varchar(255);not null;uniqueIndex" json:"name"`
	Description string         `gorm:"type:text" json:"desc"`
	Category    string         `gorm:"type:varchar(50);not null;default:'';index" json:"category"`
	Image       string         `gorm:"type:varchar(512);not null;default:''" json:"image"`
	Price       int64          `gorm:"not null" json:"price"`
	IsActive    bool           `gorm:"not null;default:false" json:"is_active"`
	CreatedAt   time.Time      `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"not null;autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// カートのproductIdsと突き合わせる時は文字列で比較する
func (p Product) Key() string {
	return strconv.FormatInt(p.ID, 10)
}
