package image

import (
	"time"

	"github.com/gofrs/uuid"
)

type BlogImage struct {
	ID            uuid.UUID `gorm:"primaryKey;type:char(36)"`
	Title         string    `gorm:"not null"`
	FileName      string    `gorm:"not null"`
	FileExtension string    `gorm:"not null"`
	URL           string    `gorm:"not null"`
	DateCreated   time.Time `gorm:"autoCreateTime"`
}
