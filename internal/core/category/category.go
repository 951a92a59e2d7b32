package category

import (
	"time"

	"github.com/gofrs/uuid"
)

type Category struct {
	ID        uuid.UUID  `gorm:"primaryKey;type:char(36)"`
	Name      string     `gorm:"not null"`
	URLHandle string     `gorm:"not null;index"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime"`
	DeletedAt *time.Time `gorm:"index"`
}
