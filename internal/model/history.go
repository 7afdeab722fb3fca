package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TranslationRecord is a single saved translation owned by one user.
// OwnerEmail is a soft reference to User.Email; records survive independently.
type TranslationRecord struct {
	ID         uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	OwnerEmail string    `json:"-" gorm:"size:255;not null;index"`
	Original   string    `json:"original" gorm:"type:text;not null"`
	Translated string    `json:"translated" gorm:"type:text;not null"`
	FromLang   string    `json:"fromLang" gorm:"size:16;not null"`
	ToLang     string    `json:"toLang" gorm:"size:16;not null"`
	CreatedAt  time.Time `json:"createdAt"`
}

// BeforeCreate sets UUID before creating the record.
func (r *TranslationRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
