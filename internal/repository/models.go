package repository

import "time"

type User struct {
	ID           string `gorm:"primaryKey;autoIncrement:false"`
	Username     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
}

type Game struct {
	ID        string    `gorm:"primaryKey;autoIncrement:false"`
	Name      string    `gorm:"type:varchar(255);not null"`
	HTML      string    `gorm:"type:text;not null"` // arbitrary author-supplied markup, rendered sandboxed client-side
	AuthorID  string    `gorm:"not null;index"`
	Published bool      `gorm:"not null;default:true"`
	UpdatedAt time.Time `gorm:"not null"`
}
