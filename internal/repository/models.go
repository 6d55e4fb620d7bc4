package repository

import "time"

type User struct {
	ID           string `gorm:"primaryKey;autoIncrement:false"`
	Username     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
}

// Todo.UserID references User.ID without a foreign key constraint.
type Todo struct {
	ID          string    `gorm:"primaryKey;autoIncrement:false"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	DueDate     time.Time `gorm:"type:date"`
	Completed   bool      `gorm:"not null;default:false"`
	UserID      string    `gorm:"index;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TodoFields holds the user-editable columns of a Todo.
type TodoFields struct {
	Title       string
	Description string
	DueDate     time.Time
	Completed   bool
}
