package storage

import "time"

// listRecord is the todo_list row. Deleting a list cascades to its items.
type listRecord struct {
	ID          int64        `gorm:"primaryKey;autoIncrement"`
	Title       string       `gorm:"size:100;not null"`
	Description *string      `gorm:"size:200"`
	CreatedAt   time.Time    `gorm:"not null"`
	UpdatedAt   time.Time    `gorm:"not null"`
	Items       []itemRecord `gorm:"foreignKey:TodoListID;constraint:OnDelete:CASCADE"`
}

func (listRecord) TableName() string { return "todo_list" }

// itemRecord is the todo_item row.
type itemRecord struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	TodoListID  int64   `gorm:"not null;index"`
	Title       string  `gorm:"size:100;not null"`
	Description *string `gorm:"size:200"`
	StatusCode  string  `gorm:"size:20;not null"`
	DueAt       *time.Time
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

func (itemRecord) TableName() string { return "todo_item" }
