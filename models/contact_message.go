package models

import "time"

type ContactStatus string

const (
	ContactStatusNew     ContactStatus = "new"
	ContactStatusRead    ContactStatus = "read"
	ContactStatusReplied ContactStatus = "replied"
)

// Valid reports whether s is one of new, read or replied.
func (s ContactStatus) Valid() bool {
	switch s {
	case ContactStatusNew, ContactStatusRead, ContactStatusReplied:
		return true
	}
	return false
}

type ContactMessage struct {
	Seq       uint          `json:"-" yaml:"-" gorm:"primarykey"`
	ID        string        `json:"id" yaml:"id" gorm:"uniqueIndex;not null"`
	Name      string        `json:"name" yaml:"name" gorm:"not null"`
	Email     string        `json:"email" yaml:"email" gorm:"not null"`
	Subject   string        `json:"subject" yaml:"subject"`
	Message   string        `json:"message" yaml:"message" gorm:"type:text"`
	Status    ContactStatus `json:"status" yaml:"status" gorm:"default:'new';index"`
	CreatedAt time.Time     `json:"created_at" yaml:"created_at"`
}
