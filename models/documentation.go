package models

import "time"

type DocumentationSection struct {
	Seq         uint      `json:"-" yaml:"-" gorm:"primarykey"`
	ID          string    `json:"id" yaml:"id" gorm:"uniqueIndex;not null"`
	Title       string    `json:"title" yaml:"title" gorm:"not null"`
	Content     string    `json:"content" yaml:"content" gorm:"type:text"`
	Category    string    `json:"category" yaml:"category" gorm:"index"`
	Order       int       `json:"order" yaml:"order" gorm:"column:sort_order"`
	LastUpdated time.Time `json:"last_updated" yaml:"last_updated"`
}
