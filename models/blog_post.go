package models

import (
	"slices"
	"time"
)

type BlogPost struct {
	Seq           uint      `json:"-" yaml:"-" gorm:"primarykey"`
	ID            string    `json:"id" yaml:"id" gorm:"uniqueIndex;not null"`
	Title         string    `json:"title" yaml:"title" gorm:"not null"`
	Content       string    `json:"content" yaml:"content" gorm:"type:text"`
	Excerpt       string    `json:"excerpt" yaml:"excerpt" gorm:"type:text"`
	Author        string    `json:"author" yaml:"author"`
	Tags          []string  `json:"tags" yaml:"tags" gorm:"serializer:json;type:jsonb"`
	Published     bool      `json:"published" yaml:"published" gorm:"default:false;index"`
	Slug          string    `json:"slug" yaml:"slug" gorm:"uniqueIndex;not null"`
	FeaturedImage string    `json:"featured_image,omitempty" yaml:"featured_image"`
	CreatedAt     time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" yaml:"updated_at"`
}

func (p BlogPost) Clone() BlogPost {
	p.Tags = slices.Clone(p.Tags)
	return p
}
