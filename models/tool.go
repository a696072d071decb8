package models

import (
	"slices"
	"time"
)

type Tool struct {
	Seq            uint      `json:"-" yaml:"-" gorm:"primarykey"`
	ID             string    `json:"id" yaml:"id" gorm:"uniqueIndex;not null"`
	Name           string    `json:"name" yaml:"name" gorm:"not null"`
	Description    string    `json:"description" yaml:"description" gorm:"type:text"`
	Category       string    `json:"category" yaml:"category" gorm:"index"`
	Tags           []string  `json:"tags" yaml:"tags" gorm:"serializer:json;type:jsonb"`
	Version        string    `json:"version" yaml:"version"`
	Author         string    `json:"author" yaml:"author"`
	Repository     string    `json:"repository,omitempty" yaml:"repository"`
	Documentation  string    `json:"documentation,omitempty" yaml:"documentation"`
	InstallCommand string    `json:"install_command,omitempty" yaml:"install_command"`
	UsageExamples  []string  `json:"usage_examples,omitempty" yaml:"usage_examples" gorm:"serializer:json;type:jsonb"`
	Downloads      int64     `json:"downloads" yaml:"downloads" gorm:"default:0"`
	Rating         float64   `json:"rating" yaml:"rating" gorm:"default:0"`
	CreatedAt      time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" yaml:"updated_at"`
}

// Clone returns a copy that shares no slices with t.
func (t Tool) Clone() Tool {
	t.Tags = slices.Clone(t.Tags)
	t.UsageExamples = slices.Clone(t.UsageExamples)
	return t
}

type ToolSort string

const (
	ToolSortDefault   ToolSort = ""
	ToolSortRating    ToolSort = "rating"
	ToolSortDownloads ToolSort = "downloads"
)

func ParseToolSort(s string) ToolSort {
	switch ToolSort(s) {
	case ToolSortRating, ToolSortDownloads:
		return ToolSort(s)
	default:
		return ToolSortDefault
	}
}
