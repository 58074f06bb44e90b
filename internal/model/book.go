package model

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type Book struct {
	Seq        uint64 `gorm:"primaryKey;autoIncrement"`
	ID         string `gorm:"size:16;not null;uniqueIndex"`
	Name       string `gorm:"not null"`
	NameLower  string `gorm:"index"`
	Year       int
	Author     string
	Summary    string
	Publisher  string
	PageCount  int
	ReadPage   int
	Finished   bool
	Reading    bool
	InsertedAt time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null;autoUpdateTime:false"`
}

// ComputeFinished derives Finished from the page counters. It must run on
// every write; clients never set Finished directly.
func (b *Book) ComputeFinished() {
	b.Finished = b.ReadPage == b.PageCount
}

func (b *Book) EnsureID() error {
	if b.ID != "" {
		return nil
	}

	id, err := NewBookID()
	if err != nil {
		return err
	}
	b.ID = id
	return nil
}

// FoldName refreshes NameLower, the case-folded copy of Name that name
// searches run against.
func (b *Book) FoldName() {
	b.NameLower = strings.ToLower(b.Name)
}

func (b *Book) BeforeCreate(tx *gorm.DB) (err error) {
	b.FoldName()
	return b.EnsureID()
}
