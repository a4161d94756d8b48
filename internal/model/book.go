package model

type Book struct {
	ID          uint   `gorm:"primaryKey;column:id" json:"id"`
	Title       string `gorm:"column:title;size:255;not null;unique" json:"title"`
	ISBN13      string `gorm:"column:isbn13;size:13;not null;unique" json:"isbn13"`
	Author      string `gorm:"column:author;size:128" json:"author"`
	Description string `gorm:"column:description" json:"description"`
	// Category holds the category name; existence is checked against the
	// categories table at write time, there is no foreign key.
	Category string `gorm:"column:category;size:128;not null" json:"category"`
}

func (Book) TableName() string { return "books" }
