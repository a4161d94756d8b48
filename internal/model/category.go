package model

type Category struct {
	ID   uint   `gorm:"primaryKey;column:id" json:"id"`
	Name string `gorm:"column:name;size:128;not null;unique" json:"name"`
}

func (Category) TableName() string { return "categories" }
