package model

type User struct {
	ID       uint   `gorm:"primaryKey;column:id" json:"id"`
	Username string `gorm:"column:username;size:64;not null;unique" json:"username"`
	Password string `gorm:"column:password;size:255;not null" json:"-"`
	Name     string `gorm:"column:name;size:128;not null" json:"name"`
	ImgURL   string `gorm:"column:imgurl;size:255" json:"imgurl"`
}

func (User) TableName() string { return "users" }
