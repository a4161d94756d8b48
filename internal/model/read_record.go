package model

// ReadRecord is one "user has read this book" entry with an optional review.
type ReadRecord struct {
	ID         uint   `gorm:"primaryKey;column:id" json:"id"`
	UserID     uint   `gorm:"column:userid;not null" json:"userid"`
	BookID     uint   `gorm:"column:bookid;not null" json:"bookid"`
	UserRating int    `gorm:"column:userrating" json:"userrating"`
	UserReview string `gorm:"column:userreview" json:"userreview"`
}

func (ReadRecord) TableName() string { return "readbooks" }
