package models

type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"  json:"id"`
	Username     string `gorm:"uniqueIndex;not null"      json:"username"`
	PasswordHash string `gorm:"column:password;not null"  json:"-"`
}

func (User) TableName() string { return "users" }

type Item struct {
	ID          uint    `gorm:"primaryKey;autoIncrement"  json:"id"`
	Name        string  `gorm:"not null"                  json:"name"`
	Description *string `json:"description"`
	UserID      uint    `gorm:"index;not null"            json:"-"`
	Owner       *User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Item) TableName() string { return "items" }
