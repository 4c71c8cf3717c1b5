package models

type TodoItem struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string  `gorm:"not null"                 json:"title"`
	Description *string `                                json:"description"`
	Priority    int     `gorm:"not null"                 json:"priority"`
	Complete    bool    `gorm:"not null;default:false"   json:"complete"`
	OwnerID     *uint   `gorm:"index"                    json:"owner_id"`
}

func (TodoItem) TableName() string {
	return "todo_list"
}

type User struct {
	ID             uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Username       string  `gorm:"unique;not null"          json:"username"`
	Email          *string `gorm:"unique"                   json:"email"`
	FirstName      string  `gorm:"not null"                 json:"first_name"`
	LastName       *string `                                json:"last_name"`
	HashedPassword string  `gorm:"not null"                 json:"-"`
	IsActive       bool    `gorm:"not null"                 json:"is_active"`
}

func (User) TableName() string {
	return "users"
}
