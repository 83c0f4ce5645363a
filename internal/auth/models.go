package auth

// User is one account row. Usernames are stored lowercased (see
// NormalizeUsername) and the hashed password lives in the legacy "password"
// column so existing databases keep working.
type User struct {
	Username       string `gorm:"primaryKey" json:"username"`
	Password       string `json:"password" gorm:"-"`
	HashedPassword string `json:"-" gorm:"column:password"`
	Credits        int    `gorm:"not null;default:20" json:"credits"`
}

func (User) TableName() string { return "users" }
