package models

// User is the single persisted entity. The Telegram user id is the primary
// key; the username is informational only and may go stale.
type User struct {
	ID       int64  `json:"user_id" gorm:"column:user_id;primaryKey"`
	Username string `json:"username" gorm:"column:username"`
	IsVIP    bool   `json:"is_vip" gorm:"column:is_vip;default:false"`
}

func (User) TableName() string {
	return "users"
}
