package models

type Admin struct {
	ID       int64  `json:"id" db:"id"`
	AdminID  string `json:"admin_id" db:"admin_id"`
	Name     string `json:"name" db:"name"`
	Role     string `json:"role" db:"role"`
	Password string `json:"-" db:"password"`
}
