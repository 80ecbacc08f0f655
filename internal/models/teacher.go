package models

type Teacher struct {
	ID        int64  `json:"id" db:"id"`
	TeacherID string `json:"teacher_id" db:"teacher_id"`
	Name      string `json:"name" db:"name"`
	Surname   string `json:"surname" db:"surname"`
	Class     string `json:"class" db:"class"`
	Phone     string `json:"phone" db:"phone"`
	Password  string `json:"-" db:"password"`
	Role      string `json:"role" db:"role"`
}
