package model

// Employee сотрудник из внешней таблицы employee (только чтение)
type Employee struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullname"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}
