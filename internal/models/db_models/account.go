package db_models

type Account struct {
	BaseModel
	Name         string `json:"name"`
	Email        string `gorm:"unique" json:"email"`
	PasswordHash string `json:"-"`
}
