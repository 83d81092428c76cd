package db_models

import (
	"time"

	"gorm.io/datatypes"
)

type Currency struct {
	BaseModel
	Base        string            `json:"base"`
	Rates       datatypes.JSONMap `json:"rates"`
	LastUpdated time.Time         `gorm:"autoCreateTime" json:"last_updated"`
}

func (Currency) TableName() string { return "currency" }
