package db_models

import "time"

type Crowd struct {
	BaseModel
	Place       string    `json:"place"`
	CrowdLevel  string    `json:"crowd_level"`
	Percent     float64   `json:"percent"`
	LastUpdated time.Time `gorm:"autoCreateTime" json:"last_updated"`
}

func (Crowd) TableName() string { return "crowd" }
