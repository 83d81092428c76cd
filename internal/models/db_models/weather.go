package db_models

import (
	"time"

	"gorm.io/datatypes"
)

type ForecastDay struct {
	Day       string  `json:"day"`
	Temp      float64 `json:"temp"`
	Condition string  `json:"condition"`
}

type Weather struct {
	BaseModel
	City        string                           `json:"city"`
	Temperature float64                          `json:"temperature"`
	Condition   string                           `json:"condition"`
	Humidity    float64                          `json:"humidity"`
	Forecast    datatypes.JSONSlice[ForecastDay] `json:"forecast"`
	LastUpdated time.Time                        `gorm:"autoCreateTime" json:"last_updated"`
}

func (Weather) TableName() string { return "weather" }
