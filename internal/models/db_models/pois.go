package db_models

type POI struct {
	BaseModel
	Name     string `json:"name"`
	City     string `gorm:"index" json:"city"`
	Time     string `json:"time,omitempty"`
	Tip      string `json:"tip,omitempty"`
	Category string `json:"category"`
}

func (POI) TableName() string { return "pois" }
