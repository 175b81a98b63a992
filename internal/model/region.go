package model

// Region is read-only reference data.
type Region struct {
	Code      string `gorm:"primaryKey" json:"code"`
	Name      string `json:"name"`
	Continent string `json:"continent"`
	FlagURL   string `json:"flagUrl"`
}

func (Region) TableName() string { return "regions" }
