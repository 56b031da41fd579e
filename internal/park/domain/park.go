package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// StringList stores a JSON-encoded string slice in a single column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *StringList) Scan(value any) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return errors.New("unsupported type for StringList")
	}
}

type Park struct {
	ID               uint       `json:"id" gorm:"primaryKey;autoIncrement"`
	Name             string     `json:"name"`
	ImageURL         string     `json:"imageUrl"`
	Rating           *float64   `json:"rating"`
	ReviewCount      *int       `json:"reviewCount"`
	Address          string     `json:"address"`
	Latitude         float64    `json:"latitude"`
	Longitude        float64    `json:"longitude"`
	Postcode         string     `json:"postcode"`
	Description      string     `json:"description"`
	OpeningHours     string     `json:"openingHours"`
	ParkWebsite      string     `json:"parkWebsite"`
	Active           bool       `json:"active"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
	Accessibility    StringList `json:"accessibility" gorm:"type:jsonb"`
	ChildrenFeatures StringList `json:"childrenFeatures" gorm:"type:jsonb"`
	Notices          StringList `json:"notices" gorm:"type:jsonb"`
}

func (Park) TableName() string {
	return "parks"
}
