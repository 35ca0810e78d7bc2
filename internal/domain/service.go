package domain

// Service is a top-level line of work (e.g. maintenance, landscaping). It
// owns its sub-services; deleting a service does not cascade to them.
type Service struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	Name        string       `gorm:"size:140;not null" json:"name"`
	SubServices []SubService `gorm:"foreignKey:ServiceID" json:"subservices,omitempty"`
}

type SubService struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"size:140;not null" json:"name"`
	ServiceID uint   `gorm:"index" json:"serviceId"`
}
