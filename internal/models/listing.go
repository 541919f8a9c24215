package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListingType string

const (
	TypeApartment ListingType = "apartment"
	TypeHouse     ListingType = "house"
	TypeVilla     ListingType = "villa"
	TypeCottage   ListingType = "cottage"
	TypeLoft      ListingType = "loft"
	TypeStudio    ListingType = "studio"
	TypeResort    ListingType = "resort"
	TypeTownhouse ListingType = "townhouse"
	TypeCabin     ListingType = "cabin"
	TypeBoat      ListingType = "boat"
)

var ListingTypes = []ListingType{
	TypeApartment, TypeHouse, TypeVilla, TypeCottage, TypeLoft,
	TypeStudio, TypeResort, TypeTownhouse, TypeCabin, TypeBoat,
}

func (t ListingType) Valid() bool {
	for _, known := range ListingTypes {
		if t == known {
			return true
		}
	}
	return false
}

// AmenityList is stored as a single comma-delimited column.
type AmenityList []string

func (a AmenityList) Value() (driver.Value, error) {
	return strings.Join(a, ","), nil
}

func (a *AmenityList) Scan(src any) error {
	var s string
	switch v := src.(type) {
	case nil:
		*a = nil
		return nil
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("amenities: unsupported scan type %T", src)
	}
	if s == "" {
		*a = nil
		return nil
	}
	*a = strings.Split(s, ",")
	return nil
}

type Listing struct {
	ListingID          uuid.UUID   `gorm:"type:uuid;primaryKey;column:listing_id" json:"listing_id"`
	Title              string      `gorm:"not null" json:"title"`
	Description        string      `json:"description"`
	HostID             uuid.UUID   `gorm:"type:uuid;not null;index" json:"host_id"`
	ListingType        ListingType `gorm:"type:varchar(50);not null;default:'apartment'" json:"listing_type"`
	PricePerNight      float64     `gorm:"not null" json:"price_per_night"`
	LocationAddress    string      `gorm:"not null" json:"location_address"`
	AllowableGuests    int         `gorm:"not null" json:"allowable_guests"`
	NumberOfBedrooms   int         `json:"number_of_bedrooms"`
	NumberOfBathrooms  int         `json:"number_of_bathrooms"`
	Amenities          AmenityList `gorm:"type:text" json:"amenities"`
	AvailableFrom      time.Time   `json:"available_from"`
	CreatedAt          time.Time   `json:"created_at"`
	UpdatedAt          time.Time   `json:"updated_at"`

	Host *User `gorm:"foreignKey:HostID;constraint:OnDelete:CASCADE" json:"host,omitempty"`
}

func (Listing) TableName() string { return "travel_listings" }

func (l *Listing) BeforeCreate(tx *gorm.DB) error {
	if l.ListingID == uuid.Nil {
		l.ListingID = uuid.New()
	}
	return nil
}
