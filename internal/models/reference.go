package models

// ReferenceTable - справочная таблица, заполняемая при первом обращении
type ReferenceTable string

const (
	TableHotlines     ReferenceTable = "hotlines"
	TableMapLocations ReferenceTable = "map_locations"
)

// Hotline - номер экстренной службы
type Hotline struct {
	ID       string `json:"id" db:"id"`
	Label    string `json:"label" db:"label"`
	Number   string `json:"number" db:"number"`
	Category string `json:"category" db:"category"`
}

// LocationType - тип объекта на карте
type LocationType string

const (
	LocationEvacuation LocationType = "evacuation"
	LocationHospital   LocationType = "hospital"
	LocationPolice     LocationType = "police"
	LocationFire       LocationType = "fire"
	LocationGovernment LocationType = "government"
)

// LocationTypes перечисляет допустимые типы в порядке вывода в сообщениях об ошибке
var LocationTypes = []LocationType{
	LocationEvacuation, LocationHospital, LocationPolice, LocationFire, LocationGovernment,
}

func (t LocationType) IsValid() bool {
	for _, v := range LocationTypes {
		if t == v {
			return true
		}
	}
	return false
}

// MapLocation - объект на карте (эвакуационный пункт, больница и т.п.)
type MapLocation struct {
	ID       int          `json:"id" db:"id"`
	Type     LocationType `json:"type" db:"type"`
	Name     string       `json:"name" db:"name"`
	Address  string       `json:"address" db:"address"`
	Lat      float64      `json:"lat" db:"lat"`
	Lng      float64      `json:"lng" db:"lng"`
	Capacity *string      `json:"capacity,omitempty" db:"capacity"`
	Services *string      `json:"services,omitempty" db:"services"`
	Hotline  *string      `json:"hotline,omitempty" db:"hotline"`
}

// MapLocationPatch - частичное обновление объекта на карте
type MapLocationPatch struct {
	Type     *LocationType
	Name     *string
	Address  *string
	Lat      *float64
	Lng      *float64
	Capacity *string
	Services *string
	Hotline  *string
}

// IsEmpty сообщает, что в патче нет ни одного поля
func (p MapLocationPatch) IsEmpty() bool {
	return p.Type == nil && p.Name == nil && p.Address == nil && p.Lat == nil &&
		p.Lng == nil && p.Capacity == nil && p.Services == nil && p.Hotline == nil
}
