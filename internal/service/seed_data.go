package service

import (
	"github.com/google/uuid"
	"github.com/shenikar/incident_reporting_system/internal/models"
)

// Пространство имен для детерминированных id номеров по умолчанию
var hotlineSeedNamespace = uuid.MustParse("6f1d7c1e-3a4b-5c2d-9e8f-0a1b2c3d4e5f")

func seedHotline(label, number, category string) models.Hotline {
	return models.Hotline{
		ID:       uuid.NewSHA1(hotlineSeedNamespace, []byte(label+"|"+number)).String(),
		Label:    label,
		Number:   number,
		Category: category,
	}
}

func strPtr(s string) *string { return &s }

// DefaultHotlines - номера экстренных служб, которыми заполняется пустая таблица
func DefaultHotlines() []models.Hotline {
	return []models.Hotline{
		seedHotline("MDRRMO Municipal Disaster Risk Reduction Management Office", "0917-772-5016", "emergency"),
		seedHotline("MDRRMO Municipal Disaster Risk Reduction Management Office", "0966-395-6804", "emergency"),
		seedHotline("PSO Public Safety Officer", "0946-743-2735", "police"),
		seedHotline("Mayor's Office", "0961-690-2026", "local"),
		seedHotline("Mayor's Office", "0995-072-9306", "local"),
		seedHotline("MSWDO Municipal Social Welfare and Development Office", "0910-122-8971", "social"),
		seedHotline("MSWDO Municipal Social Welfare and Development Office", "0919-950-9515", "social"),
		seedHotline("BFP Bureau of Fire Protection - Pio Duran Fire Station", "0949-889-7134", "fire"),
		seedHotline("BFP Bureau of Fire Protection - Pio Duran Fire Station", "0931-929-3408", "fire"),
		seedHotline("PNP Philippine National Police - Pio Duran MPS", "0998-598-5946", "police"),
		seedHotline("MARITIME POLICE", "0917-500-2325", "police"),
		seedHotline("BJMP Bureau of Jail Management and Penology", "0936-572-9067", "police"),
		seedHotline("PCG Philippine Coast Guard - Pio Duran Sub Station", "0970-667-5457", "emergency"),
		seedHotline("RHU Rural Health Unit Pio Duran", "0927-943-4663", "medical"),
		seedHotline("RHU Rural Health Unit Pio Duran", "0907-640-7701", "medical"),
		seedHotline("PDMDH Pio Duran Memorial District Hospital", "0985-317-1769", "medical"),
	}
}

// DefaultMapLocations - объекты карты, которыми заполняется пустая таблица
func DefaultMapLocations() []models.MapLocation {
	return []models.MapLocation{
		{ID: 1, Type: models.LocationEvacuation, Name: "Pio Duran Central School", Address: "Poblacion, Pio Duran", Lat: 13.0547, Lng: 123.5214, Capacity: strPtr("500 persons")},
		{ID: 2, Type: models.LocationEvacuation, Name: "Pio Duran National High School", Address: "Barangay Salvacion", Lat: 13.0612, Lng: 123.5289, Capacity: strPtr("800 persons")},
		{ID: 3, Type: models.LocationEvacuation, Name: "Barangay Hall - Rawis", Address: "Barangay Rawis", Lat: 13.0489, Lng: 123.5156, Capacity: strPtr("200 persons")},
		{ID: 4, Type: models.LocationEvacuation, Name: "Covered Court - Malidong", Address: "Barangay Malidong", Lat: 13.0678, Lng: 123.5345, Capacity: strPtr("350 persons")},

		{ID: 5, Type: models.LocationHospital, Name: "Pio Duran Medicare Hospital", Address: "Poblacion, Pio Duran", Lat: 13.0534, Lng: 123.5198, Services: strPtr("24/7 Emergency")},
		{ID: 6, Type: models.LocationHospital, Name: "Barangay Health Center", Address: "Barangay Centro", Lat: 13.0567, Lng: 123.5234, Services: strPtr("Primary Care")},
		{ID: 7, Type: models.LocationHospital, Name: "Albay Provincial Hospital", Address: "Legazpi City (Nearest)", Lat: 13.1391, Lng: 123.7437, Services: strPtr("Full Hospital Services")},

		{ID: 8, Type: models.LocationPolice, Name: "Pio Duran Municipal Police Station", Address: "Poblacion, Pio Duran", Lat: 13.0551, Lng: 123.5208, Hotline: strPtr("166")},
		{ID: 9, Type: models.LocationPolice, Name: "Police Outpost - Rawis", Address: "Barangay Rawis", Lat: 13.0495, Lng: 123.5148, Hotline: strPtr("166")},

		{ID: 10, Type: models.LocationGovernment, Name: "Pio Duran Municipal Hall", Address: "Poblacion, Pio Duran", Lat: 13.0545, Lng: 123.5210, Services: strPtr("Municipal Services")},
		{ID: 11, Type: models.LocationGovernment, Name: "MDRRMO Office", Address: "Poblacion, Pio Duran", Lat: 13.0543, Lng: 123.5206, Services: strPtr("Disaster Response")},
		{ID: 12, Type: models.LocationGovernment, Name: "Bureau of Fire Protection", Address: "Poblacion, Pio Duran", Lat: 13.0549, Lng: 123.5215, Services: strPtr("Fire Emergency")},
	}
}
