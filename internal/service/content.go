package service

import "github.com/shenikar/incident_reporting_system/internal/models"

// GoBagChecklist возвращает стандартный чек-лист тревожного рюкзака
func GoBagChecklist() []models.ChecklistItem {
	return []models.ChecklistItem{
		{ID: 1, Category: "Documents", Item: "Valid IDs (Photocopy)", Essential: true},
		{ID: 2, Category: "Documents", Item: "Insurance documents", Essential: true},
		{ID: 3, Category: "Documents", Item: "Emergency contact list", Essential: true},
		{ID: 4, Category: "Documents", Item: "Medical records/prescriptions", Essential: true},
		{ID: 5, Category: "Water & Food", Item: "Drinking water (3 liters/person)", Essential: true},
		{ID: 6, Category: "Water & Food", Item: "Canned goods (3-day supply)", Essential: true},
		{ID: 7, Category: "Water & Food", Item: "Ready-to-eat food", Essential: true},
		{ID: 8, Category: "Water & Food", Item: "Can opener", Essential: false},
		{ID: 9, Category: "First Aid", Item: "First aid kit", Essential: true},
		{ID: 10, Category: "First Aid", Item: "Prescription medications", Essential: true},
		{ID: 11, Category: "First Aid", Item: "Pain relievers", Essential: false},
		{ID: 12, Category: "First Aid", Item: "Bandages and antiseptic", Essential: false},
		{ID: 13, Category: "Tools & Safety", Item: "Flashlight with extra batteries", Essential: true},
		{ID: 14, Category: "Tools & Safety", Item: "Battery-powered radio", Essential: true},
		{ID: 15, Category: "Tools & Safety", Item: "Whistle (for signaling)", Essential: true},
		{ID: 16, Category: "Tools & Safety", Item: "Multi-tool or knife", Essential: false},
		{ID: 17, Category: "Clothing", Item: "Change of clothes", Essential: true},
		{ID: 18, Category: "Clothing", Item: "Rain gear/poncho", Essential: true},
		{ID: 19, Category: "Clothing", Item: "Sturdy shoes", Essential: true},
		{ID: 20, Category: "Clothing", Item: "Blanket or sleeping bag", Essential: false},
		{ID: 21, Category: "Communication", Item: "Fully charged power bank", Essential: true},
		{ID: 22, Category: "Communication", Item: "Phone charger", Essential: true},
		{ID: 23, Category: "Communication", Item: "Emergency cash (small bills)", Essential: true},
		{ID: 24, Category: "Hygiene", Item: "Toothbrush and toothpaste", Essential: false},
		{ID: 25, Category: "Hygiene", Item: "Soap and hand sanitizer", Essential: true},
		{ID: 26, Category: "Hygiene", Item: "Toilet paper", Essential: false},
		{ID: 27, Category: "Hygiene", Item: "Face masks", Essential: true},
	}
}

// Resources возвращает справочник организаций помощи
func Resources() models.SupportResources {
	return models.SupportResources{
		GovernmentAgencies: []models.Resource{
			{Name: "NDRRMC", Description: "National Disaster Risk Reduction and Management Council", Link: "https://ndrrmc.gov.ph"},
			{Name: "PAGASA", Description: "Philippine weather forecasts and warnings", Link: "https://bagong.pagasa.dost.gov.ph"},
			{Name: "PHIVOLCS", Description: "Volcanic and seismic monitoring", Link: "https://phivolcs.dost.gov.ph"},
			{Name: "OCD Region V", Description: "Office of Civil Defense Bicol Region", Link: "https://ocd.gov.ph"},
		},
		EmergencyAssistance: []models.Resource{
			{Name: "Philippine Red Cross", Description: "Disaster relief and blood services", Phone: "143"},
			{Name: "DSWD Hotline", Description: "Social welfare assistance", Phone: "8931-8101"},
			{Name: "DOH Health Emergency", Description: "24/7 health assistance", Phone: "1555"},
		},
		LocalResources: []models.Resource{
			{Name: "MDRRMO Pio Duran", Description: "Municipal Disaster Risk Reduction", Address: "Municipal Hall, Poblacion"},
			{Name: "Pio Duran Municipal Hall", Description: "Local government services", Address: "Poblacion, Pio Duran, Albay"},
		},
	}
}
