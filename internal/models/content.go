package models

// ChecklistItem - пункт чек-листа тревожного рюкзака
type ChecklistItem struct {
	ID        int    `json:"id"`
	Category  string `json:"category"`
	Item      string `json:"item"`
	Essential bool   `json:"essential"`
}

// Resource - организация из справочника помощи
type Resource struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Link        string `json:"link,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
}

// SupportResources - справочник организаций, сгруппированный по видам
type SupportResources struct {
	GovernmentAgencies  []Resource `json:"government_agencies"`
	EmergencyAssistance []Resource `json:"emergency_assistance"`
	LocalResources      []Resource `json:"local_resources"`
}
