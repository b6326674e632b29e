package models

// Plant represents a medicinal plant in the catalog.
type Plant struct {
	ID                 uint     `json:"id" gorm:"primaryKey;autoIncrement"`
	CommonName         string   `json:"commonName" gorm:"not null" validate:"required,max=200"`
	BotanicalName      string   `json:"botanicalName" gorm:"not null" validate:"required,max=200"`
	Region             string   `json:"region" gorm:"not null;index" validate:"required,max=200"`
	Habitat            string   `json:"habitat" gorm:"not null" validate:"required"`
	MedicinalUses      string   `json:"medicinalUses" gorm:"not null" validate:"required"`
	Cultivation        string   `json:"cultivation" gorm:"not null" validate:"required"`
	PrimaryUse         string   `json:"primaryUse" gorm:"not null" validate:"required"`
	Category           string   `json:"category" gorm:"not null;index" validate:"required,max=100"`
	ImageURL           string   `json:"imageUrl" gorm:"not null" validate:"required"`
	ModelURL           string   `json:"modelUrl,omitempty"` // path or URL of the .glb model, optional
	PreparationMethods []string `json:"preparationMethods" gorm:"type:text;serializer:json" validate:"dive,required"`
	AyushSystem        string   `json:"ayushSystem" gorm:"not null" validate:"required,max=100"` // Ayurveda, Unani, Siddha, ...
	IsPopular          bool     `json:"isPopular" gorm:"not null"`
}
