package models

// UserBookmark records that a user saved a plant.
// The (UserID, PlantID) pair is not unique; adding twice stores two rows.
type UserBookmark struct {
	ID      uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID  string `json:"userId" gorm:"not null;index;type:varchar(64)" validate:"required,max=64"`
	PlantID uint   `json:"plantId" gorm:"not null;index" validate:"required"`
}
