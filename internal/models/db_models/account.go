package db_models

type Account struct {
	BaseModel
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	FullName     string
	IsActive     bool `gorm:"default:true"`

	Subscription *Subscription `gorm:"foreignKey:AccountID"`
	ApiKeys      []ApiKey      `gorm:"foreignKey:AccountID"`
	Generations  []Generation  `gorm:"foreignKey:AccountID"`
}
