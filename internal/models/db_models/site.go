package db_models

// Site scopes all configurator content; the same backend serves multiple
// branded frontends.
type Site struct {
	BaseModel
	Slug string `gorm:"uniqueIndex;not null" json:"slug"`
	Name string `gorm:"not null" json:"name"`
}

func (Site) TableName() string { return "sites" }
