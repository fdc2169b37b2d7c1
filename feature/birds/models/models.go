package models

// RegionStat represents a row of the 'stats' table: one bird in one region.
type RegionStat struct {
	ProgrammaticName string   `gorm:"column:programmatic_name;primaryKey;type:varchar(255)"`
	RegionCode       string   `gorm:"column:region_code;primaryKey;type:varchar(32)"`
	Genus            string   `gorm:"column:genus;type:varchar(255)"`
	AbundanceMean    *float64 `gorm:"column:abundance_mean"` // nil ranks lowest
}

// TableName overrides the table name.
func (RegionStat) TableName() string {
	return "stats"
}

// Image represents a row of the 'images' table.
type Image struct {
	ProgrammaticName string `gorm:"column:programmatic_name;index;type:varchar(255)"`
	Filepath         string `gorm:"column:filepath;primaryKey;type:varchar(1024)"`
	Excluded         bool   `gorm:"column:delete;not null;default:false"` // soft delete flag
}

// TableName overrides the table name.
func (Image) TableName() string {
	return "images"
}

// Bird is a single sampled image of a bird as returned by the API.
type Bird struct {
	ProgrammaticName string `json:"programmatic_name"`
	Filepath         string `json:"filepath"`
}
