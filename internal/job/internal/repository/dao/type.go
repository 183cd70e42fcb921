package dao

const (
	StatusOpen   uint8 = 1
	StatusClosed uint8 = 2
)

type Job struct {
	Id          int64  `gorm:"primaryKey,autoIncrement"`
	CompanyId   int64  `gorm:"not null;index:idx_company_utime"`
	Title       string `gorm:"type:varchar(256);not null"`
	Description string `gorm:"type:text"`
	State       string `gorm:"type:varchar(64)"`
	City        string `gorm:"type:varchar(128)"`
	SalaryMin   int64
	SalaryMax   int64
	WorkMode    string `gorm:"type:varchar(32)"`
	Type        string `gorm:"type:varchar(32)"`
	Level       string `gorm:"type:varchar(32)"`
	Status      uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:1=开放 2=关闭"`
	// 冗余字段，由投递事件累加
	ApplicationsCount int64 `gorm:"not null;default:0"`
	Ctime             int64 `gorm:"index:idx_ctime"`
	Utime             int64 `gorm:"index:idx_company_utime"`
}
