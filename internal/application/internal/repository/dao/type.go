package dao

type Application struct {
	ID        int64 `gorm:"primaryKey,autoIncrement"`
	JobID     int64 `gorm:"uniqueIndex:uniq_job_candidate;not null"`
	CompanyID int64 `gorm:"index:idx_company_status;not null;comment:冗余职位所属公司，方便公司维度的列表"`
	// 候选人的 uid
	CandidateID    int64  `gorm:"uniqueIndex:uniq_job_candidate;index:idx_candidate;not null"`
	CandidateName  string `gorm:"type:varchar(256);not null;default:''"`
	CandidateEmail string `gorm:"type:varchar(256);not null;default:''"`
	Status         uint8  `gorm:"type:tinyint(3);not null;default:1;index:idx_company_status;comment:1-APPLIED 2-SCREENING 3-INTERVIEW 4-HIRED 5-REJECTED"`
	Message        string `gorm:"type:text;comment:求职信"`
	ContactConsent bool   `gorm:"not null;default:false"`
	Ctime          int64  `gorm:"index:idx_ctime"`
	Utime          int64
}

func (Application) TableName() string {
	return "applications"
}

// Condition 列表的查询条件，零值表示不过滤
type Condition struct {
	CompanyID int64
	JobID     int64
	Status    uint8
	Search    string
	OrderBy   string
	Desc      bool
	Offset    int
	Limit     int
}

const (
	OrderByCtime = "ctime"
	OrderByName  = "candidate_name"
)

type StatusCount struct {
	Status uint8
	Cnt    int64
}

type JobCount struct {
	JobID int64
	Cnt   int64
}
