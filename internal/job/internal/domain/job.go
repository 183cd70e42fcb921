package domain

type Job struct {
	ID          int64
	CompanyID   int64
	Title       string
	Description string
	State       string
	City        string
	// 月薪范围，单位分
	SalaryMin int64
	SalaryMax int64
	// remote, hybrid, onsite
	WorkMode string
	// clt, pj, internship
	Type   string
	Level  string
	Status Status
	// 冗余的投递数，由投递事件累加，定时任务修正
	ApplicationsCount int64
	Ctime             int64
	Utime             int64
}

func (j Job) Open() bool {
	return j.Status == StatusOpen
}

type Status uint8

func (s Status) ToUint8() uint8 {
	return uint8(s)
}

const (
	StatusUnknown Status = iota
	StatusOpen
	StatusClosed
)

func (s Status) String() string {
	switch s {
	case StatusOpen:
		return "OPEN"
	case StatusClosed:
		return "CLOSED"
	default:
		return "UNKNOWN"
	}
}

func ParseStatus(str string) Status {
	switch str {
	case "OPEN", "open":
		return StatusOpen
	case "CLOSED", "closed":
		return StatusClosed
	default:
		return StatusUnknown
	}
}
