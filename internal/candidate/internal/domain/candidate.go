package domain

// Candidate 候选人资料，ID 就是 uid
type Candidate struct {
	ID       int64
	Name     string
	Email    string
	Phone    string
	Headline string
	State    string
	City     string
	Ctime    int64
	Utime    int64
}
