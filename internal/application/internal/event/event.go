package event

import "strconv"

const (
	ApplicationEventTopic = "application_events"
	CandidateEventTopic   = "candidate_events"
)

const (
	TypeCreated       = "created"
	TypeStatusChanged = "status_changed"
)

// ApplicationEvent 投递记录发生了变化
type ApplicationEvent struct {
	Type        string `json:"type"`
	Aid         int64  `json:"aid"`
	JobID       int64  `json:"jobId"`
	CompanyID   int64  `json:"companyId"`
	CandidateID int64  `json:"candidateId"`
	Status      string `json:"status"`
	OldStatus   string `json:"oldStatus,omitempty"`
	Utime       int64  `json:"utime"`
}

func (ApplicationEvent) Topic() string {
	return ApplicationEventTopic
}

// Key 同一条投递的事件落在同一个分区
func (e ApplicationEvent) Key() string {
	return strconv.FormatInt(e.Aid, 10)
}

// CandidateEvent 候选人修改了资料，由 candidate 模块发出
type CandidateEvent struct {
	Uid   int64  `json:"uid"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
