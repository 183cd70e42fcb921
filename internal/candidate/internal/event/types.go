package event

import "strconv"

const CandidateEventTopic = "candidate_events"

// CandidateEvent 投递记录上冗余了姓名和邮箱，资料变了就通知一下
type CandidateEvent struct {
	Uid   int64  `json:"uid"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Key 同一个候选人的资料变更按顺序消费
func (e CandidateEvent) Key() string {
	return strconv.FormatInt(e.Uid, 10)
}
