package event

const (
	applicationEventTopic = "application_events"

	typeCreated = "created"
)

// ApplicationEvent 投递模块发出的事件，这里只关心职位相关的字段
type ApplicationEvent struct {
	Type  string `json:"type"`
	Aid   int64  `json:"aid"`
	JobID int64  `json:"jobId"`
}
