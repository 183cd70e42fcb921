package domain

import (
	"errors"
	"strings"
)

var ErrInvalidStatus = errors.New("非法的投递状态")

type Application struct {
	ID             int64
	JobID          int64
	CompanyID      int64
	// 投递时的候选人快照，资料更新后通过 candidate_events 同步
	Candidate      Candidate
	Status         Status
	Message        string
	ContactConsent bool
	Ctime          int64
	Utime          int64
}

type Candidate struct {
	// 就是候选人的 uid
	ID    int64
	Name  string
	Email string
}

// Status 投递状态，任意状态之间都可以互相流转，包括 HIRED 和 REJECTED
type Status uint8

func (s Status) ToUint8() uint8 {
	return uint8(s)
}

const (
	StatusUnknown Status = iota
	StatusApplied
	StatusScreening
	StatusInterview
	StatusHired
	StatusRejected
)

// Statuses 按照看板的顺序返回所有合法状态
func Statuses() []Status {
	return []Status{StatusApplied, StatusScreening, StatusInterview, StatusHired, StatusRejected}
}

func (s Status) String() string {
	switch s {
	case StatusApplied:
		return "APPLIED"
	case StatusScreening:
		return "SCREENING"
	case StatusInterview:
		return "INTERVIEW"
	case StatusHired:
		return "HIRED"
	case StatusRejected:
		return "REJECTED"
	default:
		return "UNKNOWN"
	}
}

func (s Status) Valid() bool {
	return s >= StatusApplied && s <= StatusRejected
}

// StatusMeta 前端展示用的文案和颜色
type StatusMeta struct {
	Label string
	Color string
}

func (s Status) Meta() StatusMeta {
	switch s {
	case StatusApplied:
		return StatusMeta{Label: "Candidatura recebida", Color: "blue"}
	case StatusScreening:
		return StatusMeta{Label: "Em triagem", Color: "yellow"}
	case StatusInterview:
		return StatusMeta{Label: "Entrevista", Color: "purple"}
	case StatusHired:
		return StatusMeta{Label: "Contratado", Color: "green"}
	case StatusRejected:
		return StatusMeta{Label: "Reprovado", Color: "red"}
	default:
		return StatusMeta{Label: "Desconhecido", Color: "gray"}
	}
}

// ParseStatus 大小写不敏感
func ParseStatus(str string) (Status, error) {
	switch strings.ToUpper(strings.TrimSpace(str)) {
	case "APPLIED":
		return StatusApplied, nil
	case "SCREENING":
		return StatusScreening, nil
	case "INTERVIEW":
		return StatusInterview, nil
	case "HIRED":
		return StatusHired, nil
	case "REJECTED":
		return StatusRejected, nil
	default:
		return StatusUnknown, ErrInvalidStatus
	}
}

// StatusCount 看板头部每一列的数量
type StatusCount struct {
	Status Status
	Count  int64
}
