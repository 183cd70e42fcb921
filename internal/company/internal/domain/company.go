package domain

type Company struct {
	ID   int64
	Name string
	// 官网
	Site  string
	State string
	City  string
	Ctime int64
	Utime int64
}
