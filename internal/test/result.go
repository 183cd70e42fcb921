package test

// Result 和 ginx.Result 的 JSON 格式一致，Data 换成具体类型方便断言
type Result[T any] struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data T      `json:"data"`
}
