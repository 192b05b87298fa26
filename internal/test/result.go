package test

// Result 与 ginx.Result 同构, 泛型化之后测试里能拿到具体类型的 Data
type Result[T any] struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data T      `json:"data"`
}
