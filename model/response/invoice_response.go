package response

// RelayErrorResponse 中继接口失败响应
type RelayErrorResponse struct {
	Ok      bool        `json:"ok"`
	Error   interface{} `json:"error"`
	Raw     interface{} `json:"raw,omitempty"`
	Message string      `json:"message,omitempty"`
}

// UpstreamErrorResponse 服务商拒绝时 raw 字段必须出现，即使为 null
type UpstreamErrorResponse struct {
	Ok    bool        `json:"ok"`
	Error interface{} `json:"error"`
	Raw   interface{} `json:"raw"`
}

// RatesResponse 服务端当前价格表
type RatesResponse struct {
	Ok     bool               `json:"ok"`
	Status string             `json:"status"`
	Source string             `json:"source"`
	Rates  map[string]float64 `json:"rates"`
}
