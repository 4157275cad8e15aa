package types

// NetworkResponse 监听到的一次api响应
type NetworkResponse struct {
	Url        string
	UrlPattern string
	StatusCode int
	Body       []byte
}
