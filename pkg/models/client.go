package models

type Client struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	IsVIP bool   `json:"is_vip"`
}
