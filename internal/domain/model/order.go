package model

import "time"

// 配送先（チェックアウト時の入力）
type DeliveryInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// 直近の注文。サーバーには保存せず、セッションのカート状態にだけ残す。
type Order struct {
	ID           string       `json:"id"`
	DeliveryInfo DeliveryInfo `json:"delivery_info"`
	ProductIDs   []string     `json:"product_ids"`
	Price        int64        `json:"price"`
	Date         time.Time    `json:"date"`
}
