package model

type FlashLevel string

const (
	FlashLevelSuccess FlashLevel = "success"
	FlashLevelInfo    FlashLevel = "info"
	FlashLevelError   FlashLevel = "error"
)

type FlashMessage struct {
	Message string     `json:"message"`
	Level   FlashLevel `json:"level"`
}
