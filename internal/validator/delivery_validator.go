package validator

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"storefront/internal/domain/model"
	"storefront/internal/usecase"
)

var (
	// 入力が不正
	ErrInvalidInput = errors.New("invalid input")
)

// 簡易メール形式
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const (
	maxNameLen    = 100
	maxEmailLen   = 254
	maxAddressLen = 255
)

type deliveryValidator struct{}

// Usecaseは interface を依存注入
func NewDeliveryValidator() usecase.DeliveryValidator {
	return deliveryValidator{}
}

// 配送先の入力を検証
func (deliveryValidator) ValidateDelivery(info model.DeliveryInfo) error {
	name := strings.TrimSpace(info.Name)
	email := strings.TrimSpace(info.Email)
	address := strings.TrimSpace(info.Address)

	// 必須チェック
	if name == "" {
		return fmt.Errorf("%w: name required", ErrInvalidInput)
	}
	if email == "" {
		return fmt.Errorf("%w: email required", ErrInvalidInput)
	}
	if address == "" {
		return fmt.Errorf("%w: address required", ErrInvalidInput)
	}

	if len(name) > maxNameLen {
		return fmt.Errorf("%w: name too long", ErrInvalidInput)
	}
	if len(email) > maxEmailLen || !emailRe.MatchString(email) {
		return fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	if len(address) > maxAddressLen {
		return fmt.Errorf("%w: address too long", ErrInvalidInput)
	}

	return nil
}
