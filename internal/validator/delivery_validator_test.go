package validator_test

import (
	"errors"
	"strings"
	"testing"

	"storefront/internal/domain/model"
	"storefront/internal/validator"

	"github.com/stretchr/testify/assert"
)

func TestDeliveryValidator(t *testing.T) {
	v := validator.NewDeliveryValidator()

	valid := model.DeliveryInfo{Name: "Taro", Email: "taro@example.com", Address: "Tokyo 1-2-3"}

	tests := []struct {
		name    string
		in      model.DeliveryInfo
		wantErr string
	}{
		{name: "ok", in: valid},
		{name: "trimmed ok", in: model.DeliveryInfo{Name: " Taro ", Email: " taro@example.com ", Address: " Tokyo "}},
		{name: "name missing", in: model.DeliveryInfo{Name: "  ", Email: valid.Email, Address: valid.Address}, wantErr: "name required"},
		{name: "email missing", in: model.DeliveryInfo{Name: valid.Name, Address: valid.Address}, wantErr: "email required"},
		{name: "address missing", in: model.DeliveryInfo{Name: valid.Name, Email: valid.Email}, wantErr: "address required"},
		{name: "email no at", in: model.DeliveryInfo{Name: valid.Name, Email: "taro.example.com", Address: valid.Address}, wantErr: "invalid email"},
		{name: "email no domain dot", in: model.DeliveryInfo{Name: valid.Name, Email: "taro@example", Address: valid.Address}, wantErr: "invalid email"},
		{name: "name too long", in: model.DeliveryInfo{Name: strings.Repeat("a", 101), Email: valid.Email, Address: valid.Address}, wantErr: "name too long"},
		{name: "address too long", in: model.DeliveryInfo{Name: valid.Name, Email: valid.Email, Address: strings.Repeat("a", 256)}, wantErr: "address too long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateDelivery(tt.in)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.True(t, errors.Is(err, validator.ErrInvalidInput))
			}
		})
	}
}
