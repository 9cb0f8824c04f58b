package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestMaterialValid(t *testing.T) {
	for _, m := range Materials {
		assert.True(t, m.Valid(), "expected %s to be valid", m)
	}

	assert.False(t, Material("Granite").Valid())
	assert.False(t, Material("sand").Valid(), "material names are case sensitive")
	assert.False(t, Material("").Valid())
}

func TestPaymentMethodValid(t *testing.T) {
	assert.True(t, PaymentCash.Valid())
	assert.True(t, PaymentPhonePe.Valid())
	assert.False(t, PaymentMethod("UPI").Valid())
	assert.False(t, PaymentMethod("").Valid())
}

func TestMaterialLogPrepare(t *testing.T) {
	log := &MaterialLog{Material: MaterialSand, Amount: 100, Date: "2024-01-01"}
	log.Prepare()

	assert.NotEqual(t, uuid.Nil, log.ID)
	assert.Equal(t, PaymentCash, log.PaymentMethod, "payment method defaults to cash")

	// An explicit ID and payment method survive Prepare.
	id := uuid.New()
	log = &MaterialLog{ID: id, PaymentMethod: PaymentPhonePe}
	log.Prepare()
	assert.Equal(t, id, log.ID)
	assert.Equal(t, PaymentPhonePe, log.PaymentMethod)
}
