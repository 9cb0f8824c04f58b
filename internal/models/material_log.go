package models

import (
	"time"

	"github.com/google/uuid"
)

// Material is one of the five tracked expenditure categories.
type Material string

const (
	MaterialSand   Material = "Sand"
	MaterialCement Material = "Cement"
	MaterialLabour Material = "Labour"
	MaterialMetal  Material = "Metal"
	MaterialIron   Material = "Iron"
)

// Materials lists every recognized material in display order. Reports and
// totals iterate this slice so all five rows always appear.
var Materials = []Material{MaterialSand, MaterialCement, MaterialLabour, MaterialMetal, MaterialIron}

func (m Material) Valid() bool {
	for _, known := range Materials {
		if m == known {
			return true
		}
	}
	return false
}

type PaymentMethod string

const (
	PaymentCash    PaymentMethod = "Cash"
	PaymentPhonePe PaymentMethod = "PhonePe"
)

var PaymentMethods = []PaymentMethod{PaymentCash, PaymentPhonePe}

func (p PaymentMethod) Valid() bool {
	return p == PaymentCash || p == PaymentPhonePe
}

// MaterialLog is a dated expenditure entry for one material category,
// scoped to a project (sibling to phases, not nested under one).
type MaterialLog struct {
	ID            uuid.UUID     `json:"id"`
	ProjectID     uuid.UUID     `json:"projectId"`
	Material      Material      `json:"material"`
	Amount        float64       `json:"amount"`
	Quantity      *string       `json:"quantity,omitempty"` // free text, e.g. "3 loads"
	Date          string        `json:"date"`               // calendar date, YYYY-MM-DD
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	PaymentDone   bool          `json:"paymentDone"`
	Timestamp     time.Time     `json:"timestamp"`
}

func (l *MaterialLog) Prepare() {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	if l.PaymentMethod == "" {
		l.PaymentMethod = PaymentCash
	}
}
