package event

import (
	"fmt"

	"github.com/danielgtaylor/huma/v2"
)

type Type string

const (
	TypeVaccination Type = "Vaccination"
	TypeMedication  Type = "Medication"
	TypeDoctorVisit Type = "Doctor Visit"
	TypeDisease     Type = "Disease"
	TypeMeasurement Type = "Measurement"
	TypeOther       Type = "Other"
)

// Types lists every valid event type, in the order the entry form offers them.
var Types = []Type{
	TypeVaccination,
	TypeMedication,
	TypeDoctorVisit,
	TypeDisease,
	TypeMeasurement,
	TypeOther,
}

func (Type) Schema() huma.Schema {
	enum := make([]any, len(Types))
	for i, t := range Types {
		enum[i] = string(t)
	}
	return huma.Schema{
		Type:        "string",
		Enum:        enum,
		Description: "Timeline event category",
		Examples:    []any{TypeDoctorVisit},
	}
}

func (t Type) Validate() error {
	switch t {
	case TypeVaccination, TypeMedication, TypeDoctorVisit, TypeDisease, TypeMeasurement, TypeOther:
		return nil
	}
	return fmt.Errorf("invalid event type: %s", t)
}

func (t Type) String() string {
	return string(t)
}

type VisitType string

const (
	VisitCasual  VisitType = "Casual Visit"
	VisitSerious VisitType = "Serious Visit"
)

func (v VisitType) Validate() error {
	switch v {
	case VisitCasual, VisitSerious:
		return nil
	}
	return fmt.Errorf("invalid visit type: %s", v)
}

type MedicationStatus string

const (
	StatusActive  MedicationStatus = "Active"
	StatusStopped MedicationStatus = "Stopped"
)

func (s MedicationStatus) Validate() error {
	switch s {
	case StatusActive, StatusStopped:
		return nil
	}
	return fmt.Errorf("invalid medication status: %s", s)
}
