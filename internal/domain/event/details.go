package event

// Details carries the category-specific fields of an event. Each event type
// that has extra fields gets its own variant, so a medication status can never
// appear on a vaccination. Absence of a field means "not applicable".
type Details interface {
	EventType() Type
	Validate() error
}

// VisitDetails belongs to Doctor Visit events. Disease and medication names
// are only recorded for serious visits.
type VisitDetails struct {
	VisitType             VisitType `json:"visitType,omitempty"`
	DiseaseName           string    `json:"diseaseName,omitempty"`
	MedicationsPrescribed string    `json:"medicationsPrescribed,omitempty"`
}

func (d *VisitDetails) EventType() Type {
	return TypeDoctorVisit
}

func (d *VisitDetails) Validate() error {
	if d.VisitType != "" {
		return d.VisitType.Validate()
	}
	return nil
}

// MedicationDetails belongs to Medication events.
type MedicationDetails struct {
	Status MedicationStatus `json:"status,omitempty"`
}

func (d *MedicationDetails) EventType() Type {
	return TypeMedication
}

func (d *MedicationDetails) Validate() error {
	if d.Status != "" {
		return d.Status.Validate()
	}
	return nil
}

// MeasurementDetails belongs to Measurement events. Height and weight are
// free-text so users can keep their own units.
type MeasurementDetails struct {
	Height string `json:"height,omitempty"`
	Weight string `json:"weight,omitempty"`
}

func (d *MeasurementDetails) EventType() Type {
	return TypeMeasurement
}

func (d *MeasurementDetails) Validate() error {
	return nil
}

// NewDetails returns an empty details variant for the given type, or false
// when the type carries no extra fields.
func NewDetails(t Type) (Details, bool) {
	switch t {
	case TypeDoctorVisit:
		return &VisitDetails{}, true
	case TypeMedication:
		return &MedicationDetails{}, true
	case TypeMeasurement:
		return &MeasurementDetails{}, true
	default:
		return nil, false
	}
}
