package lead

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"oficio/models"
)

// Field names surfaced to the client, in Spanish per product copy.
const (
	fieldService     = "servicio"
	fieldQuote       = "cotización"
	fieldDate        = "fecha"
	fieldDescription = "descripción"
	fieldServiceType = "service_type"
)

// MinDescriptionLength is the minimum problem-description length, inclusive.
const MinDescriptionLength = 20

// descriptionFields are the candidate form fields for the derived problem
// description, highest priority first.
var descriptionFields = []string{"descripcion_problema", "descripcion", "detalles"}

// allowedServiceTypes is the closed set of values a present service_type
// answer may take.
var allowedServiceTypes = map[string]bool{
	"instalacion":   true,
	"reparacion":    true,
	"mantenimiento": true,
	"diagnostico":   true,
}

// Validate derives the submit-eligibility of a lead form. Every rule runs on
// every call, with no short-circuiting, so MissingFields and Errors are
// complete in a single pass. The function is pure and cheap enough to
// recompute on each input change.
//
// CanSubmit re-verifies the three presence checks on top of IsValid. The
// duplication is deliberate: it guards against partial state while a quote is
// being recomputed asynchronously.
func Validate(formData map[string]any, quote *models.Quote, service *models.Service, selectedDate *time.Time) models.ValidationState {
	missing := []string{}
	errs := map[string]string{}

	if service == nil || service.ID == "" {
		missing = append(missing, fieldService)
	}
	if quote == nil {
		missing = append(missing, fieldQuote)
	}
	if selectedDate == nil || selectedDate.IsZero() {
		missing = append(missing, fieldDate)
	}

	if utf8.RuneCountInString(DeriveDescription(formData)) < MinDescriptionLength {
		missing = append(missing, fieldDescription)
		errs[fieldDescription] = fmt.Sprintf("la descripción debe tener al menos %d caracteres", MinDescriptionLength)
	}

	// A present-but-invalid service_type records an error without a missing
	// field; it still flips IsValid through the errors map.
	if v, ok := formData[fieldServiceType]; ok {
		s, isString := v.(string)
		if !isString || !allowedServiceTypes[s] {
			errs[fieldServiceType] = "tipo de servicio no válido"
		}
	}

	isValid := len(missing) == 0 && len(errs) == 0
	return models.ValidationState{
		IsValid:       isValid,
		MissingFields: missing,
		Errors:        errs,
		CanSubmit:     isValid && quote != nil && service != nil && selectedDate != nil,
	}
}

// DeriveDescription returns the first non-empty candidate description field,
// trimmed, or "" when none is set.
func DeriveDescription(formData map[string]any) string {
	for _, key := range descriptionFields {
		v, ok := formData[key]
		if !ok {
			continue
		}
		if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return ""
}
