package lead

import (
	"strings"
	"testing"
	"time"

	"oficio/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() map[string]any {
	return map[string]any{
		"descripcion_problema": "El minisplit gotea agua dentro de la sala",
	}
}

func validService() *models.Service {
	return &models.Service{ID: "svc-1", Name: "Mantenimiento de minisplit", MinPrice: 350}
}

func validQuote() *models.Quote {
	return &models.Quote{BasePrice: 350, TaxRate: 0.16}
}

func futureDate() *time.Time {
	d := time.Now().Add(72 * time.Hour)
	return &d
}

func TestValidate_AllMissing(t *testing.T) {
	state := Validate(map[string]any{}, nil, nil, nil)

	assert.False(t, state.IsValid)
	assert.False(t, state.CanSubmit)
	for _, field := range []string{"servicio", "cotización", "fecha", "descripción"} {
		assert.Contains(t, state.MissingFields, field)
	}
}

func TestValidate_CompleteFormSubmits(t *testing.T) {
	state := Validate(validForm(), validQuote(), validService(), futureDate())

	assert.True(t, state.IsValid)
	assert.True(t, state.CanSubmit)
	assert.Empty(t, state.MissingFields)
	assert.Empty(t, state.Errors)
}

func TestValidate_DescriptionLengthBoundary(t *testing.T) {
	t.Run("exactly twenty characters passes", func(t *testing.T) {
		form := map[string]any{"descripcion_problema": strings.Repeat("a", 20)}
		state := Validate(form, validQuote(), validService(), futureDate())

		assert.NotContains(t, state.MissingFields, "descripción")
		assert.True(t, state.CanSubmit)
	})

	t.Run("nineteen characters fails", func(t *testing.T) {
		form := map[string]any{"descripcion_problema": strings.Repeat("a", 19)}
		state := Validate(form, validQuote(), validService(), futureDate())

		assert.Contains(t, state.MissingFields, "descripción")
		require.Contains(t, state.Errors, "descripción")
		assert.Contains(t, state.Errors["descripción"], "20")
		assert.False(t, state.CanSubmit)
	})

	t.Run("accented characters count as one", func(t *testing.T) {
		form := map[string]any{"descripcion_problema": strings.Repeat("á", 20)}
		state := Validate(form, validQuote(), validService(), futureDate())

		assert.NotContains(t, state.MissingFields, "descripción")
	})
}

func TestValidate_DescriptionPriorityOrder(t *testing.T) {
	form := map[string]any{
		"detalles":             "detalle de respaldo que alcanza el mínimo",
		"descripcion_problema": "la primera opción siempre gana la prioridad",
	}

	assert.Equal(t, "la primera opción siempre gana la prioridad", DeriveDescription(form))

	delete(form, "descripcion_problema")
	assert.Equal(t, "detalle de respaldo que alcanza el mínimo", DeriveDescription(form))
}

func TestValidate_ServiceTypeClosedSet(t *testing.T) {
	t.Run("invalid value records error without missing field", func(t *testing.T) {
		form := validForm()
		form["service_type"] = "exorcismo"
		state := Validate(form, validQuote(), validService(), futureDate())

		assert.NotContains(t, state.MissingFields, "service_type")
		assert.Contains(t, state.Errors, "service_type")
		assert.False(t, state.IsValid, "a field error alone must flip IsValid")
		assert.False(t, state.CanSubmit)
	})

	t.Run("allowed value passes", func(t *testing.T) {
		form := validForm()
		form["service_type"] = "reparacion"
		state := Validate(form, validQuote(), validService(), futureDate())

		assert.NotContains(t, state.Errors, "service_type")
		assert.True(t, state.CanSubmit)
	})

	t.Run("absent key is not checked", func(t *testing.T) {
		state := Validate(validForm(), validQuote(), validService(), futureDate())
		assert.NotContains(t, state.Errors, "service_type")
	})
}

func TestValidate_ServiceWithoutIDIsMissing(t *testing.T) {
	state := Validate(validForm(), validQuote(), &models.Service{}, futureDate())

	assert.Contains(t, state.MissingFields, "servicio")
	assert.False(t, state.CanSubmit)
}

func TestValidate_ZeroDateIsMissing(t *testing.T) {
	var zero time.Time
	state := Validate(validForm(), validQuote(), validService(), &zero)

	assert.Contains(t, state.MissingFields, "fecha")
	assert.False(t, state.CanSubmit)
}

func TestValidate_AllRulesRunEveryCall(t *testing.T) {
	// No short-circuiting: a missing service must not hide the description
	// and service_type findings.
	form := map[string]any{"service_type": 42}
	state := Validate(form, nil, nil, nil)

	assert.Contains(t, state.MissingFields, "servicio")
	assert.Contains(t, state.MissingFields, "descripción")
	assert.Contains(t, state.Errors, "service_type")
}
