package models

import "strings"

// Seniority es el nivel de carrera de un talento.
type Seniority string

const (
	SeniorityJunior     Seniority = "JUNIOR"
	SenioritySemiSenior Seniority = "SEMI_SENIOR"
	SenioritySenior     Seniority = "SENIOR"
	SeniorityLead       Seniority = "LEAD"
	SeniorityArchitect  Seniority = "ARCHITECT"
)

// Valid indica si el valor pertenece al conjunto cerrado de seniorities.
func (s Seniority) Valid() bool {
	switch s {
	case SeniorityJunior, SenioritySemiSenior, SenioritySenior, SeniorityLead, SeniorityArchitect:
		return true
	}
	return false
}

// SeniorityValues lista los valores aceptados, en orden de carrera.
func SeniorityValues() []Seniority {
	return []Seniority{SeniorityJunior, SenioritySemiSenior, SenioritySenior, SeniorityLead, SeniorityArchitect}
}

// EstadoTalento es el estado de actividad de un talento.
type EstadoTalento string

const (
	TalentoActivo   EstadoTalento = "ACTIVO"
	TalentoInactivo EstadoTalento = "INACTIVO"
)

func (e EstadoTalento) Valid() bool {
	switch e {
	case TalentoActivo, TalentoInactivo:
		return true
	}
	return false
}

// TipoInteraccion clasifica el evento registrado sobre un talento.
type TipoInteraccion string

const (
	InteraccionReunion1a1   TipoInteraccion = "REUNION_1_1"
	InteraccionCodeReview   TipoInteraccion = "CODE_REVIEW"
	InteraccionMentoria     TipoInteraccion = "MENTORIA"
	InteraccionEvaluacion   TipoInteraccion = "EVALUACION"
	InteraccionFeedback     TipoInteraccion = "FEEDBACK"
	InteraccionCapacitacion TipoInteraccion = "CAPACITACION"
	InteraccionOtro         TipoInteraccion = "OTRO"
)

func (t TipoInteraccion) Valid() bool {
	switch t {
	case InteraccionReunion1a1, InteraccionCodeReview, InteraccionMentoria,
		InteraccionEvaluacion, InteraccionFeedback, InteraccionCapacitacion, InteraccionOtro:
		return true
	}
	return false
}

func TipoInteraccionValues() []TipoInteraccion {
	return []TipoInteraccion{
		InteraccionReunion1a1, InteraccionCodeReview, InteraccionMentoria,
		InteraccionEvaluacion, InteraccionFeedback, InteraccionCapacitacion, InteraccionOtro,
	}
}

// EstadoInteraccion es el estado de avance de una interacción. El ciclo
// esperado es INICIADA -> EN_PROGRESO -> FINALIZADA, con CANCELADA como
// salida desde los dos primeros; el servidor no valida transiciones.
type EstadoInteraccion string

const (
	InteraccionIniciada   EstadoInteraccion = "INICIADA"
	InteraccionEnProgreso EstadoInteraccion = "EN_PROGRESO"
	InteraccionFinalizada EstadoInteraccion = "FINALIZADA"
	InteraccionCancelada  EstadoInteraccion = "CANCELADA"
)

func (e EstadoInteraccion) Valid() bool {
	switch e {
	case InteraccionIniciada, InteraccionEnProgreso, InteraccionFinalizada, InteraccionCancelada:
		return true
	}
	return false
}

func joinValues[T ~string](values []T) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, string(v))
	}
	return strings.Join(parts, ", ")
}

// SeniorityList y TipoInteraccionList se usan en mensajes de validación.
func SeniorityList() string       { return joinValues(SeniorityValues()) }
func TipoInteraccionList() string { return joinValues(TipoInteraccionValues()) }
