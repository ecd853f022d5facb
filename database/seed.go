package database

import (
	"time"

	"github.com/beego/beego/v2/client/orm"
	"github.com/google/uuid"

	"github.com/rocbird/talentos_api/models"
)

// Seed limpia las tablas y carga los datos de demostración: cuatro
// referentes técnicos, un plantel de talentos en todos los niveles y un
// historial de interacciones en distintos estados.
func Seed(o orm.Ormer) error {
	// Limpieza en orden de dependencias.
	for _, table := range []string{"interaccion", "talento", "referente_tecnico"} {
		if _, err := o.Raw("DELETE FROM " + table).Exec(); err != nil {
			return err
		}
	}

	ana := &models.ReferenteTecnico{
		ID:              uuid.NewString(),
		NombreYApellido: "Ana García",
		Email:           "ana.garcia@rocbird.com",
		Especialidad:    "Frontend Development",
	}
	carlos := &models.ReferenteTecnico{
		ID:              uuid.NewString(),
		NombreYApellido: "Carlos Rodríguez",
		Email:           "carlos.rodriguez@rocbird.com",
		Especialidad:    "Backend Development",
	}
	maria := &models.ReferenteTecnico{
		ID:              uuid.NewString(),
		NombreYApellido: "María López",
		Email:           "maria.lopez@rocbird.com",
		Especialidad:    "DevOps & Infrastructure",
	}
	diego := &models.ReferenteTecnico{
		ID:              uuid.NewString(),
		NombreYApellido: "Diego Fernández",
		Email:           "diego.fernandez@rocbird.com",
		Especialidad:    "Full Stack Development",
	}
	for _, r := range []*models.ReferenteTecnico{ana, carlos, maria, diego} {
		if _, err := o.Insert(r); err != nil {
			return err
		}
	}

	talentos := []*models.Talento{
		{NombreYApellido: "Juan Pérez", Seniority: models.SeniorityJunior, Rol: "Frontend Developer", Estado: models.TalentoActivo, Lider: ana, Mentor: ana},
		{NombreYApellido: "Valentina Castro", Seniority: models.SeniorityJunior, Rol: "React Developer", Estado: models.TalentoActivo, Lider: ana, Mentor: ana},
		{NombreYApellido: "Matías González", Seniority: models.SenioritySemiSenior, Rol: "Frontend Developer", Estado: models.TalentoActivo, Lider: ana, Mentor: diego},
		{NombreYApellido: "Laura Martínez", Seniority: models.SenioritySemiSenior, Rol: "Backend Developer", Estado: models.TalentoActivo, Lider: carlos, Mentor: carlos},
		{NombreYApellido: "Pedro Sánchez", Seniority: models.SenioritySenior, Rol: "Backend Developer", Estado: models.TalentoActivo, Lider: carlos, Mentor: diego},
		{NombreYApellido: "Sofía Ramírez", Seniority: models.SenioritySenior, Rol: "DevOps Engineer", Estado: models.TalentoActivo, Lider: maria, Mentor: maria},
		{NombreYApellido: "Lucas Torres", Seniority: models.SeniorityLead, Rol: "Tech Lead", Estado: models.TalentoActivo, Lider: diego, Mentor: nil},
		{NombreYApellido: "Camila Herrera", Seniority: models.SenioritySemiSenior, Rol: "QA Analyst", Estado: models.TalentoInactivo, Lider: nil, Mentor: nil},
	}
	for _, t := range talentos {
		t.ID = uuid.NewString()
		if _, err := o.Insert(t); err != nil {
			return err
		}
	}

	now := time.Now()
	interacciones := []*models.Interaccion{
		{Talento: talentos[0], TipoDeInteraccion: models.InteraccionReunion1a1, Detalle: "Seguimiento semanal: avances en el rediseño del dashboard", Estado: models.InteraccionFinalizada, Fecha: now.AddDate(0, 0, -14)},
		{Talento: talentos[0], TipoDeInteraccion: models.InteraccionCodeReview, Detalle: "Revisión del módulo de autenticación, pendiente refactor de hooks", Estado: models.InteraccionEnProgreso, Fecha: now.AddDate(0, 0, -3)},
		{Talento: talentos[1], TipoDeInteraccion: models.InteraccionMentoria, Detalle: "Sesión de mentoría sobre testing de componentes React", Estado: models.InteraccionIniciada, Fecha: now.AddDate(0, 0, -1)},
		{Talento: talentos[2], TipoDeInteraccion: models.InteraccionEvaluacion, Detalle: "Evaluación semestral de desempeño y plan de carrera", Estado: models.InteraccionFinalizada, Fecha: now.AddDate(0, -1, 0)},
		{Talento: talentos[3], TipoDeInteraccion: models.InteraccionFeedback, Detalle: "Feedback sobre el diseño del servicio de facturación", Estado: models.InteraccionFinalizada, Fecha: now.AddDate(0, 0, -7)},
		{Talento: talentos[4], TipoDeInteraccion: models.InteraccionCapacitacion, Detalle: "Capacitación interna en observabilidad y tracing distribuido", Estado: models.InteraccionEnProgreso, Fecha: now.AddDate(0, 0, -2)},
		{Talento: talentos[5], TipoDeInteraccion: models.InteraccionReunion1a1, Detalle: "Revisión de objetivos del trimestre y carga de guardias", Estado: models.InteraccionIniciada, Fecha: now},
		{Talento: talentos[6], TipoDeInteraccion: models.InteraccionOtro, Detalle: "Planificación de la rotación de equipos del próximo trimestre", Estado: models.InteraccionCancelada, Fecha: now.AddDate(0, 0, -10)},
	}
	for _, i := range interacciones {
		i.ID = uuid.NewString()
		if _, err := o.Insert(i); err != nil {
			return err
		}
	}

	return nil
}
