package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/rocbird/talentos_api/helpers"
	internaldto "github.com/rocbird/talentos_api/internal/dto"
	"github.com/rocbird/talentos_api/models"
)

func crearInteraccionPrueba(t *testing.T, talentoID string, tipo models.TipoInteraccion, detalle string) internaldto.InteraccionDTO {
	t.Helper()
	d, err := CrearInteraccion(context.Background(), internaldto.InteraccionCreate{
		TalentoID:         talentoID,
		TipoDeInteraccion: tipo,
		Detalle:           detalle,
	})
	if err != nil {
		t.Fatalf("creando interacción de prueba: %v", err)
	}
	return *d
}

func TestCrearInteraccion(t *testing.T) {
	ctx := context.Background()

	Convey("Dada la creación de interacciones", t, func() {
		limpiarBase(t)

		Convey("Sin estado ni fecha se aplican INICIADA y el momento actual", func() {
			talento := crearTalentoPrueba(t, "Juan Pérez", "Dev", models.SeniorityJunior)

			antes := time.Now()
			d, err := CrearInteraccion(ctx, internaldto.InteraccionCreate{
				TalentoID:         talento.ID,
				TipoDeInteraccion: models.InteraccionReunion1a1,
				Detalle:           "Revisión de objetivos del primer trimestre",
			})
			So(err, ShouldBeNil)
			So(d.ID, ShouldNotBeEmpty)
			So(d.TalentoID, ShouldEqual, talento.ID)
			So(d.Estado, ShouldEqual, models.InteraccionIniciada)
			So(d.Fecha, ShouldHappenOnOrBetween, antes, time.Now())
			So(d.Talento, ShouldNotBeNil)
			So(d.Talento.NombreYApellido, ShouldEqual, "Juan Pérez")
		})

		Convey("Un estado y una fecha explícitos se respetan", func() {
			talento := crearTalentoPrueba(t, "Juan Pérez", "Dev", models.SeniorityJunior)
			fecha := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

			d, err := CrearInteraccion(ctx, internaldto.InteraccionCreate{
				TalentoID:         talento.ID,
				TipoDeInteraccion: models.InteraccionFeedback,
				Detalle:           "Feedback del primer mes de trabajo",
				Estado:            models.InteraccionEnProgreso,
				Fecha:             &fecha,
			})
			So(err, ShouldBeNil)
			So(d.Estado, ShouldEqual, models.InteraccionEnProgreso)
			So(d.Fecha.Equal(fecha), ShouldBeTrue)
		})

		Convey("Un talento inexistente responde 400 TALENTO_NOT_FOUND sin crear fila", func() {
			_, err := CrearInteraccion(ctx, internaldto.InteraccionCreate{
				TalentoID:         uuid.NewString(),
				TipoDeInteraccion: models.InteraccionMentoria,
				Detalle:           "Mentoría con un talento que no existe",
			})
			So(err, ShouldNotBeNil)
			appErr := comoAppError(err)
			So(appErr.Status, ShouldEqual, http.StatusBadRequest)
			So(appErr.Code, ShouldEqual, helpers.CodeTalentoNotFound)

			total, cErr := ormer().QueryTable(new(models.Interaccion)).Count()
			So(cErr, ShouldBeNil)
			So(total, ShouldEqual, 0)
		})
	})
}

func TestListarInteracciones(t *testing.T) {
	ctx := context.Background()

	Convey("Dado el listado de interacciones", t, func() {
		limpiarBase(t)

		juan := crearTalentoPrueba(t, "Juan Pérez", "Dev", models.SeniorityJunior)
		valentina := crearTalentoPrueba(t, "Valentina Castro", "QA", models.SenioritySemiSenior)
		for i := 0; i < 4; i++ {
			crearInteraccionPrueba(t, juan.ID, models.InteraccionReunion1a1, "Seguimiento semanal del onboarding")
		}
		for i := 0; i < 3; i++ {
			crearInteraccionPrueba(t, valentina.ID, models.InteraccionFeedback, "Feedback sobre el plan de pruebas")
		}

		Convey("Sin filtro se pagina sobre el total", func() {
			data, meta, err := ListarInteracciones(ctx, internaldto.InteraccionQuery{Page: 1, Limit: 5})
			So(err, ShouldBeNil)
			So(data, ShouldHaveLength, 5)
			So(meta.Total, ShouldEqual, 7)
			So(meta.TotalPages, ShouldEqual, 2)
			So(meta.HasNext, ShouldBeTrue)
			So(meta.HasPrev, ShouldBeFalse)
			So(data[0].Talento, ShouldNotBeNil)
		})

		Convey("El filtro por talento reduce el universo paginado", func() {
			data, meta, err := ListarInteracciones(ctx, internaldto.InteraccionQuery{
				TalentoID: juan.ID,
				Page:      1,
				Limit:     10,
			})
			So(err, ShouldBeNil)
			So(data, ShouldHaveLength, 4)
			So(meta.Total, ShouldEqual, 4)
			So(meta.HasNext, ShouldBeFalse)
			for _, d := range data {
				So(d.TalentoID, ShouldEqual, juan.ID)
			}
		})

		Convey("Un talento sin interacciones devuelve la página vacía", func() {
			solo := crearTalentoPrueba(t, "Martín Sosa", "DevOps", models.SenioritySenior)

			data, meta, err := ListarInteracciones(ctx, internaldto.InteraccionQuery{
				TalentoID: solo.ID,
				Page:      1,
				Limit:     10,
			})
			So(err, ShouldBeNil)
			So(data, ShouldBeEmpty)
			So(meta.Total, ShouldEqual, 0)
			So(meta.TotalPages, ShouldEqual, 0)
		})
	})
}

func TestObtenerInteraccion(t *testing.T) {
	ctx := context.Background()

	Convey("Dada la consulta de una interacción", t, func() {
		limpiarBase(t)

		Convey("Un id inexistente devuelve 404", func() {
			_, err := ObtenerInteraccion(ctx, uuid.NewString())
			So(comoAppError(err).Code, ShouldEqual, helpers.CodeInteraccionNotFound)
		})

		Convey("El detalle incluye el talento con su líder y mentor", func() {
			ana := crearReferentePrueba(t, "Ana García", "ana@x.com")
			diego := crearReferentePrueba(t, "Diego Fernández", "diego@x.com")
			talento, err := CrearTalento(ctx, internaldto.TalentoCreate{
				NombreYApellido: "Juan Pérez",
				Seniority:       models.SeniorityJunior,
				Rol:             "Dev",
				LiderID:         &ana.ID,
				MentorID:        &diego.ID,
			})
			So(err, ShouldBeNil)
			creada := crearInteraccionPrueba(t, talento.ID, models.InteraccionEvaluacion, "Evaluación técnica inicial")

			d, err := ObtenerInteraccion(ctx, creada.ID)
			So(err, ShouldBeNil)
			So(d.Detalle, ShouldEqual, "Evaluación técnica inicial")
			So(d.Talento, ShouldNotBeNil)
			So(d.Talento.Lider, ShouldNotBeNil)
			So(d.Talento.Lider.NombreYApellido, ShouldEqual, "Ana García")
			So(d.Talento.Mentor, ShouldNotBeNil)
			So(d.Talento.Mentor.Email, ShouldEqual, "diego@x.com")
		})
	})
}

func TestActualizarInteraccion(t *testing.T) {
	ctx := context.Background()

	Convey("Dada la actualización parcial de una interacción", t, func() {
		limpiarBase(t)

		Convey("Un id inexistente devuelve 404", func() {
			detalle := "Detalle que no llegará a ninguna fila"
			_, err := ActualizarInteraccion(ctx, uuid.NewString(), internaldto.InteraccionUpdate{Detalle: &detalle})
			So(comoAppError(err).Code, ShouldEqual, helpers.CodeInteraccionNotFound)
		})

		Convey("Cambiar sólo el estado deja el resto intacto", func() {
			talento := crearTalentoPrueba(t, "Juan Pérez", "Dev", models.SeniorityJunior)
			creada := crearInteraccionPrueba(t, talento.ID, models.InteraccionReunion1a1, "Seguimiento del plan de carrera")

			estado := models.InteraccionFinalizada
			d, err := ActualizarInteraccion(ctx, creada.ID, internaldto.InteraccionUpdate{Estado: &estado})
			So(err, ShouldBeNil)
			So(d.Estado, ShouldEqual, models.InteraccionFinalizada)
			So(d.TipoDeInteraccion, ShouldEqual, models.InteraccionReunion1a1)
			So(d.Detalle, ShouldEqual, "Seguimiento del plan de carrera")
			So(d.TalentoID, ShouldEqual, talento.ID)
		})

		Convey("El estado admite cualquier valor del enum sobre cualquier previo", func() {
			talento := crearTalentoPrueba(t, "Juan Pérez", "Dev", models.SeniorityJunior)
			creada := crearInteraccionPrueba(t, talento.ID, models.InteraccionFeedback, "Feedback del sprint anterior")

			finalizada := models.InteraccionFinalizada
			_, err := ActualizarInteraccion(ctx, creada.ID, internaldto.InteraccionUpdate{Estado: &finalizada})
			So(err, ShouldBeNil)

			iniciada := models.InteraccionIniciada
			d, err := ActualizarInteraccion(ctx, creada.ID, internaldto.InteraccionUpdate{Estado: &iniciada})
			So(err, ShouldBeNil)
			So(d.Estado, ShouldEqual, models.InteraccionIniciada)
		})

		Convey("Tipo, detalle y fecha pueden cambiar en la misma llamada", func() {
			talento := crearTalentoPrueba(t, "Juan Pérez", "Dev", models.SeniorityJunior)
			creada := crearInteraccionPrueba(t, talento.ID, models.InteraccionMentoria, "Sesión de mentoría sobre testing")

			tipo := models.InteraccionCodeReview
			detalle := "Revisión del módulo de autenticación"
			fecha := time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)
			d, err := ActualizarInteraccion(ctx, creada.ID, internaldto.InteraccionUpdate{
				TipoDeInteraccion: &tipo,
				Detalle:           &detalle,
				Fecha:             &fecha,
			})
			So(err, ShouldBeNil)
			So(d.TipoDeInteraccion, ShouldEqual, models.InteraccionCodeReview)
			So(d.Detalle, ShouldEqual, "Revisión del módulo de autenticación")
			So(d.Fecha.Equal(fecha), ShouldBeTrue)
		})
	})
}

func TestEliminarInteraccion(t *testing.T) {
	ctx := context.Background()

	Convey("Dada la eliminación de una interacción", t, func() {
		limpiarBase(t)

		Convey("Un id inexistente devuelve 404", func() {
			_, err := EliminarInteraccion(ctx, uuid.NewString())
			So(comoAppError(err).Code, ShouldEqual, helpers.CodeInteraccionNotFound)
		})

		Convey("La interacción se borra y el registro eliminado conserva sus campos", func() {
			talento := crearTalentoPrueba(t, "Juan Pérez", "Dev", models.SeniorityJunior)
			creada := crearInteraccionPrueba(t, talento.ID, models.InteraccionFeedback, "Feedback final del trimestre")

			resumen, err := EliminarInteraccion(ctx, creada.ID)
			So(err, ShouldBeNil)
			So(resumen.Message, ShouldContainSubstring, "eliminada")
			So(resumen.Interaccion.ID, ShouldEqual, creada.ID)
			So(resumen.Interaccion.Detalle, ShouldEqual, "Feedback final del trimestre")
			So(resumen.Interaccion.TalentoID, ShouldEqual, talento.ID)

			_, err = ObtenerInteraccion(ctx, creada.ID)
			So(comoAppError(err).Code, ShouldEqual, helpers.CodeInteraccionNotFound)

			t2 := &models.Talento{ID: talento.ID}
			So(ormer().Read(t2), ShouldBeNil)
		})
	})
}
