package models_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/rocbird/talentos_api/models"
)

func TestSeniority(t *testing.T) {
	Convey("Dado el enum de seniority", t, func() {
		Convey("Todos los valores declarados son válidos", func() {
			for _, s := range models.SeniorityValues() {
				So(s.Valid(), ShouldBeTrue)
			}
		})

		Convey("Un valor fuera del conjunto es rechazado", func() {
			So(models.Seniority("TRAINEE").Valid(), ShouldBeFalse)
			So(models.Seniority("").Valid(), ShouldBeFalse)
			So(models.Seniority("junior").Valid(), ShouldBeFalse)
		})

		Convey("La lista para mensajes respeta el orden de carrera", func() {
			So(models.SeniorityList(), ShouldEqual, "JUNIOR, SEMI_SENIOR, SENIOR, LEAD, ARCHITECT")
		})
	})
}

func TestEstadoTalento(t *testing.T) {
	Convey("Dado el estado de talento", t, func() {
		So(models.TalentoActivo.Valid(), ShouldBeTrue)
		So(models.TalentoInactivo.Valid(), ShouldBeTrue)
		So(models.EstadoTalento("PAUSADO").Valid(), ShouldBeFalse)
	})
}

func TestTipoInteraccion(t *testing.T) {
	Convey("Dado el tipo de interacción", t, func() {
		Convey("Los siete tipos declarados son válidos", func() {
			tipos := models.TipoInteraccionValues()
			So(tipos, ShouldHaveLength, 7)
			for _, tipo := range tipos {
				So(tipo.Valid(), ShouldBeTrue)
			}
		})

		Convey("Un tipo desconocido es rechazado", func() {
			So(models.TipoInteraccion("ALMUERZO").Valid(), ShouldBeFalse)
		})
	})
}

func TestEstadoInteraccion(t *testing.T) {
	Convey("Dado el estado de interacción", t, func() {
		for _, e := range []models.EstadoInteraccion{
			models.InteraccionIniciada,
			models.InteraccionEnProgreso,
			models.InteraccionFinalizada,
			models.InteraccionCancelada,
		} {
			So(e.Valid(), ShouldBeTrue)
		}
		So(models.EstadoInteraccion("ARCHIVADA").Valid(), ShouldBeFalse)
	})
}
