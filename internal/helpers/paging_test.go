package helpers_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	internalhelpers "github.com/rocbird/talentos_api/internal/helpers"
)

func TestParsePageLimit(t *testing.T) {
	Convey("Dado el parseo de parámetros de paginación", t, func() {
		Convey("Sin parámetros aplica los defaults", func() {
			page, limit := internalhelpers.ParsePageLimit("", "")
			So(page, ShouldEqual, 1)
			So(limit, ShouldEqual, 10)
		})

		Convey("Valores válidos se respetan", func() {
			page, limit := internalhelpers.ParsePageLimit("3", "25")
			So(page, ShouldEqual, 3)
			So(limit, ShouldEqual, 25)
		})

		Convey("Valores no numéricos caen al default", func() {
			page, limit := internalhelpers.ParsePageLimit("abc", "x")
			So(page, ShouldEqual, 1)
			So(limit, ShouldEqual, 10)
		})

		Convey("Los valores fuera de rango se devuelven sin corregir", func() {
			page, limit := internalhelpers.ParsePageLimit("-5", "500")
			So(page, ShouldEqual, -5)
			So(limit, ShouldEqual, 500)
		})
	})
}

func TestNewMeta(t *testing.T) {
	Convey("Dado el cálculo de metadatos de paginación", t, func() {
		Convey("Una página intermedia tiene anterior y siguiente", func() {
			meta := internalhelpers.NewMeta(2, 10, 25)
			So(meta.Total, ShouldEqual, 25)
			So(meta.TotalPages, ShouldEqual, 3)
			So(meta.HasNext, ShouldBeTrue)
			So(meta.HasPrev, ShouldBeTrue)
		})

		Convey("La primera página no tiene anterior", func() {
			meta := internalhelpers.NewMeta(1, 10, 25)
			So(meta.HasPrev, ShouldBeFalse)
			So(meta.HasNext, ShouldBeTrue)
		})

		Convey("hasNext es verdadero sólo cuando page*limit < total", func() {
			So(internalhelpers.NewMeta(3, 10, 30).HasNext, ShouldBeFalse)
			So(internalhelpers.NewMeta(3, 10, 31).HasNext, ShouldBeTrue)
			So(internalhelpers.NewMeta(1, 10, 10).HasNext, ShouldBeFalse)
		})

		Convey("Un total vacío produce cero páginas", func() {
			meta := internalhelpers.NewMeta(1, 10, 0)
			So(meta.TotalPages, ShouldEqual, 0)
			So(meta.HasNext, ShouldBeFalse)
			So(meta.HasPrev, ShouldBeFalse)
		})

		Convey("El total no divisible redondea páginas hacia arriba", func() {
			So(internalhelpers.NewMeta(1, 7, 15).TotalPages, ShouldEqual, 3)
		})
	})
}
