package helpers_test

import (
	"net/http"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/rocbird/talentos_api/helpers"
	internaldto "github.com/rocbird/talentos_api/internal/dto"
	internalhelpers "github.com/rocbird/talentos_api/internal/helpers"
	"github.com/rocbird/talentos_api/models"
	"github.com/rocbird/talentos_api/models/requestresponse"
)

func detalles(appErr *helpers.AppError) []requestresponse.ErrorDetail {
	d, _ := appErr.Details.([]requestresponse.ErrorDetail)
	return d
}

func TestValidateTalentoCreate(t *testing.T) {
	Convey("Dado el cuerpo de creación de talento", t, func() {
		valido := internaldto.TalentoCreate{
			NombreYApellido: "Juan Pérez",
			Seniority:       models.SeniorityJunior,
			Rol:             "Dev",
		}

		Convey("Un cuerpo válido pasa", func() {
			So(internalhelpers.Validate(valido), ShouldBeNil)
		})

		Convey("El estado por defecto ausente también pasa", func() {
			valido.Estado = ""
			So(internalhelpers.Validate(valido), ShouldBeNil)
		})

		Convey("Cada campo violado se reporta con su razón", func() {
			invalido := internaldto.TalentoCreate{
				NombreYApellido: "J",
				Seniority:       models.Seniority("TRAINEE"),
				Rol:             "",
			}
			appErr := internalhelpers.Validate(invalido)
			So(appErr, ShouldNotBeNil)
			So(appErr.Status, ShouldEqual, http.StatusBadRequest)
			So(appErr.Code, ShouldEqual, helpers.CodeValidation)

			ds := detalles(appErr)
			So(ds, ShouldHaveLength, 3)
			campos := map[string]string{}
			for _, d := range ds {
				campos[d.Field] = d.Message
			}
			So(campos["nombre_y_apellido"], ShouldEqual, "debe tener al menos 2 caracteres")
			So(campos["seniority"], ShouldContainSubstring, "JUNIOR, SEMI_SENIOR, SENIOR, LEAD, ARCHITECT")
			So(campos["rol"], ShouldEqual, "es requerido")
		})

		Convey("Un lider_id con formato inválido se rechaza", func() {
			malo := "no-es-un-uuid"
			valido.LiderID = &malo
			appErr := internalhelpers.Validate(valido)
			So(appErr, ShouldNotBeNil)
			So(detalles(appErr)[0].Field, ShouldEqual, "lider_id")
		})

		Convey("Un lider_id explícitamente vacío también se rechaza", func() {
			vacio := ""
			valido.LiderID = &vacio
			appErr := internalhelpers.Validate(valido)
			So(appErr, ShouldNotBeNil)
			So(appErr.Status, ShouldEqual, http.StatusBadRequest)
			So(detalles(appErr)[0].Field, ShouldEqual, "lider_id")
			So(detalles(appErr)[0].Message, ShouldEqual, "identificador inválido")
		})
	})
}

func TestValidateTalentoUpdate(t *testing.T) {
	Convey("Dado el cuerpo de actualización parcial de talento", t, func() {
		Convey("Un cuerpo vacío es válido: nada se toca", func() {
			So(internalhelpers.Validate(internaldto.TalentoUpdate{}), ShouldBeNil)
		})

		Convey("Un campo presente se valida con la misma regla que en crear", func() {
			corto := "X"
			appErr := internalhelpers.Validate(internaldto.TalentoUpdate{NombreYApellido: &corto})
			So(appErr, ShouldNotBeNil)
			So(detalles(appErr)[0].Field, ShouldEqual, "nombre_y_apellido")
		})

		Convey("Un estado presente pero inválido se rechaza", func() {
			malo := models.EstadoTalento("SUSPENDIDO")
			appErr := internalhelpers.Validate(internaldto.TalentoUpdate{Estado: &malo})
			So(appErr, ShouldNotBeNil)
			So(detalles(appErr)[0].Message, ShouldEqual, "debe ser uno de: ACTIVO, INACTIVO")
		})

		Convey("Un mentor_id vacío presente en el cuerpo se rechaza", func() {
			vacio := ""
			appErr := internalhelpers.Validate(internaldto.TalentoUpdate{MentorID: &vacio})
			So(appErr, ShouldNotBeNil)
			So(detalles(appErr)[0].Field, ShouldEqual, "mentor_id")
		})
	})
}

func TestValidateReferenteCreate(t *testing.T) {
	Convey("Dado el cuerpo de creación de referente", t, func() {
		Convey("Nombre y email válidos pasan", func() {
			So(internalhelpers.Validate(internaldto.ReferenteCreate{
				NombreYApellido: "Ana García",
				Email:           "ana@x.com",
			}), ShouldBeNil)
		})

		Convey("Un email inválido se rechaza", func() {
			appErr := internalhelpers.Validate(internaldto.ReferenteCreate{
				NombreYApellido: "Ana García",
				Email:           "no-es-email",
			})
			So(appErr, ShouldNotBeNil)
			So(detalles(appErr)[0].Field, ShouldEqual, "email")
			So(detalles(appErr)[0].Message, ShouldEqual, "email inválido")
		})
	})
}

func TestValidateInteraccionCreate(t *testing.T) {
	Convey("Dado el cuerpo de creación de interacción", t, func() {
		valido := internaldto.InteraccionCreate{
			TalentoID:         "0b896643-84f4-4a91-8316-9bd8382db2d4",
			TipoDeInteraccion: models.InteraccionMentoria,
			Detalle:           "Sesión de pairing sobre testing",
		}

		Convey("Un cuerpo válido pasa", func() {
			So(internalhelpers.Validate(valido), ShouldBeNil)
		})

		Convey("Un detalle demasiado corto se rechaza", func() {
			valido.Detalle = "sync"
			appErr := internalhelpers.Validate(valido)
			So(appErr, ShouldNotBeNil)
			So(detalles(appErr)[0].Field, ShouldEqual, "detalle")
			So(detalles(appErr)[0].Message, ShouldEqual, "debe tener al menos 5 caracteres")
		})

		Convey("Un tipo desconocido se rechaza con la lista completa", func() {
			valido.TipoDeInteraccion = models.TipoInteraccion("ALMUERZO")
			appErr := internalhelpers.Validate(valido)
			So(appErr, ShouldNotBeNil)
			So(detalles(appErr)[0].Message, ShouldContainSubstring, "REUNION_1_1")
		})
	})
}

func TestValidateTalentoQuery(t *testing.T) {
	Convey("Dado el query de listado de talentos", t, func() {
		base := internaldto.TalentoQuery{Page: 1, Limit: 10, Sort: "desc", SortBy: "fecha_creacion"}

		Convey("Los defaults pasan", func() {
			So(internalhelpers.Validate(base), ShouldBeNil)
		})

		Convey("Una página fuera de rango se rechaza en lugar de corregirse", func() {
			base.Page = -5
			appErr := internalhelpers.Validate(base)
			So(appErr, ShouldNotBeNil)
			So(appErr.Status, ShouldEqual, http.StatusBadRequest)
			So(appErr.Code, ShouldEqual, helpers.CodeValidation)
			So(detalles(appErr)[0].Field, ShouldEqual, "page")
		})

		Convey("Un límite por encima de 100 se rechaza en lugar de acotarse", func() {
			base.Limit = 500
			appErr := internalhelpers.Validate(base)
			So(appErr, ShouldNotBeNil)
			So(detalles(appErr)[0].Field, ShouldEqual, "limit")
			So(detalles(appErr)[0].Message, ShouldEqual, "no puede exceder 100")
		})

		Convey("Una columna de orden fuera de la lista blanca se rechaza", func() {
			base.SortBy = "email"
			So(internalhelpers.Validate(base), ShouldNotBeNil)
		})

		Convey("Una dirección de orden desconocida se rechaza", func() {
			base.Sort = "descending"
			So(internalhelpers.Validate(base), ShouldNotBeNil)
		})

		Convey("Los filtros opcionales vacíos pasan", func() {
			base.Estado = ""
			base.Seniority = ""
			So(internalhelpers.Validate(base), ShouldBeNil)
		})

		Convey("Un filtro de seniority inválido se rechaza", func() {
			base.Seniority = "TRAINEE"
			So(internalhelpers.Validate(base), ShouldNotBeNil)
		})
	})
}
