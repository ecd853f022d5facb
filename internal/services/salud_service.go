package services

import (
	"context"
	"runtime"
	"time"

	"github.com/rocbird/talentos_api/database"
	rootservices "github.com/rocbird/talentos_api/services"
)

// SaludAPI describe el estado del proceso.
type SaludAPI struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// SaludEntorno describe el entorno de ejecución.
type SaludEntorno struct {
	RunMode string `json:"run_mode"`
	Runtime string `json:"runtime"`
}

// SaludDTO es la respuesta de GET /health.
type SaludDTO struct {
	API         SaludAPI             `json:"api"`
	Database    database.HealthStatus `json:"database"`
	Environment SaludEntorno         `json:"environment"`
}

// EstadoSalud sondea la base de datos y arma el reporte. El segundo valor
// indica si el conjunto está sano (define 200 vs 503).
func EstadoSalud(ctx context.Context) (SaludDTO, bool) {
	db := store.Health(ctx)

	return SaludDTO{
		API: SaludAPI{
			Status:    "healthy",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Version:   "1.0.0",
		},
		Database: db,
		Environment: SaludEntorno{
			RunMode: rootservices.GetConfig().RunMode,
			Runtime: runtime.Version(),
		},
	}, db.Status == "healthy"
}
