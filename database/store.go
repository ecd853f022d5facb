// Package database es el acceso a la base relacional: registro de la
// conexión, ciclo de vida, sonda de salud y datos de ejemplo.
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/beego/beego/v2/client/orm"
	_ "github.com/lib/pq"           // driver postgres
	_ "github.com/mattn/go-sqlite3" // driver sqlite3 (desarrollo y pruebas)

	"github.com/rocbird/talentos_api/services"
)

const defaultAlias = "default"

// Store envuelve la conexión registrada en el ORM. Se construye una sola vez
// en el arranque del proceso y se inyecta a la capa de servicios; el pool de
// conexiones subyacente se comparte entre peticiones.
type Store struct {
	alias string
}

// Open registra la base de datos en el ORM con el pool configurado.
func Open(cfg services.Config) (*Store, error) {
	err := orm.RegisterDataBase(defaultAlias, cfg.DBDriver, cfg.DBSource,
		orm.MaxOpenConnections(cfg.DBMaxOpen),
		orm.MaxIdleConnections(cfg.DBMaxIdle),
	)
	if err != nil {
		return nil, fmt.Errorf("registrando base de datos (%s): %w", cfg.DBDriver, err)
	}
	return &Store{alias: defaultAlias}, nil
}

// Orm devuelve un ejecutor del ORM sobre la conexión del store.
func (s *Store) Orm() orm.Ormer {
	return orm.NewOrmUsingDB(s.alias)
}

// Sync crea las tablas que falten según los modelos registrados. Con force
// recrea todo (solo para entornos de prueba).
func (s *Store) Sync(force bool) error {
	return orm.RunSyncdb(s.alias, force, false)
}

// HealthStatus es el resultado de la sonda de conectividad.
type HealthStatus struct {
	Status    string `json:"status"`
	LatencyMs int64  `json:"latency_ms"`
	Error     string `json:"error,omitempty"`
}

// Health ejecuta un ping contra la base y mide la latencia.
func (s *Store) Health(ctx context.Context) HealthStatus {
	db, err := orm.GetDB(s.alias)
	if err != nil {
		return HealthStatus{Status: "unhealthy", Error: err.Error()}
	}
	start := time.Now()
	if err := db.PingContext(ctx); err != nil {
		return HealthStatus{Status: "unhealthy", LatencyMs: time.Since(start).Milliseconds(), Error: err.Error()}
	}
	return HealthStatus{Status: "healthy", LatencyMs: time.Since(start).Milliseconds()}
}

// Close libera el pool de conexiones.
func (s *Store) Close() error {
	db, err := orm.GetDB(s.alias)
	if err != nil {
		return err
	}
	return db.Close()
}
