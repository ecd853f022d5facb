package middlewares

import (
	"sync"

	beego "github.com/beego/beego/v2/server/web"
	promfilter "github.com/beego/beego/v2/server/web/filter/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var metricsOnce sync.Once

// UseMetrics registra el filtro de métricas HTTP y expone /metrics en
// formato Prometheus. Idempotente: múltiples llamadas registran una sola vez.
func UseMetrics() {
	metricsOnce.Do(func() {
		beego.InsertFilterChain("/*", (&promfilter.FilterChainBuilder{}).FilterChain)
		beego.Handler("/metrics", promhttp.Handler())
	})
}
