package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/beego/beego/v2/core/logs"
	beego "github.com/beego/beego/v2/server/web"
	cors "github.com/beego/beego/v2/server/web/filter/cors"

	"github.com/rocbird/talentos_api/database"
	"github.com/rocbird/talentos_api/internal/middlewares"
	"github.com/rocbird/talentos_api/routers"
	"github.com/rocbird/talentos_api/services"
)

func main() {
	seed := flag.Bool("seed", false, "carga los datos de demostración antes de servir")
	flag.Parse()

	cfg := services.GetConfig()

	store, err := database.Open(cfg)
	if err != nil {
		logs.Critical("no se pudo abrir la base de datos: %v", err)
		os.Exit(1)
	}
	if err := store.Sync(false); err != nil {
		logs.Critical("no se pudo sincronizar el esquema: %v", err)
		os.Exit(1)
	}
	if *seed {
		if err := database.Seed(store.Orm()); err != nil {
			logs.Critical("no se pudieron cargar los datos de demostración: %v", err)
			os.Exit(1)
		}
		logs.Info("datos de demostración cargados")
	}

	routers.Register(store)

	beego.InsertFilter("*", beego.BeforeRouter, cors.Allow(&cors.Options{
		AllowOrigins:     cfg.CORSOrigins, //orígenes permitidos
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Requested-With", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))
	middlewares.UseMetrics()

	// Apagado ordenado: cerrar el pool antes de terminar el proceso.
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		logs.Info("señal de apagado recibida, cerrando conexiones")
		if err := store.Close(); err != nil {
			logs.Error("cerrando la base de datos: %v", err)
		}
		os.Exit(0)
	}()

	beego.BConfig.AppName = cfg.AppName
	beego.BConfig.RunMode = cfg.RunMode
	beego.BConfig.Listen.HTTPPort = cfg.HTTPPort
	beego.BConfig.CopyRequestBody = true
	beego.Run()
}
