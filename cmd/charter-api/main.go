// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"charter/internal/config"
	httptransport "charter/internal/http"
	"charter/internal/infra"
	"charter/internal/maps"
	"charter/internal/modules/booking"
	"charter/internal/modules/fare"
	"charter/internal/modules/fleet"
	"charter/internal/modules/tariff"
	"charter/internal/notify"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Tariff tables come from Postgres when a DSN is configured, otherwise
	// from the embedded defaults. Either way they are immutable after this.
	var tariffStore *tariff.Store
	if cfg.DB.DSN != "" {
		dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
		if err != nil {
			log.Fatalf("db init: %v", err)
		}
		defer dbPool.Close()
		tariffStore = tariff.NewStore(dbPool)
	}
	tariffSvc := tariff.NewService(ctx, tariffStore)

	fareSvc := fare.NewService(tariffSvc, cfg.Fare)
	fleetSvc := fleet.NewService(tariffSvc, fareSvc)

	var sheet booking.SheetLogger
	if l := notify.NewSheetLogger(cfg.Outbound.SheetURL); l != nil {
		sheet = l
	}
	var tracker booking.ConversionTracker
	if t := notify.NewConversionTracker(cfg.Outbound.ConversionURL, cfg.Outbound.ConversionLabel); t != nil {
		tracker = t
	}
	bookingSvc := booking.NewService(fareSvc, cfg.Outbound.WhatsAppNumber, sheet, tracker)

	var routeSvc *maps.RouteService
	if cfg.Maps.APIKey != "" {
		routeSvc, err = maps.NewRouteService(cfg.Maps.APIKey, infra.NewRedis(cfg.Redis.Addr))
		if err != nil {
			log.Printf("maps init failed, quotes will carry no travel estimate: %v", err)
		}
	}

	router := httptransport.NewRouter(httptransport.RouterDeps{
		Tariffs: tariffSvc,
		Fares:   fareSvc,
		Fleet:   fleetSvc,
		Booking: bookingSvc,
		Routes:  routeSvc,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: router}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Printf("charter-api listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
