// README: Prints the published rate card with display-currency conversion.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"charter/internal/config"
	"charter/internal/infra"
	"charter/internal/modules/fare"
	"charter/internal/modules/tariff"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	var store *tariff.Store
	if cfg.DB.DSN != "" {
		pool, err := infra.NewDB(ctx, cfg.DB.DSN)
		if err != nil {
			log.Fatalf("db init: %v", err)
		}
		defer pool.Close()
		store = tariff.NewStore(pool)
	}
	tariffSvc := tariff.NewService(ctx, store)
	fareSvc := fare.NewService(tariffSvc, cfg.Fare)

	classes := []tariff.VehicleClass{tariff.Sedan, tariff.MPVStd, tariff.MPVLux, tariff.MultiMPV}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ROUTE\tCCY\tSEDAN\tSTD MPV\tLUX MPV\tLARGE")
	for _, row := range fareSvc.RateCard() {
		fmt.Fprintf(w, "%s -> %s\t%s", row.From, row.To, row.Currency)
		for _, class := range classes {
			if p, ok := row.Prices[class]; ok {
				fmt.Fprintf(w, "\t%d", p)
			} else {
				fmt.Fprint(w, "\t-")
			}
		}
		fmt.Fprintln(w)
	}
	w.Flush()
}
