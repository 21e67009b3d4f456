package main

import (
	"context"
	"fmt"
	"log"
	"mammacheck/internal/model"
	"mammacheck/internal/repository"
	"mammacheck/internal/service"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database("mammacheck")

	centerRepo := repository.NewCenterRepo(db)
	centers := []*model.ScreeningCenter{
		{
			Name:      "Centre de Référence Lalla Salma",
			City:      "Rabat",
			Address:   "Avenue Allal El Fassi, Madinat Al Irfane",
			Phone:     "+212 537-686868",
			Latitude:  33.9843,
			Longitude: -6.8671,
		},
		{
			Name:      "Centre d'Oncologie Ibn Rochd",
			City:      "Casablanca",
			Address:   "1 Rue des Hôpitaux, Quartier des Hôpitaux",
			Phone:     "+212 522-225252",
			Latitude:  33.5795,
			Longitude: -7.6187,
		},
		{
			Name:      "Centre Hospitalier Hassan II",
			City:      "Fès",
			Address:   "Route de Sefrou, Km 2.2",
			Phone:     "+212 535-619053",
			Latitude:  34.0097,
			Longitude: -4.9899,
		},
		{
			Name:      "Centre Régional d'Oncologie",
			City:      "Marrakech",
			Address:   "Avenue Ibn Sina, Amerchich",
			Phone:     "+212 524-300700",
			Latitude:  31.6538,
			Longitude: -8.0219,
		},
		{
			Name:      "Centre de Dépistage Al Amal",
			City:      "Tanger",
			Address:   "Route de Rabat, Quartier Branes",
			Phone:     "+212 539-393939",
			Latitude:  35.7595,
			Longitude: -5.8340,
		},
	}

	for _, center := range centers {
		id, err := centerRepo.Create(ctx, center)
		if err != nil {
			log.Fatalf("Failed to insert center %q: %v", center.Name, err)
		}
		fmt.Printf("Created center %s (%s)\n", center.Name, id)
	}

	localeRepo := repository.NewLocaleRepo(db)
	for language, entries := range service.BuiltinBundles() {
		bundle := &model.LocaleBundle{Language: language, Entries: entries}
		if err := localeRepo.Upsert(ctx, bundle); err != nil {
			log.Fatalf("Failed to store locale bundle %q: %v", language, err)
		}
		fmt.Printf("Stored locale bundle %s (%d entries)\n", language, len(entries))
	}

	fmt.Printf("Successfully seeded %d centers and the locale bundles\n", len(centers))
}
