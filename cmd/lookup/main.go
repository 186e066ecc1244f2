package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"geocoding-client/googlegeo"
	"geocoding-client/internal/config"
)

func main() {
	address := flag.String("address", "", "Free-text address to geocode")
	latlng := flag.String("latlng", "", "\"lat,lng\" pair to reverse geocode")
	language := flag.String("language", "", "Language code for results, e.g. en or pt-BR")
	flag.Parse()

	if (*address == "") == (*latlng == "") {
		fmt.Println("Error: exactly one of --address or --latlng is required")
		os.Exit(1)
	}

	// Load config
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	conn := googlegeo.NewConnection(googlegeo.ConnectionConfig{
		BaseURL: cfg.GeocodeBaseURL,
		APIKey:  cfg.GeocodeAPIKey,
	})

	var replies []googlegeo.Reply
	if *address != "" {
		query := googlegeo.NewGeocodeQuery(googlegeo.Address(*address))
		if *language != "" {
			query = query.Language(googlegeo.Language(*language))
		}
		replies, err = conn.Geocode(context.Background(), query)
	} else {
		coords, parseErr := parseLatLng(*latlng)
		if parseErr != nil {
			fmt.Printf("Error parsing --latlng: %v\n", parseErr)
			os.Exit(1)
		}
		query := googlegeo.NewDegeocodeQuery(coords)
		if *language != "" {
			query = query.Language(googlegeo.Language(*language))
		}
		replies, err = conn.Degeocode(context.Background(), query)
	}
	if err != nil {
		fmt.Printf("Error performing lookup: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Got %d results\n", len(replies))

	out, err := json.MarshalIndent(replies, "", "  ")
	if err != nil {
		fmt.Printf("Error rendering results: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

func parseLatLng(s string) (googlegeo.Coordinates, error) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return googlegeo.Coordinates{}, fmt.Errorf("expected \"lat,lng\", got %q", s)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return googlegeo.Coordinates{}, fmt.Errorf("invalid latitude: %s", parts[0])
	}

	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return googlegeo.Coordinates{}, fmt.Errorf("invalid longitude: %s", parts[1])
	}

	return googlegeo.NewCoordinates(lat, lng)
}
