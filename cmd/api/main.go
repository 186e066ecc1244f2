package main

import (
	"net/http"

	"geocoding-client/googlegeo"
	"geocoding-client/internal/config"
	"geocoding-client/internal/handler"
	"geocoding-client/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	// Upstream geocoding connection, shared by all requests
	conn := googlegeo.NewConnection(googlegeo.ConnectionConfig{
		BaseURL: config.GeocodeBaseURL,
		APIKey:  config.GeocodeAPIKey,
		Logger:  &log.Logger,
	})

	defaults := service.QueryDefaults{
		Language: googlegeo.Language(config.DefaultLanguage),
		Region:   googlegeo.Region(config.DefaultRegion),
	}

	// Initialize layers
	geoCodeService := service.NewGeoCodeService(conn, defaults)
	reverseGeocodeService := service.NewReverseGeoCodeService(conn, defaults)

	geoCodeHandler := handler.NewGeoCodeHandler(geoCodeService)
	reverseGeocodeHandler := handler.NewReverseGeocodeHandler(reverseGeocodeService)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	r.GET("/geocode", geoCodeHandler.GeoCode)
	r.GET("/reverse-geocode", reverseGeocodeHandler.ReverseGeocode)

	if err := r.Run(config.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
