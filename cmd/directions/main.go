package main

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/routemark/directions"
	"github.com/routemark/directions/pkg/config"
	"github.com/routemark/directions/pkg/geo"
	"github.com/routemark/directions/pkg/logger"
	"go.uber.org/zap"
)

func main() {
	origin := flag.String("origin", "", "origin as lat,lng")
	dest := flag.String("dest", "", "destination as lat,lng")
	mode := flag.String("mode", "driving", "travel mode: driving, walking, bicycling, transit")
	alternatives := flag.Bool("alternatives", false, "request alternative routes")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	if err := logger.Init(cfg.Environment); err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	from, err := parseCoordinate(*origin)
	if err != nil {
		logger.Fatal("invalid -origin", zap.Error(err))
	}
	to, err := parseCoordinate(*dest)
	if err != nil {
		logger.Fatal("invalid -dest", zap.Error(err))
	}

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	client := directions.NewClient(directions.Config{
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
		Timeout: timeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	result, err := client.Routes(ctx, &directions.RouteRequest{
		Origin:       from,
		Destination:  to,
		Mode:         parseMode(*mode),
		Alternatives: *alternatives,
	})
	if err != nil {
		logger.Fatal("routes request failed", zap.Error(err))
	}

	logger.Info("routes response",
		zap.String("status", string(result.Status)),
		zap.Int("routes", len(result.Routes)),
	)

	for i, route := range result.Routes {
		logger.Info("route",
			zap.Int("index", i),
			zap.String("summary", route.Summary),
			zap.Int("legs", len(route.Legs)),
		)

		for _, leg := range route.Legs {
			for _, step := range leg.Steps {
				fields := []zap.Field{zap.String("instruction", step.Instruction)}
				if step.StartLocation != nil {
					fields = append(fields,
						zap.Float64("lat", step.StartLocation.Latitude),
						zap.Float64("lng", step.StartLocation.Longitude),
					)
				}
				logger.Info("step", fields...)
			}
		}
	}
}

func parseCoordinate(s string) (geo.Coordinate, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return geo.Coordinate{}, fmt.Errorf("expected lat,lng, got %q", s)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return geo.Coordinate{}, fmt.Errorf("invalid latitude %q: %w", parts[0], err)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return geo.Coordinate{}, fmt.Errorf("invalid longitude %q: %w", parts[1], err)
	}

	return geo.NewCoordinate(lat, lng), nil
}

func parseMode(s string) directions.TravelMode {
	switch strings.ToLower(s) {
	case "walking":
		return directions.TravelModeWalking
	case "bicycling":
		return directions.TravelModeBicycling
	case "transit":
		return directions.TravelModeTransit
	case "two_wheeler":
		return directions.TravelModeTwoWheeler
	default:
		return directions.TravelModeDriving
	}
}
