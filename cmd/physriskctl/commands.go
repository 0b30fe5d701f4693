package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"physrisk-api/internal/hazard"
)

func newTokenCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Exchange credentials for a session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := json.Marshal(map[string]string{"email": email, "password": password})
			if err != nil {
				return err
			}
			reply, err := call(http.MethodPost, "/api/token", body)
			if err != nil {
				return err
			}

			var parsed struct {
				AccessToken string `json:"access_token"`
			}
			if err := json.Unmarshal(reply, &parsed); err != nil {
				return err
			}
			fmt.Println(parsed.AccessToken)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "test", "login email")
	cmd.Flags().StringVar(&password, "password", "", "login password")
	cmd.MarkFlagRequired("password")
	return cmd
}

// sampleHazardRequest is the built-in query used when no request file is
// given: one riverine inundation lookup near Kabul, matching the reference
// request shipped with the engine.
const sampleHazardRequest = `{
  "items": [
    {
      "request_item_id": "afac2dfd",
      "event_type": "RiverineInundation",
      "longitudes": [69.4787],
      "latitudes": [34.556],
      "year": 2080,
      "scenario": "rcp8p5",
      "indicator_id": "flood_depth"
    }
  ]
}`

const sampleAssetRequest = `{
  "assets": {
    "items": [
      {
        "asset_class": "RealEstateAsset",
        "type": "Buildings/Industrial",
        "location": "Asia",
        "longitude": 69.4787,
        "latitude": 34.556
      }
    ]
  },
  "scenario": "rcp8p5",
  "year": 2050
}`

func newHazardsCmd() *cobra.Command {
	var requestFile string
	var availability bool

	cmd := &cobra.Command{
		Use:   "hazards",
		Short: "Query hazard data or the hazard model catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			operation := "/api/get_hazard_data"
			if availability {
				operation = "/api/get_hazard_data_availability"
			}
			return runQuery(operation, requestFile, sampleHazardRequest)
		},
	}

	cmd.Flags().StringVar(&requestFile, "request", "", `request JSON file ("-" for stdin, empty for a built-in sample)`)
	cmd.Flags().BoolVar(&availability, "availability", false, "query the model catalog instead of data")
	return cmd
}

func newAssetsCmd() *cobra.Command {
	var requestFile string
	var impact bool

	cmd := &cobra.Command{
		Use:   "assets",
		Short: "Query asset exposure or asset impact",
		RunE: func(cmd *cobra.Command, args []string) error {
			operation := "/api/get_asset_exposure"
			if impact {
				operation = "/api/get_asset_impact"
			}
			return runQuery(operation, requestFile, sampleAssetRequest)
		},
	}

	cmd.Flags().StringVar(&requestFile, "request", "", `request JSON file ("-" for stdin, empty for a built-in sample)`)
	cmd.Flags().BoolVar(&impact, "impact", false, "query impacts and risk measures instead of exposure")
	return cmd
}

func runQuery(operation, requestFile, sample string) error {
	body := []byte(sample)
	if requestFile != "" {
		var err error
		body, err = readRequestFile(requestFile)
		if err != nil {
			return err
		}
	}
	reply, err := call(http.MethodPost, operation, body)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(reply)
	return err
}

func newTilesCmd() *cobra.Command {
	var (
		resource string
		lat, lon float64
		zoom     int
		year     int
		scenario string
		format   string
		output   string
	)

	cmd := &cobra.Command{
		Use:   "tiles",
		Short: "Fetch the map tile covering a coordinate",
		RunE: func(cmd *cobra.Command, args []string) error {
			tile := hazard.TileFromLatLon(lat, lon, zoom)

			query := url.Values{}
			query.Set("year", strconv.Itoa(year))
			if scenario != "" {
				query.Set("scenarioId", scenario)
			}
			path := fmt.Sprintf("/api/tiles/%s/%d/%d/%d.%s?%s",
				resource, tile.Z, tile.X, tile.Y, format, query.Encode())

			img, err := call(http.MethodGet, path, nil)
			if err != nil {
				return err
			}

			if output == "" {
				output = fmt.Sprintf("%d_%d_%d.%s", tile.Z, tile.X, tile.Y, format)
			}
			if err := os.WriteFile(output, img, 0o644); err != nil {
				return err
			}
			fmt.Printf("Saved tile z=%d x=%d y=%d to %s\n", tile.Z, tile.X, tile.Y, output)
			return nil
		},
	}

	cmd.Flags().StringVar(&resource, "resource", "", "hazard array resource path")
	cmd.Flags().Float64Var(&lat, "lat", 0, "latitude (WGS84)")
	cmd.Flags().Float64Var(&lon, "lon", 0, "longitude (WGS84)")
	cmd.Flags().IntVar(&zoom, "zoom", 8, "zoom level")
	cmd.Flags().IntVar(&year, "year", 1985, "projection year")
	cmd.Flags().StringVar(&scenario, "scenario", "historical", "scenario id")
	cmd.Flags().StringVar(&format, "format", "png", "image format")
	cmd.Flags().StringVar(&output, "out", "", "output file (defaults to z_x_y.<format>)")
	cmd.MarkFlagRequired("resource")
	return cmd
}

func newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Drop server-side caches",
		RunE: func(cmd *cobra.Command, args []string) error {
			reply, err := call(http.MethodGet, "/api/reset", nil)
			if err != nil {
				return err
			}
			fmt.Println(string(reply))
			return nil
		},
	}
}
