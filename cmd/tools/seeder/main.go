// Seeder posts demo sales to a running carsales API so the report endpoints
// have data to aggregate. The random source is seeded deterministically, so
// repeated runs against a fresh server produce the same data set.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"time"
)

var carModels = []string{"Sedan", "SUV", "Offroad", "Sport"}

func main() {
	baseURL := flag.String("base-url", "http://localhost:8080", "base URL of a running carsales API")
	count := flag.Int("count", 20, "number of demo sales to create")
	seed := flag.Int64("seed", 42, "random seed")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	client := &http.Client{Timeout: 5 * time.Second}

	for i := 0; i < *count; i++ {
		payload := map[string]any{
			"carModel":             carModels[rng.Intn(len(carModels))],
			"distributionCenterId": rng.Intn(4) + 1,
			"quantity":             rng.Intn(5) + 1,
		}
		if err := postSale(client, *baseURL, payload); err != nil {
			log.Fatalf("seed sale %d: %v", i+1, err)
		}
	}

	log.Printf("seeded %d sales against %s", *count, *baseURL)
}

func postSale(client *http.Client, baseURL string, payload map[string]any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	resp, err := client.Post(baseURL+"/api/v1/sales", "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, msg)
	}
	return nil
}
