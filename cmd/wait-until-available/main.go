package main

import (
	"flag"
	"log/slog"
	"net/http"
	"time"
)

// Usage example on the command line:
// > go run main.go -url=http://localhost:8080/countries
func main() {
	url := flag.String("url", "http://localhost:8080/countries", "the endpoint that must answer with 200")
	interval := flag.Duration("interval", 5*time.Second, "the time between two attempts")
	flag.Parse()

	var totalWaitTime time.Duration
	for {
		res, err := http.Get(*url)
		if err == nil {
			res.Body.Close()
			if res.StatusCode == http.StatusOK {
				slog.Info("service available", "url", *url, "waited", totalWaitTime)
				break
			}
			slog.Info("service not ready", "url", *url, "status", res.StatusCode)
		} else {
			slog.Info("service not reachable", "url", *url, "error", err)
		}
		totalWaitTime += *interval
		slog.Info("waiting", "total", totalWaitTime)
		time.Sleep(*interval)
	}
}
