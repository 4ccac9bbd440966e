// Mock YouTube Data API v3 server for local development. Serves canned
// responses for the endpoints the analytics service calls, so the API can be
// exercised without a real key or quota.
package main

import (
	_ "embed"
	"log"
	"net/http"
	"time"
)

//go:embed channels.json
var channelsData []byte

//go:embed playlist_items.json
var playlistItemsData []byte

//go:embed videos.json
var videosData []byte

//go:embed search.json
var searchData []byte

func main() {
	serve := func(name string, data []byte) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			// Simulate network latency (50-200ms)
			time.Sleep(time.Duration(50+time.Now().UnixNano()%150) * time.Millisecond)

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			if _, err := w.Write(data); err != nil {
				log.Printf("[Mock YouTube] %s write error: %v", name, err)
			}

			log.Printf("[Mock YouTube] %s %s - 200 OK", r.Method, r.URL.Path)
		}
	}

	http.HandleFunc("/channels", serve("channels", channelsData))
	http.HandleFunc("/playlistItems", serve("playlistItems", playlistItemsData))
	http.HandleFunc("/videos", serve("videos", videosData))
	http.HandleFunc("/search", serve("search", searchData))

	log.Println("Mock YouTube API running on :8081")
	server := &http.Server{
		Addr:         ":8081",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	log.Fatal(server.ListenAndServe())
}
