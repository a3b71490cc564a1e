package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

var maxDisplays int = 1000
var httpHostPort string = "127.0.0.1:1080"

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

func main() {
	displayIDs := make([]string, maxDisplays)
	for i := 0; i < maxDisplays; i++ {
		displayIDs[i] = uuid.NewString()
	}
	fmt.Printf("generated %v display IDs\n", maxDisplays)

	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	var startTime time.Time
	var usedTime time.Duration

	startTime = time.Now()
	wg := sync.WaitGroup{}
	for i := 0; i < maxDisplays; i++ {
		i := i
		wg.Add(1)
		go func() {
			registerDisplay(displayIDs[i], i)
			fmt.Printf("\rregistered display %v", i)
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rregistered %v displays: used time=%v seconds, throughput=%v action/second\n",
		maxDisplays, usedTime.Seconds(), float64(maxDisplays)/usedTime.Seconds(),
	)

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for i := 0; i < maxDisplays; i++ {
		i := i
		wg.Add(1)
		go func() {
			doAction(displayIDs[i])
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\n\rdid actions for %v displays: used time=%v seconds, throughput=%v action/second\n",
		maxDisplays, usedTime.Seconds(), float64(maxDisplays*2)/usedTime.Seconds(),
	)
}

func flipCoin() bool {
	return rnd.Int31n(100000)%2 == 0
}

func registerDisplay(displayID string, i int) {
	payload := map[string]string{
		"display_id":   displayID,
		"location":     fmt.Sprintf("Ward %d", i%20),
		"content_mode": "token_queue",
	}

	jsonData, _ := json.Marshal(payload)
	resp, err := http.Post(fmt.Sprintf("http://%s/displays", httpHostPort), "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		panic(fmt.Sprintf("unexpected register status %v for display %s", resp.StatusCode, displayID))
	}
}

// doAction sends one heartbeat and one snapshot read per display, heartbeat
// first so the read observes an online display
func doAction(displayID string) {
	heartbeat(displayID)
	readSnapshot(displayID)
}

func heartbeat(displayID string) {
	payload := map[string]string{}
	if flipCoin() {
		payload["status"] = "online"
	}

	jsonData, _ := json.Marshal(payload)
	resp, err := http.Post(fmt.Sprintf("http://%s/displays/%s/heartbeat", httpHostPort, displayID), "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()
}

func readSnapshot(displayID string) {
	resp, err := http.Get(fmt.Sprintf("http://%s/displays/%s/data", httpHostPort, displayID))
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()
}
