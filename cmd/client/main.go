// Manual end-to-end probe against a running relay server. Reads its
// target and credentials from the environment and prints the response.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func main() {
	serverURL := getenv("SERVER_URL", "http://localhost:8080")
	relayKey := os.Getenv("RELAY_KEY")
	accessToken := os.Getenv("ACCESS_TOKEN")
	prompt := getenv("PROMPT", "a red fox running through fresh snow")

	if accessToken == "" {
		fmt.Fprintln(os.Stderr, "ACCESS_TOKEN is required")
		os.Exit(1)
	}

	body, err := json.Marshal(map[string]any{
		"access_token": accessToken,
		"payload": map[string]any{
			"kind":          "video",
			"prompt":        prompt,
			"orientation":   "landscape",
			"size":          "small",
			"n_frames":      450,
			"model":         "sy_8",
			"inpaint_items": []any{},
		},
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "marshal request:", err)
		os.Exit(1)
	}

	req, err := http.NewRequest(http.MethodPost, serverURL+"/v1/tasks", bytes.NewReader(body))
	if err != nil {
		fmt.Fprintln(os.Stderr, "build request:", err)
		os.Exit(1)
	}
	req.Header.Set("Content-Type", "application/json")
	if relayKey != "" {
		req.Header.Set("x-relay-key", relayKey)
	}

	client := &http.Client{Timeout: 120 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Fprintln(os.Stderr, "request failed:", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	out, _ := io.ReadAll(resp.Body)
	fmt.Printf("status: %d\n%s\n", resp.StatusCode, out)
	if resp.StatusCode != http.StatusOK {
		os.Exit(1)
	}
}
