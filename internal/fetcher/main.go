package fetcher

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/charliearlie/football-IQ-sub007/internal/types"
)

// BackendFetcherConfig points at the game backend's REST RPC surface.
type BackendFetcherConfig struct {
	BaseURL string
	APIKey  string
}

// FetchDailyAttempts pulls every attempt record for one day from the remote
// backend. Day is in YYYY-MM-DD form.
func FetchDailyAttempts(config *BackendFetcherConfig, day string) ([]types.Attempt, error) {
	var rows []*AttemptRow

	err := callRPC(config, "get_daily_attempts", map[string]string{"day": day}, &rows)
	if err != nil {
		return nil, err
	}

	return ToAttempts(rows), nil
}

// FetchProfiles pulls the profile rows for the given user ids. An empty id
// list fetches nothing.
func FetchProfiles(config *BackendFetcherConfig, userIDs []string) ([]types.Profile, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	var rows []*ProfileRow

	err := callRPC(config, "get_profiles", map[string][]string{"user_ids": userIDs}, &rows)
	if err != nil {
		return nil, err
	}

	return ToProfiles(rows), nil
}

func callRPC(config *BackendFetcherConfig, procedure string, params any, out any) error {
	client := &http.Client{}

	body, err := json.Marshal(params)
	if err != nil {
		log.Println("WARN: Failed to encode rpc params")
		return errors.New("Failed to fetch backend")
	}

	req, err := http.NewRequest(
		"POST",
		fmt.Sprintf("%s/rest/v1/rpc/%s", config.BaseURL, procedure),
		bytes.NewReader(body),
	)

	if err != nil {
		log.Println("WARN: Failed to create backend request")
		return errors.New("Failed to fetch backend")
	}

	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("apikey", config.APIKey)
	req.Header.Add("Authorization", "Bearer "+config.APIKey)

	resp, err := client.Do(req)
	if err != nil {
		log.Printf("ERROR: %s\n", err)
		return errors.New("Failed to fetch backend")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("ERROR: Backend rpc %s returned status %d\n", procedure, resp.StatusCode)
		return errors.New("Failed to fetch backend")
	}

	decoder := json.NewDecoder(resp.Body)

	err = decoder.Decode(out)
	if err != nil {
		log.Printf("ERROR: %s\n", err)
		return errors.New("Failed to fetch backend")
	}

	return nil
}
