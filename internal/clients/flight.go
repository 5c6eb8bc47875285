package clients

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"time"
)

// ErrNoFlights indicates the provider returned an empty state vector list.
var ErrNoFlights = errors.New("no flights currently available")

// FlightClient fetches live state vectors from the OpenSky Network API.
type FlightClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewFlightClient(baseURL string) *FlightClient {
	return &FlightClient{
		baseURL: baseURL,
		// The states/all endpoint is slow; give it more headroom than the
		// other providers.
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// FlightState is one reshaped OpenSky state vector. Pointer fields are null
// when the provider had no value.
type FlightState struct {
	Icao24        string   `json:"icao24"`
	Callsign      string   `json:"callsign"`
	OriginCountry string   `json:"origin_country"`
	TimePosition  *int64   `json:"time_position"`
	LastContact   int64    `json:"last_contact"`
	Longitude     *float64 `json:"longitude"`
	Latitude      *float64 `json:"latitude"`
	BaroAltitude  *float64 `json:"baro_altitude"`
	OnGround      bool     `json:"on_ground"`
	Velocity      *float64 `json:"velocity"`
	TrueTrack     *float64 `json:"true_track"`
	VerticalRate  *float64 `json:"vertical_rate"`
}

// openSkyResponse mirrors the OpenSky states payload: each state is a
// heterogeneous positional array.
type openSkyResponse struct {
	Time   int64   `json:"time"`
	States [][]any `json:"states"`
}

// FindByCallsign returns all current flights whose trimmed callsign matches
// exactly. An empty slice means the flight is not currently airborne.
func (c *FlightClient) FindByCallsign(ctx context.Context, callsign string) ([]FlightState, error) {
	states, err := c.fetchStates(ctx)
	if err != nil {
		return nil, err
	}

	matches := []FlightState{}
	for _, state := range states {
		fs := reshapeState(state)
		if fs.Callsign == callsign {
			matches = append(matches, fs)
		}
	}
	return matches, nil
}

// RandomFlight picks one current flight at random.
func (c *FlightClient) RandomFlight(ctx context.Context) (*FlightState, error) {
	states, err := c.fetchStates(ctx)
	if err != nil {
		return nil, err
	}
	if len(states) == 0 {
		return nil, ErrNoFlights
	}

	fs := reshapeState(states[rand.Intn(len(states))])
	return &fs, nil
}

func (c *FlightClient) fetchStates(ctx context.Context) ([][]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/states/all", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build flight request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach flight API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("flight API responded with status %d", resp.StatusCode)
	}

	var raw openSkyResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode flight response: %w", err)
	}

	return raw.States, nil
}

// reshapeState maps the positional OpenSky state vector onto named fields.
// Index layout is fixed by the provider: 0 icao24, 1 callsign, 2 origin
// country, 3 time_position, 4 last_contact, 5 longitude, 6 latitude,
// 7 baro_altitude, 8 on_ground, 9 velocity, 10 true_track, 11 vertical_rate.
func reshapeState(state []any) FlightState {
	return FlightState{
		Icao24:        stateString(state, 0),
		Callsign:      strings.TrimSpace(stateString(state, 1)),
		OriginCountry: stateString(state, 2),
		TimePosition:  stateInt(state, 3),
		LastContact:   stateIntValue(state, 4),
		Longitude:     stateFloat(state, 5),
		Latitude:      stateFloat(state, 6),
		BaroAltitude:  stateFloat(state, 7),
		OnGround:      stateBool(state, 8),
		Velocity:      stateFloat(state, 9),
		TrueTrack:     stateFloat(state, 10),
		VerticalRate:  stateFloat(state, 11),
	}
}

func stateString(state []any, i int) string {
	if i < len(state) {
		if s, ok := state[i].(string); ok {
			return s
		}
	}
	return ""
}

func stateFloat(state []any, i int) *float64 {
	if i < len(state) {
		if f, ok := state[i].(float64); ok {
			return &f
		}
	}
	return nil
}

func stateInt(state []any, i int) *int64 {
	if f := stateFloat(state, i); f != nil {
		v := int64(*f)
		return &v
	}
	return nil
}

func stateIntValue(state []any, i int) int64 {
	if v := stateInt(state, i); v != nil {
		return *v
	}
	return 0
}

func stateBool(state []any, i int) bool {
	if i < len(state) {
		if b, ok := state[i].(bool); ok {
			return b
		}
	}
	return false
}
