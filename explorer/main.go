// Command explorer is an autonomous client that drives a robot over the REST
// API until it has visited every reachable cell of the grid. It learns
// obstacle positions from blocked moves and recharges when the battery runs
// low.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"
)

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type Report struct {
	Position   Position `json:"position"`
	Heading    string   `json:"heading"`
	Battery    int      `json:"battery"`
	GridWidth  int      `json:"grid_width"`
	GridHeight int      `json:"grid_height"`
	MoveCount  int      `json:"move_count"`
	Obstacles  int      `json:"obstacles"`
}

type Result struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	ErrorKind string `json:"error_kind"`
}

type CommandResponse struct {
	Result Result `json:"result"`
	Report Report `json:"report"`
	Grid   string `json:"grid"`
}

type SessionResponse struct {
	ID     string `json:"id"`
	Report Report `json:"report"`
}

type Client struct {
	baseURL   string
	sessionID string
	client    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) CreateSession(scenario string) (*Report, error) {
	var reqBody []byte
	var err error

	if scenario != "" {
		reqBody, err = json.Marshal(map[string]string{"scenario": scenario})
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
	}

	resp, err := c.client.Post(c.baseURL+"/api/sessions", "application/json", bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("create session failed: %s - %s", resp.Status, string(body))
	}

	var session SessionResponse
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, fmt.Errorf("parse session response: %w", err)
	}

	c.sessionID = session.ID
	return &session.Report, nil
}

func (c *Client) GetReport() (*Report, error) {
	url := fmt.Sprintf("%s/api/sessions/%s/report", c.baseURL, c.sessionID)
	resp, err := c.client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("get report: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("get report failed: %s - %s", resp.Status, string(body))
	}

	var report Report
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		return nil, fmt.Errorf("parse report: %w", err)
	}

	return &report, nil
}

// Execute runs one command line against the session. A failed command is not
// an error at this level; the caller inspects Result.ErrorKind.
func (c *Client) Execute(command string) (*CommandResponse, error) {
	body, err := json.Marshal(map[string]string{"command": command})
	if err != nil {
		return nil, fmt.Errorf("marshal command: %w", err)
	}

	url := fmt.Sprintf("%s/api/sessions/%s/command", c.baseURL, c.sessionID)
	resp, err := c.client.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("execute command: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("execute command failed: %s - %s", resp.Status, string(respBody))
	}

	var cmdResp CommandResponse
	if err := json.NewDecoder(resp.Body).Decode(&cmdResp); err != nil {
		return nil, fmt.Errorf("parse command response: %w", err)
	}

	return &cmdResp, nil
}

func (c *Client) Reset() (*Report, error) {
	url := fmt.Sprintf("%s/api/sessions/%s/reset", c.baseURL, c.sessionID)
	resp, err := c.client.Post(url, "application/json", nil)
	if err != nil {
		return nil, fmt.Errorf("reset: %w", err)
	}
	defer resp.Body.Close()

	var cmdResp CommandResponse
	if err := json.NewDecoder(resp.Body).Decode(&cmdResp); err != nil {
		return nil, fmt.Errorf("parse reset response: %w", err)
	}

	return &cmdResp.Report, nil
}

func main() {
	serverURL := flag.String("url", "http://localhost:8080", "Simulator server URL")
	scenario := flag.String("scenario", "", "Scenario name (empty for the default grid)")
	continueSession := flag.String("continue", "", "Resume an existing session by ID")
	maxCommands := flag.Int("max-commands", 3000, "Maximum commands per attempt")
	maxAttempts := flag.Int("max-attempts", 5, "Maximum attempts before giving up")
	verbose := flag.Bool("v", false, "Verbose output")
	delayMs := flag.Int("delay", 0, "Delay between commands in milliseconds (0 = no delay)")
	flag.Parse()

	log.Printf("Connecting to simulator at %s", *serverURL)
	client := NewClient(*serverURL)

	var report *Report
	var err error

	// Check for saved session ID
	sessionFile := ".session"
	savedSessionID := ""

	if *continueSession != "" {
		savedSessionID = *continueSession
	} else {
		if data, err := os.ReadFile(sessionFile); err == nil {
			savedSessionID = string(bytes.TrimSpace(data))
		}
	}

	if savedSessionID != "" {
		client.sessionID = savedSessionID
		log.Printf("Resuming session: %s", client.sessionID)
		report, err = client.GetReport()
		if err != nil {
			log.Printf("Failed to resume session (may be expired): %v", err)
			log.Printf("Creating new session...")
			savedSessionID = ""
		}
	}

	if savedSessionID == "" {
		report, err = client.CreateSession(*scenario)
		if err != nil {
			log.Fatalf("Failed to create session: %v", err)
		}
		log.Printf("Session created: %s", client.sessionID)

		if err := os.WriteFile(sessionFile, []byte(client.sessionID), 0644); err != nil {
			log.Printf("Warning: Failed to save session ID: %v", err)
		}
	}

	log.Printf("Grid: %dx%d, Battery: %d/100, Obstacles: %d",
		report.GridWidth, report.GridHeight, report.Battery, report.Obstacles)

	strategy := NewCoverageStrategy(report)

	attemptNum := 0
	for attemptNum < *maxAttempts {
		attemptNum++

		// Start each attempt from the initial state.
		report, err = client.Reset()
		if err != nil {
			log.Fatalf("Failed to reset: %v", err)
		}
		strategy.Reset()
		strategy.Observe(report)

		log.Printf("\n=== Attempt %d/%d ===", attemptNum, *maxAttempts)

		commandCount := 0
		for !strategy.Done() && commandCount < *maxCommands {
			if *verbose && commandCount%50 == 0 {
				log.Printf("Position: (%d,%d), Battery: %d/100, Coverage: %d/%d",
					report.Position.X, report.Position.Y, report.Battery,
					strategy.VisitedCount(), strategy.TargetCount())
			}

			command := strategy.NextCommand(report)
			if command == "" {
				log.Printf("No commands left to try")
				break
			}

			resp, err := client.Execute(command)
			if err != nil {
				log.Fatalf("Command failed: %v", err)
			}
			commandCount++

			if !resp.Result.Success {
				strategy.ObserveFailure(report, command, resp.Result.ErrorKind)
				if *verbose {
					log.Printf("Rejected %q: %s", command, resp.Result.Message)
				}
			}

			report = &resp.Report
			strategy.Observe(report)

			if *delayMs > 0 {
				time.Sleep(time.Duration(*delayMs) * time.Millisecond)
			}
		}

		log.Printf("Attempt %d: Commands=%d, Coverage=%d/%d, Battery=%d/100",
			attemptNum, commandCount, strategy.VisitedCount(), strategy.TargetCount(), report.Battery)

		if strategy.Done() {
			log.Printf("\nCOVERAGE COMPLETE: %d cells visited in %d commands (attempt %d)",
				strategy.VisitedCount(), commandCount, attemptNum)
			log.Printf("Session: %s", client.sessionID)
			os.Exit(0)
		}
	}

	log.Printf("\nFailed to cover the grid after %d attempts", attemptNum)
	log.Printf("Session: %s", client.sessionID)
	os.Exit(1)
}
