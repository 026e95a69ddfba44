// Command shadow_compare replays a scripted sequence of record requests
// against this service and a legacy deployment and reports where their
// responses diverge. Writes are replayed too, so point it at disposable data.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"go.uber.org/zap"
)

type step struct {
	Method   string          `json:"method"`
	Path     string          `json:"path"`
	Body     json.RawMessage `json:"body,omitempty"`
	Critical bool            `json:"critical"`
	// Ignore lists top-level response keys left out of the body comparison.
	Ignore []string `json:"ignore,omitempty"`
}

type scenario struct {
	Steps []step `json:"steps"`
}

type outcome struct {
	Step          step
	GoStatus      int
	LegacyStatus  int
	StatusMatch   bool
	BodyMatch     bool
	Err           error
	GoLatency     time.Duration
	LegacyLatency time.Duration
}

func (o outcome) diverged() bool {
	return o.Err != nil || !o.StatusMatch || !o.BodyMatch
}

func main() {
	var (
		goBase       string
		legacyBase   string
		scenarioPath string
		timeout      time.Duration
	)

	flag.StringVar(&goBase, "go-base", "http://localhost:3000", "Base URL of this service")
	flag.StringVar(&legacyBase, "legacy-base", "http://localhost:4000", "Base URL of the legacy deployment")
	flag.StringVar(&scenarioPath, "scenario", filepath.Join("scripts", "shadow_compare", "scenario.json"), "Path to the JSON request scenario")
	flag.DurationVar(&timeout, "timeout", 5*time.Second, "HTTP client timeout")
	flag.Parse()

	logr, _ := zap.NewDevelopment()
	defer logr.Sync() //nolint:errcheck

	steps, err := loadScenario(scenarioPath)
	if err != nil {
		logr.Fatal("load scenario", zap.String("path", scenarioPath), zap.Error(err))
	}

	client := &http.Client{Timeout: timeout}
	outcomes := make([]outcome, 0, len(steps))
	var breaking, optional int
	for _, s := range steps {
		o := replay(client, goBase, legacyBase, s)
		if o.diverged() {
			if s.Critical {
				breaking++
			} else {
				optional++
			}
		}
		outcomes = append(outcomes, o)
	}

	color.Yellow("Shadow compare: %s vs %s", goBase, legacyBase)
	printReport(os.Stdout, outcomes)
	logr.Info("shadow compare finished", zap.Int("steps", len(steps)), zap.Int("breaking", breaking), zap.Int("optional", optional))
	if breaking > 0 {
		_ = logr.Sync()
		os.Exit(1)
	}
}

func loadScenario(path string) ([]step, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sc scenario
	if err := json.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("no steps defined in %s", path)
	}
	return sc.Steps, nil
}

func replay(client *http.Client, goBase, legacyBase string, s step) outcome {
	o := outcome{Step: s}

	goStatus, goBody, goLatency, err := send(client, goBase, s)
	if err != nil {
		o.Err = fmt.Errorf("go request: %w", err)
		return o
	}
	legacyStatus, legacyBody, legacyLatency, err := send(client, legacyBase, s)
	if err != nil {
		o.Err = fmt.Errorf("legacy request: %w", err)
		return o
	}

	o.GoStatus, o.LegacyStatus = goStatus, legacyStatus
	o.GoLatency, o.LegacyLatency = goLatency, legacyLatency
	o.StatusMatch = goStatus == legacyStatus
	o.BodyMatch = bodiesEqual(goBody, legacyBody, s.Ignore)
	return o
}

func send(client *http.Client, base string, s step) (int, []byte, time.Duration, error) {
	method := strings.ToUpper(strings.TrimSpace(s.Method))
	if method == "" {
		method = http.MethodGet
	}
	path := s.Path
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	var body io.Reader
	if len(s.Body) > 0 {
		body = bytes.NewReader(s.Body)
	}
	req, err := http.NewRequest(method, strings.TrimRight(base, "/")+path, body)
	if err != nil {
		return 0, nil, 0, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, 0, err
	}
	defer resp.Body.Close()
	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, 0, fmt.Errorf("read body: %w", err)
	}
	return resp.StatusCode, payload, time.Since(start), nil
}

// bodiesEqual compares two bodies as JSON when both parse, dropping the
// ignored keys from top-level objects, and byte-wise otherwise.
func bodiesEqual(a, b []byte, ignore []string) bool {
	var aj, bj interface{}
	if json.Unmarshal(a, &aj) != nil || json.Unmarshal(b, &bj) != nil {
		return bytes.Equal(bytes.TrimSpace(a), bytes.TrimSpace(b))
	}
	return reflect.DeepEqual(strip(aj, ignore), strip(bj, ignore))
}

func strip(v interface{}, ignore []string) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		for _, key := range ignore {
			delete(val, key)
		}
	case []interface{}:
		for i, item := range val {
			val[i] = strip(item, ignore)
		}
	}
	return v
}

func printReport(w io.Writer, outcomes []outcome) {
	ok := color.New(color.FgGreen).SprintFunc()
	diff := color.New(color.FgYellow).SprintFunc()
	fail := color.New(color.FgRed).SprintFunc()

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Result", "Method", "Path", "Go", "Legacy", "Body Match", "Critical"})
	for _, o := range outcomes {
		result := ok("OK")
		switch {
		case o.Err != nil:
			result = fail("ERROR")
		case o.diverged() && o.Step.Critical:
			result = fail("DIFF")
		case o.diverged():
			result = diff("DIFF")
		}
		goCell := fmt.Sprintf("%d (%s)", o.GoStatus, o.GoLatency.Round(time.Millisecond))
		legacyCell := fmt.Sprintf("%d (%s)", o.LegacyStatus, o.LegacyLatency.Round(time.Millisecond))
		if o.Err != nil {
			goCell, legacyCell = o.Err.Error(), "-"
		}
		table.Append([]string{
			result,
			strings.ToUpper(o.Step.Method),
			o.Step.Path,
			goCell,
			legacyCell,
			fmt.Sprintf("%t", o.BodyMatch),
			fmt.Sprintf("%t", o.Step.Critical),
		})
	}
	table.Render()
}
