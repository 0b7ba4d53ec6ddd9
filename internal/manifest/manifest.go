// Package manifest records what a generation run did: which contract
// number it used, what every placeholder resolved to and which files it
// wrote.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jorge-barreto/contractgen/internal/layout"
)

const (
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

type Step struct {
	Name     string    `json:"name"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end,omitempty"`
	Duration string    `json:"duration,omitempty"`
}

type Token struct {
	Token    string `json:"token"`
	Strategy string `json:"strategy"`
	Value    string `json:"value"`
	Replaced int    `json:"replaced"`
}

type Output struct {
	Format string `json:"format"`
	Kind   string `json:"kind"`
	Path   string `json:"path"`
}

type Manifest struct {
	mu             sync.Mutex
	RunID          string    `json:"run_id"`
	ContractNumber string    `json:"contract_number"`
	ContractFile   string    `json:"contract_file"`
	Template       string    `json:"template"`
	Status         string    `json:"status"`
	Error          string    `json:"error,omitempty"`
	Started        time.Time `json:"started"`
	Finished       time.Time `json:"finished,omitempty"`
	Steps          []Step    `json:"steps"`
	Tokens         []Token   `json:"tokens"`
	Outputs        []Output  `json:"outputs"`
	Skipped        []string  `json:"skipped,omitempty"`
}

// New starts a manifest with a fresh run id.
func New(contractFile, template string) *Manifest {
	return &Manifest{
		RunID:        uuid.NewString(),
		ContractFile: contractFile,
		Template:     template,
		Status:       StatusRunning,
		Started:      time.Now(),
	}
}

// Load reads a manifest written by Save.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decoding manifest %s: %w", path, err)
	}
	return &m, nil
}

// Save writes the manifest atomically.
func (m *Manifest) Save(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return layout.WriteFileAtomic(path, data, 0644)
}

// StepStart appends a new step entry.
func (m *Manifest) StepStart(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Steps = append(m.Steps, Step{Name: name, Start: time.Now()})
}

// StepEnd records the end time for the most recent open step named name.
func (m *Manifest) StepEnd(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := len(m.Steps) - 1; i >= 0; i-- {
		if m.Steps[i].Name == name && m.Steps[i].End.IsZero() {
			m.Steps[i].End = time.Now()
			m.Steps[i].Duration = FormatDuration(m.Steps[i].End.Sub(m.Steps[i].Start))
			break
		}
	}
}

// AddToken records one resolved placeholder.
func (m *Manifest) AddToken(t Token) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Tokens = append(m.Tokens, t)
}

// AddOutput records a written file.
func (m *Manifest) AddOutput(o Output) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Outputs = append(m.Outputs, o)
}

// Skip records a format that was requested but not produced.
func (m *Manifest) Skip(reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Skipped = append(m.Skipped, reason)
}

// Finish marks the run completed, or failed when err is non-nil.
func (m *Manifest) Finish(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Finished = time.Now()
	if err != nil {
		m.Status = StatusFailed
		m.Error = err.Error()
		return
	}
	m.Status = StatusCompleted
}

// Elapsed is the run's wall time so far, or in total once finished.
func (m *Manifest) Elapsed() time.Duration {
	if m.Finished.IsZero() {
		return time.Since(m.Started)
	}
	return m.Finished.Sub(m.Started)
}

// FormatDuration renders d as "1m 05s" with millisecond detail for short
// runs.
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%dm %02ds", m, s)
}
