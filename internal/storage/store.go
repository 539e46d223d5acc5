package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/wirecube/internal/linalg"
	"github.com/san-kum/wirecube/internal/scene"
)

var ErrBadRecord = errors.New("storage: malformed frame record")

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Preset    string             `json:"preset,omitempty"`
	Timestamp time.Time          `json:"timestamp"`
	Cube      [6]float64         `json:"cube"`
	Camera    [3]float64         `json:"camera"`
	Start     float64            `json:"start"`
	Step      float64            `json:"step"`
	Frames    int                `json:"frames"`
	Skipped   int                `json:"skipped"`
	Metrics   map[string]float64 `json:"metrics,omitempty"`
}

// Save writes a new run directory holding metadata.json and frames.csv and
// returns the run id. meta.ID, meta.Timestamp and meta.Frames are filled in.
func (s *Store) Save(meta RunMetadata, frames []scene.Frame) (string, error) {
	now := time.Now()
	meta.ID = fmt.Sprintf("cube_%d", now.UnixNano())
	meta.Timestamp = now
	meta.Frames = len(frames)
	runDir := filepath.Join(s.baseDir, meta.ID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "frames.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := WriteFramesCSV(csvFile, frames); err != nil {
		return "", err
	}
	return meta.ID, nil
}

// WriteFramesCSV writes one row per frame: the time followed by the x, y and
// z of every projected corner.
func WriteFramesCSV(out io.Writer, frames []scene.Frame) error {
	w := csv.NewWriter(out)

	header := []string{"time"}
	for i := 0; i < scene.Corners; i++ {
		header = append(header, fmt.Sprintf("c%dx", i), fmt.Sprintf("c%dy", i), fmt.Sprintf("c%dz", i))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, f := range frames {
		row := []string{strconv.FormatFloat(f.Time, 'f', 6, 64)}
		for _, c := range f.Corners {
			for _, val := range c.Components() {
				row = append(row, strconv.FormatFloat(val, 'f', 6, 64))
			}
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// List returns every readable run, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		if runs[i].Timestamp.Equal(runs[j].Timestamp) {
			return runs[i].ID < runs[j].ID
		}
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadFrames reads frames.csv back into frames with points and edges restored.
func (s *Store) LoadFrames(runID string) ([]scene.Frame, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "frames.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ReadFramesCSV(file)
}

func ReadFramesCSV(in io.Reader) ([]scene.Frame, error) {
	r := csv.NewReader(in)
	r.FieldsPerRecord = 1 + 3*scene.Corners

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRecord, err)
	}
	if len(records) < 2 {
		return []scene.Frame{}, nil
	}

	frames := make([]scene.Frame, 0, len(records)-1)
	for line, record := range records[1:] {
		vals := make([]float64, len(record))
		for j, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrBadRecord, line+2, err)
			}
			vals[j] = v
		}

		f := scene.Frame{Time: vals[0], Edges: scene.Edges}
		for i := 0; i < scene.Corners; i++ {
			x, y, z := vals[1+3*i], vals[2+3*i], vals[3+3*i]
			f.Corners[i] = linalg.NewVector3(x, y, z)
			f.Points[i] = scene.Point{X: x, Y: y}
		}
		frames = append(frames, f)
	}
	return frames, nil
}

type ExportData struct {
	Run    RunMetadata                 `json:"run"`
	Times  []float64                   `json:"times"`
	Points [][scene.Corners][2]float64 `json:"points"`
	Edges  [12][2]int                  `json:"edges"`
}

// ExportJSON writes a run and its projected points as one indented document.
func ExportJSON(w io.Writer, meta RunMetadata, frames []scene.Frame) error {
	data := ExportData{
		Run:    meta,
		Times:  make([]float64, len(frames)),
		Points: make([][scene.Corners][2]float64, len(frames)),
		Edges:  scene.Edges,
	}
	for i, f := range frames {
		data.Times[i] = f.Time
		for j, p := range f.Points {
			data.Points[i][j] = [2]float64{p.X, p.Y}
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
