package customers

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

type FileRepository struct {
	path string
	mu   sync.Mutex
}

func NewFileRepository(path string) (*FileRepository, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("touch file: %w", err)
	}
	_ = f.Close()
	return &FileRepository{path: path}, nil
}

func (r *FileRepository) LoadAll() ([]Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadUnlocked()
}

func (r *FileRepository) Upsert(c Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cs, _ := r.loadUnlocked()
	updated := false
	for i, x := range cs {
		if x.VehicleReg == c.VehicleReg {
			cs[i] = c
			updated = true
			break
		}
	}
	if !updated {
		cs = append(cs, c)
	}
	return r.saveUnlocked(cs)
}

func (r *FileRepository) Remove(vehicleReg string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cs, _ := r.loadUnlocked()
	var out []Customer
	for _, c := range cs {
		if c.VehicleReg != vehicleReg {
			out = append(out, c)
		}
	}
	return r.saveUnlocked(out)
}

func (r *FileRepository) loadUnlocked() ([]Customer, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer f.Close()
	var cs []Customer
	if err := json.NewDecoder(f).Decode(&cs); err != nil {
		if err == io.EOF {
			return []Customer{}, nil
		}
		return []Customer{}, nil
	}
	return cs, nil
}

func (r *FileRepository) saveUnlocked(cs []Customer) error {
	f, err := os.OpenFile(r.path, os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open write: %w", err)
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cs); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
