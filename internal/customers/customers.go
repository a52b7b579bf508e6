package customers

import "time"

type Customer struct {
	VehicleReg string    `json:"vehicle_reg"`
	Name       string    `json:"name"`
	LastSeen   time.Time `json:"last_seen"`
}

type Repository interface {
	LoadAll() ([]Customer, error)
	Upsert(c Customer) error
	Remove(vehicleReg string) error
}

// Service keeps the registry of customers who have authenticated before,
// keyed by vehicle registration. The repo is optional; without one the
// registry is memory-only.
type Service struct {
	repo  Repository
	known map[string]Customer
}

func NewWithRepo(repo Repository) (*Service, error) {
	s := &Service{repo: repo, known: make(map[string]Customer)}
	if repo != nil {
		cs, err := repo.LoadAll()
		if err == nil {
			for _, c := range cs {
				s.known[c.VehicleReg] = c
			}
		}
	}
	return s, nil
}

func (s *Service) IsKnown(vehicleReg string) bool {
	_, ok := s.known[vehicleReg]
	return ok
}

func (s *Service) Get(vehicleReg string) (Customer, bool) {
	c, ok := s.known[vehicleReg]
	return c, ok
}

func (s *Service) Upsert(c Customer) error {
	s.known[c.VehicleReg] = c
	if s.repo != nil {
		return s.repo.Upsert(c)
	}
	return nil
}

func (s *Service) Remove(vehicleReg string) error {
	delete(s.known, vehicleReg)
	if s.repo != nil {
		return s.repo.Remove(vehicleReg)
	}
	return nil
}

func (s *Service) List() []Customer {
	out := make([]Customer, 0, len(s.known))
	for _, c := range s.known {
		out = append(out, c)
	}
	return out
}
