// Package service exposes per-entity operations over a storage.Repository.
package service

import (
	"github.com/sirupsen/logrus"

	"movierental/internal/domain"
	"movierental/internal/storage"
)

// ClientService manages clients.
type ClientService struct {
	repo storage.Repository[domain.Client]
	log  logrus.FieldLogger
}

// NewClientService returns a service backed by repo.
func NewClientService(repo storage.Repository[domain.Client], logger logrus.FieldLogger) *ClientService {
	return &ClientService{repo: repo, log: logger.WithField("component", "client_service")}
}

// Repository returns the repository the service writes to.
func (s *ClientService) Repository() storage.Repository[domain.Client] { return s.repo }

// Add validates c and stores it as a new client.
func (s *ClientService) Add(c domain.Client) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := s.repo.Add(c); err != nil {
		return err
	}
	s.log.WithField("client_id", c.ID).Debug("Client added")
	return nil
}

// Update replaces the stored client with the same ID.
func (s *ClientService) Update(c domain.Client) error {
	if err := c.Validate(); err != nil {
		return err
	}
	return s.repo.Set(c.ID, c)
}

// Remove deletes the client with the given ID.
func (s *ClientService) Remove(id string) error {
	return s.repo.Delete(id)
}

// Has reports whether a client with the given ID exists.
func (s *ClientService) Has(id string) (bool, error) {
	return s.repo.Has(id)
}

// Get returns the client with the given ID.
func (s *ClientService) Get(id string) (domain.Client, error) {
	return s.repo.Get(id)
}

// List renders every client for display.
func (s *ClientService) List() (string, error) {
	return s.repo.Listing()
}

// All returns every client in insertion order.
func (s *ClientService) All() ([]domain.Client, error) {
	return s.repo.Values()
}

// SearchID returns clients whose ID contains q, ignoring case.
func (s *ClientService) SearchID(q string) ([]domain.Client, error) {
	return s.search(func(c domain.Client) bool { return containsFold(c.ID, q) })
}

// SearchName returns clients whose name contains q, ignoring case.
func (s *ClientService) SearchName(q string) ([]domain.Client, error) {
	return s.search(func(c domain.Client) bool { return containsFold(c.Name, q) })
}

func (s *ClientService) search(keep func(domain.Client) bool) ([]domain.Client, error) {
	all, err := s.repo.Values()
	if err != nil {
		return nil, err
	}
	return filter(all, keep), nil
}
