package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/fhuszti/medias-catalog-go/internal/logger"
	"github.com/fhuszti/medias-catalog-go/internal/model"
	"github.com/fhuszti/medias-catalog-go/internal/port"
	"github.com/fhuszti/medias-catalog-go/internal/uuid"
	"github.com/fhuszti/medias-catalog-go/internal/validation"
	"github.com/go-playground/validator/v10"
)

const maxIDAttempts = 3

// Create appends a new record and persists the catalog.
func (s *Store) Create(ctx context.Context, in port.CreateMediaInput) (model.Media, error) {
	if err := validateInput(in); err != nil {
		return model.Media{}, err
	}

	s.mu.Lock()
	id, err := s.freshID()
	if err != nil {
		s.mu.Unlock()
		return model.Media{}, err
	}

	m := model.Media{
		ID:          id,
		FileName:    in.FileName,
		Description: in.Description,
		UploadDate:  s.now().UTC(),
		FileType:    in.FileType,
		FileSize:    in.FileSize,
	}.Clone()

	staged := append(s.stage(1), m)
	if err := s.persist(ctx, staged); err != nil {
		s.mu.Unlock()
		return model.Media{}, err
	}
	s.items = staged
	s.mu.Unlock()

	logger.Infof(ctx, "created media #%s (%s)", m.ID, m.FileName)
	s.latency.Wait(ctx)
	return m.Clone(), nil
}

// List returns a copy of every record in insertion order.
func (s *Store) List(ctx context.Context) ([]model.Media, error) {
	s.mu.Lock()
	out := make([]model.Media, len(s.items))
	for i, m := range s.items {
		out[i] = m.Clone()
	}
	s.mu.Unlock()

	s.latency.Wait(ctx)
	return out, nil
}

func (s *Store) Get(ctx context.Context, id uuid.UUID) (model.Media, error) {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return model.Media{}, fmt.Errorf("%w: #%s", ErrNotFound, id)
	}
	m := s.items[i].Clone()
	s.mu.Unlock()

	s.latency.Wait(ctx)
	return m, nil
}

// Update merges the supplied fields into the record and persists the catalog.
func (s *Store) Update(ctx context.Context, id uuid.UUID, fields port.UpdateMediaFields) (model.Media, error) {
	if err := validateInput(fields); err != nil {
		return model.Media{}, err
	}

	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return model.Media{}, fmt.Errorf("%w: #%s", ErrNotFound, id)
	}

	updated := s.items[i]
	if fields.Description != nil {
		updated.Description = *fields.Description
	}

	staged := s.stage(0)
	staged[i] = updated
	if err := s.persist(ctx, staged); err != nil {
		s.mu.Unlock()
		return model.Media{}, err
	}
	s.items = staged
	s.mu.Unlock()

	logger.Infof(ctx, "updated media #%s", id)
	s.latency.Wait(ctx)
	return updated.Clone(), nil
}

// Delete removes the record and persists the catalog.
func (s *Store) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return fmt.Errorf("%w: #%s", ErrNotFound, id)
	}

	staged := make([]model.Media, 0, len(s.items)-1)
	staged = append(staged, s.items[:i]...)
	staged = append(staged, s.items[i+1:]...)
	if err := s.persist(ctx, staged); err != nil {
		s.mu.Unlock()
		return err
	}
	s.items = staged
	s.mu.Unlock()

	logger.Infof(ctx, "deleted media #%s", id)
	s.latency.Wait(ctx)
	return nil
}

// freshID draws ids until one is not already in the catalog. Caller holds s.mu.
func (s *Store) freshID() (uuid.UUID, error) {
	for range maxIDAttempts {
		id := s.newID()
		if !id.IsZero() && s.indexOf(id) < 0 {
			return id, nil
		}
	}
	return uuid.UUID{}, fmt.Errorf("could not generate a unique media id after %d attempts", maxIDAttempts)
}

func validateInput(in any) error {
	err := validation.ValidateStruct(in)
	if err == nil {
		return nil
	}

	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	errsJSON, jErr := validation.ErrorsToJson(vErrs)
	if jErr != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return fmt.Errorf("%w: %s", ErrValidation, errsJSON)
}
