package store

import (
	"context"

	"github.com/brizzai/map-signin/internal/apperror"
	"github.com/brizzai/map-signin/internal/models"
)

// ProfileStore reads and writes the user profile under UserKey
type ProfileStore struct {
	kv Store
}

func NewProfileStore(kv Store) *ProfileStore {
	return &ProfileStore{kv: kv}
}

// Load returns the stored profile, or nil when none is stored
func (p *ProfileStore) Load(ctx context.Context) (models.UserProfile, error) {
	data, ok, err := p.kv.Get(ctx, UserKey)
	if err != nil {
		return nil, apperror.Storage("load profile", err)
	}
	if !ok || data == "" {
		return nil, nil
	}
	profile, err := models.ParseUserProfile([]byte(data))
	if err != nil {
		return nil, apperror.Parse("load profile", err)
	}
	return profile, nil
}

// Save replaces the stored profile
func (p *ProfileStore) Save(ctx context.Context, profile models.UserProfile) error {
	data, err := profile.Marshal()
	if err != nil {
		return apperror.Parse("save profile", err)
	}
	if err := p.kv.Set(ctx, UserKey, string(data)); err != nil {
		return apperror.Storage("save profile", err)
	}
	return nil
}

// SaveRaw stores a profile document exactly as the provider sent it.
// data must parse as a profile object.
func (p *ProfileStore) SaveRaw(ctx context.Context, data []byte) error {
	if _, err := models.ParseUserProfile(data); err != nil {
		return apperror.Parse("save profile", err)
	}
	if err := p.kv.Set(ctx, UserKey, string(data)); err != nil {
		return apperror.Storage("save profile", err)
	}
	return nil
}

// Clear removes the stored profile. Clearing an empty store is not an error.
func (p *ProfileStore) Clear(ctx context.Context) error {
	if err := p.kv.Remove(ctx, UserKey); err != nil {
		return apperror.Storage("clear profile", err)
	}
	return nil
}
