package services

import (
	"context"
	"errors"
	"time"

	"lifetrack/model"
	"lifetrack/store"
)

// ProfileService reads and upserts the owner's profile row. Profiles
// share their id with the owning user.
type ProfileService struct {
	store store.ProfileStore
}

func NewProfileService(st store.ProfileStore) *ProfileService {
	return &ProfileService{store: st}
}

// Load returns the owner's profile, or an empty one when no row exists
// yet.
func (s *ProfileService) Load(ctx context.Context, ownerID string) (model.Profile, error) {
	if ownerID == "" {
		return model.Profile{}, ErrNoOwner
	}
	p, err := s.store.GetProfile(ctx, ownerID)
	if err != nil {
		if errors.Is(err, store.ErrNoRow) {
			return model.Profile{UserID: ownerID}, nil
		}
		return model.Profile{}, err
	}
	return *p, nil
}

// Save upserts the profile row with an update stamp.
func (s *ProfileService) Save(ctx context.Context, ownerID, fullName, avatarURL string) (model.Profile, error) {
	if ownerID == "" {
		return model.Profile{}, ErrNoOwner
	}
	now := time.Now()
	p := &model.Profile{
		UserID:    ownerID,
		FullName:  optional(fullName),
		AvatarURL: optional(avatarURL),
		UpdatedAt: &now,
	}
	if err := s.store.UpsertProfile(ctx, p); err != nil {
		return model.Profile{}, err
	}
	return s.Load(ctx, ownerID)
}
