package state

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"remixradio/models"
)

// DJs returns a copy of the DJ roster.
func (s *Store) DJs() []models.DJ {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.DJ(nil), s.djs...)
}

// DJByID looks up a DJ by id.
func (s *Store) DJByID(id string) (models.DJ, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, dj := range s.djs {
		if dj.ID == id {
			return dj, true
		}
	}
	return models.DJ{}, false
}

// UpsertDJ replaces the DJ with a matching id, or appends a new one. New
// DJs without an id are assigned one.
func (s *Store) UpsertDJ(ctx context.Context, dj models.DJ) (models.DJ, error) {
	if strings.TrimSpace(dj.Name) == "" {
		return models.DJ{}, ErrInvalidInput
	}
	if strings.TrimSpace(dj.ID) == "" {
		dj.ID = "dj-" + uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	replaced := false
	for i := range s.djs {
		if s.djs[i].ID == dj.ID {
			s.djs[i] = dj
			replaced = true
			break
		}
	}
	if !replaced {
		s.djs = append(s.djs, dj)
	}

	s.persistJSON(ctx, keyDJs, s.djs)
	return dj, nil
}

// DeleteDJ removes a DJ from the roster.
func (s *Store) DeleteDJ(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.djs[:0]
	removed := false
	for _, dj := range s.djs {
		if dj.ID == id {
			removed = true
			continue
		}
		kept = append(kept, dj)
	}
	s.djs = kept

	if removed {
		s.persistJSON(ctx, keyDJs, s.djs)
	}
	return removed
}

// Events returns a copy of the event registry.
func (s *Store) Events() []models.EventListing {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.EventListing(nil), s.events...)
}

// UpsertEvent replaces the event with a matching id, or appends a new one.
func (s *Store) UpsertEvent(ctx context.Context, event models.EventListing) (models.EventListing, error) {
	if strings.TrimSpace(event.Title) == "" {
		return models.EventListing{}, ErrInvalidInput
	}
	if strings.TrimSpace(event.ID) == "" {
		event.ID = "e-" + uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	replaced := false
	for i := range s.events {
		if s.events[i].ID == event.ID {
			s.events[i] = event
			replaced = true
			break
		}
	}
	if !replaced {
		s.events = append(s.events, event)
	}

	s.persistJSON(ctx, keyEvents, s.events)
	return event, nil
}

// DeleteEvent removes an event listing.
func (s *Store) DeleteEvent(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.events[:0]
	removed := false
	for _, event := range s.events {
		if event.ID == id {
			removed = true
			continue
		}
		kept = append(kept, event)
	}
	s.events = kept

	if removed {
		s.persistJSON(ctx, keyEvents, s.events)
	}
	return removed
}

// Gallery returns a copy of the gallery registry.
func (s *Store) Gallery() []models.GalleryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.GalleryItem(nil), s.gallery...)
}

// UpsertGalleryItem replaces the item with a matching id, or appends a new
// one.
func (s *Store) UpsertGalleryItem(ctx context.Context, item models.GalleryItem) (models.GalleryItem, error) {
	if strings.TrimSpace(item.URL) == "" {
		return models.GalleryItem{}, ErrInvalidInput
	}
	if strings.TrimSpace(item.ID) == "" {
		item.ID = "g-" + uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	replaced := false
	for i := range s.gallery {
		if s.gallery[i].ID == item.ID {
			s.gallery[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		s.gallery = append(s.gallery, item)
	}

	s.persistJSON(ctx, keyGallery, s.gallery)
	return item, nil
}

// DeleteGalleryItem removes a gallery image.
func (s *Store) DeleteGalleryItem(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.gallery[:0]
	removed := false
	for _, item := range s.gallery {
		if item.ID == id {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	s.gallery = kept

	if removed {
		s.persistJSON(ctx, keyGallery, s.gallery)
	}
	return removed
}
