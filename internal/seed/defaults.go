// Package seed provides the built-in default data set used whenever a
// persisted aggregate is missing or unreadable.
package seed

import (
	"fmt"
	"strings"
	"time"

	"remixradio/models"
)

const (
	StationName   = "REMIX KINGZ RADIO"
	StationLogo   = "https://images.unsplash.com/photo-1614613535308-eb5fbd3d2c17?q=80&w=1000&auto=format&fit=crop"
	AdminPasscode = "KINGZ_ADMIN_2024"

	// Default passphrase shared by the seeded resident DJs.
	djPassphrase = "kingz"

	residentDJCount  = 50
	galleryItemCount = 12
)

// Socials are the station-level social profile links.
var Socials = map[string]string{
	"instagram": "https://instagram.com/remixkingzradio",
	"facebook":  "https://facebook.com/remixkingzradio",
	"twitter":   "https://twitter.com/remixkingz",
	"mixcloud":  "https://mixcloud.com/remixkingz",
	"youtube":   "https://youtube.com/remixkingz",
}

// Background is the default page backdrop.
func Background() models.BackgroundConfig {
	return models.BackgroundConfig{
		Kind:       models.BackgroundImage,
		Value:      "https://dl.dropboxusercontent.com/preview/DREAM%20TEAM%20PRODUCTION/WhatsApp%20Image%202025-12-27%20at%206.23.15%20PM.jpeg?raw=1",
		Brightness: 0.25,
	}
}

// DJs generates the seeded resident DJ roster.
func DJs() []models.DJ {
	djs := make([]models.DJ, 0, residentDJCount)
	for i := 0; i < residentDJCount; i++ {
		name := fmt.Sprintf("KING DJ %d", i+1)
		if i == 0 {
			name = "DJ REMIX KINGZ"
		}
		id := fmt.Sprintf("dj-%d", i+1)
		djs = append(djs, models.DJ{
			ID:         id,
			Name:       name,
			Email:      strings.ReplaceAll(strings.ToLower(name), " ", ".") + "@remixkingz.com",
			Logo:       fmt.Sprintf("https://picsum.photos/seed/%s/600/600", id),
			Bio:        "Legendary turntable specialist bringing high-energy mixes to the world. Catch me live every week on Remix Kingz Radio.",
			Passphrase: djPassphrase,
			Mixcloud:   "https://mixcloud.com/remixkingz",
			PersonalGallery: []string{
				fmt.Sprintf("https://picsum.photos/seed/pg-%d-1/800/800", i),
				fmt.Sprintf("https://picsum.photos/seed/pg-%d-2/800/800", i),
				fmt.Sprintf("https://picsum.photos/seed/pg-%d-3/800/800", i),
			},
			Socials: models.DJSocials{
				Instagram: "https://instagram.com",
				Facebook:  "https://facebook.com",
				Mixcloud:  "https://mixcloud.com/remixkingz",
			},
		})
	}
	return djs
}

// Events returns the seeded event flyers.
func Events() []models.EventListing {
	return []models.EventListing{
		{
			ID:       "e1",
			Title:    "KINGZ OF THE NIGHT",
			DJID:     "dj-1",
			Date:     "2024-07-15",
			Location: "Miami Beach Club",
			Flyer:    "https://picsum.photos/seed/event1/800/1200",
		},
		{
			ID:       "e2",
			Title:    "VIBES 24/7",
			DJID:     "dj-5",
			Date:     "2024-08-01",
			Location: "The Underground NYC",
			Flyer:    "https://picsum.photos/seed/event2/800/1200",
		},
	}
}

// Gallery returns the seeded station gallery.
func Gallery() []models.GalleryItem {
	items := make([]models.GalleryItem, 0, galleryItemCount)
	for i := 0; i < galleryItemCount; i++ {
		items = append(items, models.GalleryItem{
			ID:          fmt.Sprintf("g-%d", i),
			URL:         fmt.Sprintf("https://picsum.photos/seed/gallery-%d/800/800", i),
			Description: fmt.Sprintf("Remix Kingz Event Memory %d", i+1),
		})
	}
	return items
}

// Chat returns the welcome messages preloaded into the chat room.
func Chat(now time.Time) []models.ChatMessage {
	base := now.UnixMilli()
	return []models.ChatMessage{
		{
			ID:        "m1",
			UserEmail: "support@remixkingz.com",
			UserName:  "KING ADMIN",
			Text:      "Welcome to the Kingdom Chat! 👑 Feel the vibes!",
			Timestamp: base - 1000000,
			IsDJ:      true,
		},
		{
			ID:        "m2",
			UserEmail: "fan@example.com",
			UserName:  "MixLover_24",
			Text:      "This station is FIRE! 🔥 Loving the energy right now.",
			Timestamp: base - 500000,
		},
	}
}
