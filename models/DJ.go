package models

import "strings"

// DJSocials holds the optional social profile links shown on a DJ card.
type DJSocials struct {
	Instagram string `json:"instagram,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Mixcloud  string `json:"mixcloud,omitempty"`
}

// DJ is a resident DJ profile. The optional passphrase backs the mock DJ
// login; identity is matched by case-insensitive name and exact passphrase.
type DJ struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email,omitempty"`
	Logo            string    `json:"logo"`
	Bio             string    `json:"bio"`
	Passphrase      string    `json:"password,omitempty"`
	Mixcloud        string    `json:"mixcloud,omitempty"`
	PersonalGallery []string  `json:"personalGallery"`
	Socials         DJSocials `json:"socials"`
}

// MatchesCredentials reports whether the submitted name and passphrase
// identify this DJ. The name comparison is case-insensitive, the passphrase
// comparison is verbatim.
func (d DJ) MatchesCredentials(name, passphrase string) bool {
	if d.Passphrase == "" {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(name), d.Name) && d.Passphrase == passphrase
}

// Public returns a copy of the DJ with the passphrase stripped, safe to
// serve to listeners.
func (d DJ) Public() DJ {
	d.Passphrase = ""
	return d
}
