// Package seed materializes the delegate roster into the users document at
// first start-up. Roster passwords are plaintext in the seed source and are
// bcrypt-hashed on import; the store never holds a plaintext password.
package seed

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dymun-conference/portal-backend/internal/models"
	"github.com/dymun-conference/portal-backend/internal/repository"
)

// RosterEntry is one line of the seed roster.
type RosterEntry struct {
	IDNumber    string `json:"idNumber"`
	Gmail       string `json:"gmail"`
	Password    string `json:"password"`
	Committee   string `json:"committee"`
	Institution string `json:"institution"`
	Role        string `json:"role,omitempty"`
}

var institutions = []string{
	"Delhi Public School",
	"Modern School",
	"The Shri Ram School",
	"Sanskriti School",
	"Amity International",
}

var rosterCommittees = []string{
	"Harry Potter", "Disney", "FIFA", "CTC", "UNOOSA", "UNSC", "ECOFIN", "ICJ",
}

// defaultRoster mirrors the fixture roster the conference launched with,
// plus one moderator account for the chairing team.
func defaultRoster() []RosterEntry {
	entries := make([]RosterEntry, 0, 11)
	for i := 0; i < 10; i++ {
		entries = append(entries, RosterEntry{
			IDNumber:    fmt.Sprintf("DY%03d", i+1),
			Gmail:       fmt.Sprintf("delegate%d@example.com", i+1),
			Password:    "password123",
			Committee:   rosterCommittees[i%len(rosterCommittees)],
			Institution: institutions[i%len(institutions)],
		})
	}
	entries = append(entries, RosterEntry{
		IDNumber: "MOD001",
		Gmail:    "moderator@dymun.org",
		Password: "moderator123",
		Role:     models.RoleModerator,
	})
	return entries
}

// Run imports the roster when the users document is empty. A non-empty
// document is left untouched; users are immutable after import.
func Run(users *repository.UserRepository, seedFile string) error {
	if users.Count() > 0 {
		return nil
	}

	roster := defaultRoster()
	if seedFile != "" {
		raw, err := os.ReadFile(seedFile)
		if err != nil {
			return fmt.Errorf("read seed file: %w", err)
		}
		roster = nil
		if err := json.Unmarshal(raw, &roster); err != nil {
			return fmt.Errorf("parse seed file: %w", err)
		}
	}

	for _, entry := range roster {
		hash, err := bcrypt.GenerateFromPassword([]byte(entry.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", entry.IDNumber, err)
		}
		role := entry.Role
		if role == "" {
			role = models.RoleDelegate
		}
		u := models.User{
			ID:          uuid.NewString(),
			IDNumber:    entry.IDNumber,
			Gmail:       entry.Gmail,
			Password:    string(hash),
			Committee:   entry.Committee,
			Institution: entry.Institution,
			Role:        role,
		}
		if err := users.Insert(u); err != nil {
			return fmt.Errorf("insert %s: %w", entry.IDNumber, err)
		}
	}

	slog.Info("seeded delegate roster", "users", len(roster))
	return nil
}
