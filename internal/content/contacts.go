package content

import "github.com/dymun-conference/portal-backend/internal/models"

var contacts = []models.ContactPerson{
	{
		Name:     "DYMUN Secretariat",
		Position: "General Enquiries",
		Email:    "info@dymun.org",
		Phone:    "+1 (555) 123-4567",
		Type:     "secretariat",
	},
	{
		Name:     "Registration Desk",
		Position: "Delegate Registration",
		Email:    "registration@dymun.org",
		Type:     "organizing",
	},
}

// Contacts returns the conference contact people.
func Contacts() []models.ContactPerson {
	return contacts
}
