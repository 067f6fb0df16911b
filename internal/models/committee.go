package models

// Committee is one discussion track of the conference.
type Committee struct {
	Name     string `json:"name"`
	Subtitle string `json:"subtitle"`
	Topic    string `json:"topic"`
	Chair    string `json:"chair"`
	Level    string `json:"level"`
	Overview string `json:"overview,omitempty"`
}

// CommitteeGroup bundles committees by school level.
type CommitteeGroup struct {
	Title      string      `json:"title"`
	Committees []Committee `json:"committees"`
}

// ResourceLink is one downloadable/viewable item in a resource category.
type ResourceLink struct {
	Text string `json:"text"`
	Href string `json:"href,omitempty"`
}

// ResourceCategory groups study material for a committee.
type ResourceCategory struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Links       []ResourceLink `json:"links"`
}

// ContactPerson is a secretariat or organizing committee contact.
type ContactPerson struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
	Type     string `json:"type"`
}
