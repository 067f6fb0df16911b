// Package content holds the static conference data: the committee registry,
// study resources and contact people. The registry is the authoritative list
// of committee names; doubt submissions are validated against it.
package content

import "github.com/dymun-conference/portal-backend/internal/models"

var committeeGroups = []models.CommitteeGroup{
	{
		Title: "Primary School (Grades 3-5)",
		Committees: []models.Committee{
			{
				Name:     "Harry Potter",
				Subtitle: "Harry Potter: Rebuilding the Wizarding World",
				Topic:    "Addressing Infrastructure, Governance, and Social Healing in the Aftermath of the Battle of Hogwarts",
				Chair:    "To be announced",
				Level:    "Primary School",
			},
			{
				Name:     "Disney",
				Subtitle: "Disney: Regulating the Use of Magic",
				Topic:    "Should Magical Abilities Be Governed by Law or Freely Practiced by All",
				Chair:    "To be announced",
				Level:    "Primary School",
			},
			{
				Name:     "FIFA",
				Subtitle: "FIFA: Combating Discrimination in Football",
				Topic:    "Combating Discrimination and Social Inequality in Global Football.",
				Chair:    "To be announced",
				Level:    "Primary School",
			},
		},
	},
	{
		Title: "Middle School (Grades 6-8)",
		Committees: []models.Committee{
			{
				Name:     "CTC",
				Subtitle: "CTC (Counter-Terrorism Committee)",
				Topic:    "Deliberating Strategies to Disrupt Terrorist Financing Networks and Curb the Use of Illicit Financial Channels",
				Chair:    "To be announced",
				Level:    "Middle School",
			},
			{
				Name:     "UNOOSA",
				Subtitle: "UNOOSA (Outer Space Affairs)",
				Topic:    "Global Framework to Prevent the Weaponization of Space-Based Technologies and Aggressive Militarization",
				Chair:    "To be announced",
				Level:    "Middle School",
			},
			{
				Name:     "IPL",
				Subtitle: "IPL (Indian Premier League): AUCTION",
				Topic:    "IPL Auction Simulation",
				Chair:    "To be announced",
				Level:    "Middle School",
			},
			{
				Name:     "SDG 5",
				Subtitle: "SDG 5 (Gender Equality)",
				Topic:    "Addressing gender-based disparities in Representation in Political Institutions and Decision-Making Processes.",
				Chair:    "To be announced",
				Level:    "Middle School",
			},
		},
	},
	{
		Title: "High School (Grades 9-12)",
		Committees: []models.Committee{
			{
				Name:     "ECOFIN",
				Subtitle: "ECOFIN (Economic and Financial Committee)",
				Topic:    "Dollar Dominance: Deliberating on shifting towards a multi-currency system for trading.",
				Chair:    "To be announced",
				Level:    "High School",
			},
			{
				Name:     "UNSC",
				Subtitle: "UNSC (Security Council)",
				Topic:    "Role of Non State Actors and Private Military Contractors for the Situation in the Sahel: Terrorism, Coups, and Regional Instability",
				Chair:    "To be announced",
				Level:    "High School",
			},
			{
				Name:     "AIPPM",
				Subtitle: "AIPPM (All India Political Party Meet)",
				Topic:    "Deliberation on Enhancing Judicial Efficiency and Accountability in India whilst Balancing Legal Reform, Transparency, and Public Trust",
				Chair:    "To be announced",
				Level:    "High School",
			},
			{
				Name:     "ICJ",
				Subtitle: "ICJ (International Court of Justice)",
				Topic:    "Application of the Convention on the Prevention and Punishment of the Crime of Genocide in Sudan (Sudan v. United Arab Emirates)",
				Chair:    "To be announced",
				Level:    "High School",
			},
			{
				Name:     "HCC",
				Subtitle: "HCC (Historical Crisis Committee)",
				Topic:    "Accountability for Nuclear Brinkmanship During the Cold War considering the Cuban Missile Crisis, Berlin standoffs, and general US-USSR nuclear threats. (Freeze date: February 15, 1989)",
				Chair:    "To be announced",
				Level:    "High School",
			},
			{
				Name:     "IP",
				Subtitle: "IP (International Press)",
				Topic:    "International Press",
				Chair:    "To be announced",
				Level:    "High School",
			},
		},
	},
}

// CommitteeGroups returns the registry grouped by school level.
func CommitteeGroups() []models.CommitteeGroup {
	return committeeGroups
}

// FindCommittee looks up a committee by its exact name.
func FindCommittee(name string) (models.Committee, bool) {
	for _, g := range committeeGroups {
		for _, c := range g.Committees {
			if c.Name == name {
				return c, true
			}
		}
	}
	return models.Committee{}, false
}

// CommitteeNames lists every registered committee name.
func CommitteeNames() []string {
	names := []string{}
	for _, g := range committeeGroups {
		for _, c := range g.Committees {
			names = append(names, c.Name)
		}
	}
	return names
}
