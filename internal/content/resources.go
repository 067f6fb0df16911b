package content

import "github.com/dymun-conference/portal-backend/internal/models"

// generalResources apply to every committee and lead each resource listing.
var generalResources = []models.ResourceCategory{
	{
		Title:       "General Study Guides",
		Description: "Comprehensive guides covering UN procedures, diplomatic protocols, and committee structures.",
		Links: []models.ResourceLink{
			{Text: "Rules of Procedure"},
			{Text: "Delegate Handbook"},
			{Text: "Research Techniques"},
		},
	},
	{
		Title:       "General Templates",
		Description: "Ready-to-use templates for position papers, resolutions, and working papers.",
		Links: []models.ResourceLink{
			{Text: "Position Paper Template"},
			{Text: "Resolution Format"},
			{Text: "Working Paper Guide"},
		},
	},
	{
		Title:       "General Video Tutorials",
		Description: "Expert-led video content covering speaking techniques, negotiation skills, and debate strategies.",
		Links: []models.ResourceLink{
			{Text: "Public Speaking Mastery"},
			{Text: "Negotiation Tactics"},
			{Text: "Committee Dynamics"},
		},
	},
}

var committeeResources = map[string][]models.ResourceCategory{
	"Harry Potter": {
		{
			Title:       "Magical World Study Guides",
			Description: "Essential guides for understanding wizarding law, magical infrastructure, and post-war governance.",
			Links: []models.ResourceLink{
				{Text: "Wizarding Law Handbook"},
				{Text: "Magical Infrastructure Guide"},
				{Text: "Post-War Recovery Strategies"},
			},
		},
		{
			Title:       "Magical Templates",
			Description: "Specialized templates for magical legislation and wizarding world documentation.",
			Links: []models.ResourceLink{
				{Text: "Magical Legislation Template"},
				{Text: "Wizarding Constitution Format"},
				{Text: "Magic Rights Declaration"},
			},
		},
	},
	"Disney": {
		{
			Title:       "Magical Regulation Studies",
			Description: "Resources for understanding magical abilities governance and fantasy world law.",
			Links: []models.ResourceLink{
				{Text: "Magic Regulation Handbook"},
				{Text: "Fantasy Character Rights"},
				{Text: "Magical Law Enforcement"},
			},
		},
	},
	"FIFA": {
		{
			Title:       "Sports Ethics & Equality",
			Description: "Resources addressing discrimination, equality, and fair play in global football.",
			Links: []models.ResourceLink{
				{Text: "Anti-Discrimination Policies"},
				{Text: "Football Equality Guidelines"},
				{Text: "Fair Play Protocols"},
			},
		},
	},
	"CTC": {
		{
			Title:       "Counter-Terrorism Resources",
			Description: "Specialized materials on terrorist financing, financial networks, and security measures.",
			Links: []models.ResourceLink{
				{Text: "Terrorist Financing Analysis"},
				{Text: "Financial Network Mapping"},
				{Text: "Security Resolution Templates"},
			},
		},
		{
			Title:       "Security Committee Training",
			Description: "Expert analysis on counter-terrorism strategies and international security.",
			Links: []models.ResourceLink{
				{Text: "Counter-Terrorism Strategies"},
				{Text: "Financial Crime Investigation"},
				{Text: "International Security Law"},
			},
		},
	},
	"UNOOSA": {
		{
			Title:       "Space Law & Policy",
			Description: "Comprehensive resources on space governance, technology regulation, and international space law.",
			Links: []models.ResourceLink{
				{Text: "Space Law Compendium"},
				{Text: "Space Technology Guidelines"},
				{Text: "Outer Space Treaty Analysis"},
			},
		},
	},
	"IPL": {
		{
			Title:       "Auction Strategy Materials",
			Description: "Resources for understanding cricket economics, player valuation, and auction dynamics.",
			Links: []models.ResourceLink{
				{Text: "Auction Strategy Guide"},
				{Text: "Player Valuation Matrix"},
				{Text: "Team Building Framework"},
			},
		},
	},
	"SDG 5": {
		{
			Title:       "Gender Equality Resources",
			Description: "Materials focusing on gender representation, political participation, and equality frameworks.",
			Links: []models.ResourceLink{
				{Text: "Gender Equality Framework"},
				{Text: "Political Representation Guide"},
				{Text: "Women's Rights Handbook"},
			},
		},
	},
	"ECOFIN": {
		{
			Title:       "Economic & Financial Studies",
			Description: "Advanced materials on global economics, currency systems, and financial policy.",
			Links: []models.ResourceLink{
				{Text: "Multi-Currency System Analysis"},
				{Text: "Dollar Dominance Report"},
				{Text: "Global Financial Architecture"},
			},
		},
		{
			Title:       "Economic Policy Seminars",
			Description: "Expert lectures on international finance and economic diplomacy.",
			Links: []models.ResourceLink{
				{Text: "Currency Wars & Policy"},
				{Text: "International Trade Systems"},
				{Text: "Financial Crisis Management"},
			},
		},
	},
	"UNSC": {
		{
			Title:       "Security Council Resources",
			Description: "Essential materials on international security, conflict resolution, and peacekeeping.",
			Links: []models.ResourceLink{
				{Text: "Security Council Handbook"},
				{Text: "Conflict Resolution Guide"},
				{Text: "Peacekeeping Operations Manual"},
			},
		},
		{
			Title:       "Security Council Simulations",
			Description: "Training videos on Security Council procedures and crisis management.",
			Links: []models.ResourceLink{
				{Text: "Crisis Management Simulation"},
				{Text: "Security Council Procedures"},
				{Text: "Resolution Drafting Workshop"},
			},
		},
	},
	"AIPPM": {
		{
			Title:       "Indian Political System",
			Description: "Resources on Indian democracy, judicial systems, and political party dynamics.",
			Links: []models.ResourceLink{
				{Text: "Indian Judicial System Guide"},
				{Text: "Political Party Handbook"},
				{Text: "Democratic Reform Analysis"},
			},
		},
	},
	"ICJ": {
		{
			Title:       "International Legal Resources",
			Description: "Materials on international law, genocide convention, and judicial procedures.",
			Links: []models.ResourceLink{
				{Text: "International Law Compendium"},
				{Text: "Genocide Convention Analysis"},
				{Text: "ICJ Procedures Manual"},
			},
		},
		{
			Title:       "Legal Case Templates",
			Description: "Specialized templates for legal briefs and international court submissions.",
			Links: []models.ResourceLink{
				{Text: "Legal Brief Template"},
				{Text: "Court Submission Format"},
				{Text: "Evidence Presentation Guide"},
			},
		},
	},
	"HCC": {
		{
			Title:       "Cold War Historical Resources",
			Description: "Comprehensive materials on Cold War history, nuclear policy, and crisis management.",
			Links: []models.ResourceLink{
				{Text: "Cold War Timeline"},
				{Text: "Nuclear Policy Analysis"},
				{Text: "Crisis Documentation"},
			},
		},
	},
	"IP": {
		{
			Title:       "International Press Guidelines",
			Description: "Resources for international journalism, press ethics, and media coverage of diplomatic events.",
			Links: []models.ResourceLink{
				{Text: "Press Ethics Handbook"},
				{Text: "Diplomatic Reporting Guide"},
				{Text: "Media Coverage Standards"},
			},
		},
		{
			Title:       "Journalism Training",
			Description: "Professional training materials for international press coverage and reporting.",
			Links: []models.ResourceLink{
				{Text: "Diplomatic Journalism"},
				{Text: "International Reporting"},
			},
		},
	},
}

// ResourcesFor returns the general categories followed by the committee's
// own, the same merge the delegate dashboard shows.
func ResourcesFor(committeeName string) []models.ResourceCategory {
	out := append([]models.ResourceCategory{}, generalResources...)
	return append(out, committeeResources[committeeName]...)
}
