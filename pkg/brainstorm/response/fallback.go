package response

import (
	"ai-brainstorm-be/internal/entity"
)

// Canned suggestions used whenever no credential is configured, the call
// fails, or the output is unparseable. Callers cannot tell the cause apart
// from the result shape; only the logs know.
var fallbackTable = map[entity.Perspective][]ParsedSuggestion{
	entity.PerspectiveTechnical: {
		{
			Name:              "API Rate Limiting",
			Description:       "Throttle requests per client to protect backend capacity and keep response times predictable under load.",
			Perspective:       entity.PerspectiveTechnical,
			SuggestedCategory: entity.CategoryMVP,
		},
		{
			Name:              "Background Job Queue",
			Description:       "Move slow work (exports, notifications, bulk updates) out of the request path into an async worker queue.",
			Perspective:       entity.PerspectiveTechnical,
			SuggestedCategory: entity.CategoryLaunch,
		},
		{
			Name:              "Database Read Replicas",
			Description:       "Add read replicas and route reporting queries to them so dashboards never slow down the main workload.",
			Perspective:       entity.PerspectiveTechnical,
			SuggestedCategory: entity.CategoryV15,
		},
	},
	entity.PerspectiveBusiness: {
		{
			Name:              "Usage Analytics Dashboard",
			Description:       "Surface the adoption and retention numbers the team needs to decide what to build next.",
			Perspective:       entity.PerspectiveBusiness,
			SuggestedCategory: entity.CategoryMVP,
		},
		{
			Name:              "Referral Program",
			Description:       "Reward existing users for inviting new ones to drive organic growth at low acquisition cost.",
			Perspective:       entity.PerspectiveBusiness,
			SuggestedCategory: entity.CategoryLaunch,
		},
		{
			Name:              "Tiered Pricing Plans",
			Description:       "Offer free, pro and team tiers so the product can monetize power users without losing casual ones.",
			Perspective:       entity.PerspectiveBusiness,
			SuggestedCategory: entity.CategoryV15,
		},
	},
	entity.PerspectiveUX: {
		{
			Name:              "Onboarding Checklist",
			Description:       "Guide first-time users through the core workflow with a dismissible step-by-step checklist.",
			Perspective:       entity.PerspectiveUX,
			SuggestedCategory: entity.CategoryMVP,
		},
		{
			Name:              "Keyboard Shortcuts",
			Description:       "Let power users navigate and act without the mouse; publish a discoverable shortcut reference.",
			Perspective:       entity.PerspectiveUX,
			SuggestedCategory: entity.CategoryLaunch,
		},
		{
			Name:              "Dark Mode",
			Description:       "Respect the OS theme preference and offer a manual toggle for comfortable extended sessions.",
			Perspective:       entity.PerspectiveUX,
			SuggestedCategory: entity.CategoryV15,
		},
	},
	entity.PerspectiveSecurity: {
		{
			Name:              "Two-Factor Authentication",
			Description:       "Offer TOTP-based second factor at login to protect accounts against credential stuffing.",
			Perspective:       entity.PerspectiveSecurity,
			SuggestedCategory: entity.CategoryMVP,
		},
		{
			Name:              "Audit Log",
			Description:       "Record who changed what and when, with an exportable trail for compliance reviews.",
			Perspective:       entity.PerspectiveSecurity,
			SuggestedCategory: entity.CategoryLaunch,
		},
		{
			Name:              "Session Timeout Policy",
			Description:       "Expire idle sessions and require re-authentication for sensitive operations.",
			Perspective:       entity.PerspectiveSecurity,
			SuggestedCategory: entity.CategoryV15,
		},
	},
}

// FallbackSuggestions returns the canned set for a perspective, always
// exactly 3 records. Unknown perspectives get the technical set rather
// than an empty list; the contract is a usable result, not an error.
func FallbackSuggestions(perspective entity.Perspective) []ParsedSuggestion {
	table, ok := fallbackTable[perspective]
	if !ok {
		table = fallbackTable[entity.PerspectiveTechnical]
	}
	out := make([]ParsedSuggestion, len(table))
	copy(out, table)
	return out
}

// FallbackProjectSuggestions is the starter set for whole-project
// generation when the model is unavailable.
func FallbackProjectSuggestions() []ParsedSuggestion {
	return []ParsedSuggestion{
		{
			Name:              "User Accounts",
			Description:       "Registration, login and a basic profile so work can be attributed and persisted per user.",
			Perspective:       entity.PerspectiveTechnical,
			SuggestedCategory: entity.CategoryMVP,
		},
		{
			Name:              "Core Workflow MVP",
			Description:       "The single end-to-end flow the project exists for, stripped to its essentials and shippable early.",
			Perspective:       entity.PerspectiveBusiness,
			SuggestedCategory: entity.CategoryMVP,
		},
		{
			Name:              "Responsive Layout",
			Description:       "Make the primary screens usable on phones and tablets, not just desktop.",
			Perspective:       entity.PerspectiveUX,
			SuggestedCategory: entity.CategoryLaunch,
		},
		{
			Name:              "Input Validation & Sanitization",
			Description:       "Validate every user-supplied field server-side and encode output to block injection attacks.",
			Perspective:       entity.PerspectiveSecurity,
			SuggestedCategory: entity.CategoryMVP,
		},
		{
			Name:              "Feedback Widget",
			Description:       "A lightweight in-app channel for users to report problems and request features.",
			Perspective:       entity.PerspectiveUX,
			SuggestedCategory: entity.CategoryV15,
		},
	}
}
