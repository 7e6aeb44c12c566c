package constant

// Event type codes published to the in-process bus and NATS.
const (
	EventProjectCreated       = "PROJECT_CREATED"
	EventProjectBranched      = "PROJECT_BRANCHED"
	EventProjectDeleted       = "PROJECT_DELETED"
	EventFeatureCreated       = "FEATURE_CREATED"
	EventFeatureMoved         = "FEATURE_MOVED"
	EventFeatureDeleted       = "FEATURE_DELETED"
	EventSuggestionsGenerated = "SUGGESTIONS_GENERATED"
	EventSuggestionAccepted   = "SUGGESTION_ACCEPTED"
	EventSuggestionRejected   = "SUGGESTION_REJECTED"
)

// ActivityTopic is the in-process watermill topic the activity consumer
// subscribes to.
const ActivityTopic = "PROJECT_ACTIVITY"
