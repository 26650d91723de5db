package constants

type (
	APIStatus     string
	CachePrefix   string
	BoardPath     string
	StopReason    string
	IngestOutcome string
)

const (
	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"

	CachePrefixDestination CachePrefix = "DEST_"

	BoardPathDepartures BoardPath = "departures"
	BoardPathArrivals   BoardPath = "arrivals"
)

// Reasons a fetch cycle ended.
const (
	StopReasonWindowReached StopReason = "window_reached"
	StopReasonBudgetSpent   StopReason = "budget_spent"
	StopReasonEmptyPage     StopReason = "empty_page"
	StopReasonUnparsable    StopReason = "unparsable_schedule"
	StopReasonFailed        StopReason = "failed"
)

// Metric label values for ingestion outcomes.
const (
	IngestAccepted            IngestOutcome = "accepted"
	IngestRejectedCodeshare   IngestOutcome = "rejected_codeshare"
	IngestRejectedServiceType IngestOutcome = "rejected_service_type"
	IngestSkipped             IngestOutcome = "skipped"
)

// RouteSeparator joins destination codes for display.
const RouteSeparator = ", "

// SortByScheduleTime asks the flight API for ascending schedule order.
const SortByScheduleTime = "+scheduleTime"
