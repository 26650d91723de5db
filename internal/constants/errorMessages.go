package constants

const (
	MsgBoardNotFound    = "Unknown board, expected departures or arrivals"
	MsgRefreshStarted   = "Refresh started"
	MsgBoardFetched     = "Board fetched"
	MsgTooManyRefreshes = "Too many refresh requests"
	MsgNoCycleCompleted = "No fetch cycle has completed yet"
)
