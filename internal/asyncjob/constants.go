package asyncjob

// Callback statuses sent by the workflow engine
const (
	CallbackStatusSuccess = "success"
	CallbackStatusError   = "error"
)

// Result messages
const (
	MsgCallbackProcessed   = "Callback processed"
	MsgJobAlreadyCompleted = "Job already completed"
	DefaultWorkflowError   = "Unknown error from workflow engine"
)

// Log messages
const (
	LogMsgJobCreated           = "Async job created"
	LogMsgCallbackReceived     = "Received workflow callback"
	LogMsgJobAlreadyFinal      = "Job already in final state, ignoring callback"
	LogMsgNoHandler            = "No handler registered for job type"
	LogMsgHandlerFailed        = "Job handler failed"
	LogMsgFailureHandlerFailed = "Job failure handler returned an error"
	LogMsgHandlerOverwritten   = "Job type already registered, overwriting handler"
)

// Error messages
const (
	ErrMsgJobIDRequired     = "job_id is required"
	ErrMsgInvalidJobID      = "job_id is not a valid id"
	ErrMsgFailedToCreateJob = "failed to create async job"
	ErrMsgFailedToEncode    = "failed to encode job payload"
	ErrMsgFailedToUpdateJob = "failed to update async job"
)
