package queue

// err domain

// validationError rejects malformed guest input (empty fields, unknown
// genre). The message is user-facing and ends up in a flash notice.
type validationError struct {
	msg string
}

func (e *validationError) Error() string {
	return e.msg
}

// notFoundError reports a song ID that is not (or no longer) in the queue.
type notFoundError struct {
	msg string
}

func (e *notFoundError) Error() string {
	return e.msg
}

// forbiddenError reports a privileged operation attempted without the DJ
// capability.
type forbiddenError struct {
	msg string
}

func (e *forbiddenError) Error() string {
	return e.msg
}
