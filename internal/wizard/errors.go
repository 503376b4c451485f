package wizard

// BlockingError ошибка, которую нужно показать пользователю. Состояние мастера не меняется.
type BlockingError struct {
	Message string
	Err     error
}

func (e *BlockingError) Error() string {
	return e.Err.Error() + ": " + e.Message
}

func (e *BlockingError) Unwrap() error {
	return e.Err
}

func blocking(err error, message string) *BlockingError {
	return &BlockingError{Message: message, Err: err}
}
