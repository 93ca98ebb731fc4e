package response

const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

// ServerErrorMessage is shown for every unexpected failure.
const ServerErrorMessage = "terjadi kegagalan pada server kami"

// Envelope is the body of every JSON response.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func Success(data any) Envelope {
	return Envelope{Status: StatusSuccess, Data: data}
}

func SuccessMessage(message string) Envelope {
	return Envelope{Status: StatusSuccess, Message: message}
}

// Fail reports a client side fault.
func Fail(message string) Envelope {
	return Envelope{Status: StatusFail, Message: message}
}

func Error() Envelope {
	return Envelope{Status: StatusError, Message: ServerErrorMessage}
}
