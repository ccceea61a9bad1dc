package httpdto

type Response[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    T      `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
}

func NewSuccessResponse[T any](data T) Response[T] {
	return Response[T]{
		Success: true,
		Data:    data,
	}
}

// NewMessageResponse is a success response carrying a human readable message.
func NewMessageResponse[T any](message string, data T) Response[T] {
	return Response[T]{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// NewErrorResponse carries the error text in both message and error; older
// clients only read message.
func NewErrorResponse(err string, code string) Response[any] {
	return Response[any]{
		Success: false,
		Message: err,
		Error:   err,
		Code:    code,
	}
}
