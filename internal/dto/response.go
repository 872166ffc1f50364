package dto

type DataResponse struct {
	Data interface{} `json:"data"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func NewDataResponse(data interface{}) DataResponse {
	return DataResponse{
		Data: data,
	}
}

func NewErrorResponse(details string) ErrorResponse {
	return ErrorResponse{
		Error: details,
	}
}
