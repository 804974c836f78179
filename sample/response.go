package sample

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/x4b1/housekeeper/aws"
)

// Response is the outcome of a producer or consumer invocation,
// in the status code and body shape of a function invocation result.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

// OK returns whether the invocation succeeded.
func (r Response) OK() bool {
	return r.StatusCode == http.StatusOK
}

// ProducerResponse maps the result of sending one message.
func ProducerResponse(err error) Response {
	if err != nil {
		return Response{
			StatusCode: http.StatusInternalServerError,
			Body:       jsonBody(map[string]string{"error": "Internal Server Error"}),
		}
	}

	return Response{
		StatusCode: http.StatusOK,
		Body:       jsonBody(map[string]string{"message": "Message sent to SQS queue"}),
	}
}

// ConsumerResponse maps the result of draining one batch of messages.
func ConsumerResponse(processed int, err error) Response {
	switch {
	case err == nil:
		return Response{
			StatusCode: http.StatusOK,
			Body:       fmt.Sprintf("Processed %d messages", processed),
		}
	case errors.Is(err, aws.ErrQueueNotFound):
		return Response{
			StatusCode: http.StatusNotFound,
			Body:       "Queue does not exist",
		}
	default:
		return Response{
			StatusCode: http.StatusInternalServerError,
			Body:       "Failed to process messages",
		}
	}
}

func jsonBody(v map[string]string) string {
	b, _ := json.Marshal(v)

	return string(b)
}
