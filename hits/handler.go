package hits

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
)

type Handler struct {
	Counter Counter
	Logger  *slog.Logger
}

type body struct {
	HitCount int `json:"hitCount"`
}

// Invoke counts the request and returns the running total as JSON. Counter
// failures are returned to the runtime, which answers the API with a 500.
func (h Handler) Invoke(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	count, err := h.Counter.Hit(ctx)
	if err != nil {
		h.logger().ErrorContext(ctx, "counting hit", slog.Any("err", err))
		return events.APIGatewayV2HTTPResponse{}, err
	}

	payload, err := json.Marshal(body{HitCount: count})
	if err != nil {
		return events.APIGatewayV2HTTPResponse{}, err
	}
	h.logger().InfoContext(ctx, "hit counted", slog.Int("hitCount", count))

	return events.APIGatewayV2HTTPResponse{
		StatusCode: http.StatusOK,
		Headers: map[string]string{
			"content-type": "application/json",
		},
		Body: string(payload),
	}, nil
}

func (h Handler) logger() *slog.Logger {
	if h.Logger == nil {
		return slog.Default()
	}
	return h.Logger
}
