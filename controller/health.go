package controller

import (
	"net/http"
	"time"

	"github.com/txix-open/isp-kit/json"
)

const (
	ServiceName = "bot"
)

type healthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
}

type Health struct {
	now func() time.Time
}

func NewHealth(now func() time.Time) Health {
	return Health{
		now: now,
	}
}

func (c Health) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(healthResponse{
		Status:    "ok",
		Service:   ServiceName,
		Timestamp: c.now().UTC().Format(time.RFC3339),
	})
}
