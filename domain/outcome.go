package domain

type FailureKind string

const (
	FailureNone          FailureKind = ""
	FailureUnauthorized  FailureKind = "unauthorized"
	FailureThrottled     FailureKind = "throttled"
	FailureUnrecognized  FailureKind = "unrecognized"
	FailureHandler       FailureKind = "handler_failure"
	FailureTransportSend FailureKind = "transport_send_failure"
)

type DispatchOutcome struct {
	ReplyText     string
	FailureKind   FailureKind
	CorrelationId string
}

// Acknowledged reports whether the transport event counts as consumed.
func (o DispatchOutcome) Acknowledged() bool {
	return o.FailureKind != FailureUnauthorized
}
