// Package handler turns an Amazon Connect contact flow event into a backend
// notification and a fixed-shape contact flow response. The contact flow
// must run a "Start media streaming" block before invoking this function.
package handler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// Notifier forwards call metadata to the backend (helpful for testing)
type Notifier interface {
	CallStarted(*Payload)
}

// Handler handles call-start invocations
type Handler struct {
	notifier Notifier
}

// New returns a new Handler
func New(n Notifier) *Handler {
	return &Handler{notifier: n}
}

// Payload is the call metadata sent to the backend. Optional fields are
// pointers so an absent value serialises as null rather than "".
type Payload struct {
	ContactID        string  `json:"contact_id"`
	StreamARN        string  `json:"stream_arn"`
	CustomerNumber   *string `json:"customer_number"`
	AgentARN         *string `json:"agent_arn"`
	AgentUsername    *string `json:"agent_username"`
	InstanceARN      *string `json:"instance_arn"`
	QueueName        *string `json:"queue_name"`
	InitiationMethod *string `json:"initiation_method"`
}

// Response is returned to the contact flow, which may reference contactId
// and streamArn in later blocks.
type Response struct {
	StatusCode int    `json:"statusCode"`
	ContactID  string `json:"contactId,omitempty"`
	StreamARN  string `json:"streamArn,omitempty"`
	Error      string `json:"error,omitempty"`
}

// lookup returns the first non-empty string at the given paths, or nil.
// An empty string counts as absent.
func lookup(event string, paths ...string) *string {
	for _, path := range paths {
		if v := gjson.Get(event, path).Str; v != "" {
			return &v
		}
	}
	return nil
}

// Handle extracts call metadata from a contact flow event, notifies the
// backend and returns a response for the flow. The error is always nil:
// the flow only ever sees a 200 or 400 shaped response.
func (h *Handler) Handle(ctx context.Context, event json.RawMessage) (Response, error) {

	fmt.Printf("event received: %s\n", event)

	raw := string(event)
	contactID := gjson.Get(raw, "Details.ContactData.ContactId").Str
	streamARN := gjson.Get(raw, "Details.ContactData.MediaStreams.Customer.Audio.StreamARN").Str

	if streamARN == "" {
		fmt.Println("no StreamARN found, ensure 'Start media streaming' runs before this function")
		return Response{
			StatusCode: 400,
			Error:      "Missing stream_arn - 'Start media streaming' block must run first",
		}, nil
	}

	if contactID == "" {
		fmt.Println("no ContactId found in event")
		return Response{StatusCode: 400, Error: "Missing contact_id in event"}, nil
	}

	// agent identity can live in up to three places depending on how the
	// flow was set up, so fall through Agent, Attributes and Name in order
	p := &Payload{
		ContactID:      contactID,
		StreamARN:      streamARN,
		CustomerNumber: lookup(raw, "Details.ContactData.CustomerEndpoint.Address"),
		AgentARN: lookup(raw,
			"Details.ContactData.Agent.ARN",
			"Details.ContactData.Attributes.agent_arn"),
		AgentUsername: lookup(raw,
			"Details.ContactData.Agent.Username",
			"Details.ContactData.Attributes.agent_username",
			"Details.ContactData.Name"),
		InstanceARN:      lookup(raw, "Details.ContactData.InstanceARN"),
		QueueName:        lookup(raw, "Details.ContactData.Queue.Name"),
		InitiationMethod: lookup(raw, "Details.ContactData.InitiationMethod"),
	}

	h.notifier.CallStarted(p)

	return Response{StatusCode: 200, ContactID: contactID, StreamARN: streamARN}, nil
}
