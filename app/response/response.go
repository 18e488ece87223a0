// Package response writes the uniform JSON envelope every endpoint returns.
package response

import (
	"encoding/json"
	"net/http"
)

// Envelope is the body of every API response.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Msg     string `json:"msg,omitempty"`
}

// Options describes one response. A zero Status defaults to 200 on success
// and 500 on failure.
type Options struct {
	Success bool
	Data    any
	Msg     string
	Status  int
}

// Send writes opts as a JSON envelope.
func Send(w http.ResponseWriter, opts Options) error {
	status := opts.Status
	if status == 0 {
		status = http.StatusOK
		if !opts.Success {
			status = http.StatusInternalServerError
		}
	}

	body, err := json.Marshal(Envelope{Success: opts.Success, Data: opts.Data, Msg: opts.Msg})
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(body)
	return err
}

// OK sends a success envelope carrying data.
func OK(w http.ResponseWriter, data any) error {
	return Send(w, Options{Success: true, Data: data})
}

// Message sends a success envelope carrying only a message.
func Message(w http.ResponseWriter, msg string) error {
	return Send(w, Options{Success: true, Msg: msg})
}

// Fail sends a failure envelope with the default failure status.
func Fail(w http.ResponseWriter, msg string) error {
	return Send(w, Options{Msg: msg})
}

// BadRequest sends a caller-correctable failure.
func BadRequest(w http.ResponseWriter, msg string) error {
	return Send(w, Options{Msg: msg, Status: http.StatusBadRequest})
}

// Unauthorized sends a 401 failure.
func Unauthorized(w http.ResponseWriter) error {
	return Send(w, Options{Msg: "Unauthorized", Status: http.StatusUnauthorized})
}
