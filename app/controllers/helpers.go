package controllers

import (
	"encoding/json"
	"net/http"

	"blogcomments/app/response"
	"blogcomments/app/validation"

	"github.com/rs/zerolog"
)

const invalidBodyMessage = "Invalid request body"

// decodeAndValidate reads a JSON body into dst and runs its validate tags.
// On failure it writes the 400 response and returns false.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		zerolog.Ctx(r.Context()).Debug().Err(err).Msg("could not decode request body")
		_ = response.BadRequest(w, invalidBodyMessage)
		return false
	}

	result := validation.Validate(dst)
	if !result.Success {
		_ = response.BadRequest(w, result.Message)
		return false
	}
	return true
}

// fail logs err against the request and sends the generic failure msg.
func fail(w http.ResponseWriter, r *http.Request, err error, msg string) {
	zerolog.Ctx(r.Context()).Error().Err(err).Msg(msg)
	_ = response.Fail(w, msg)
}
