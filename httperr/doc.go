// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package httperr provides error types with HTTP status codes for API error handling.

A failure is classified where it happens, by the code that knows what went
wrong, and rendered once at the request boundary by Recover. The HTTPError
value separates what the client sees (status and an optional message) from what
the operator sees (the full cause chain in the logs).

# Basic Usage

Return an HTTPError from a handler:

	return httperr.NotFound()
	return httperr.BadRequest().WithMessage("missing field: email")
	return httperr.Forbiddenf("user %s cannot edit %s", user, doc)
	return httperr.InternalServerError(err)

# Converting Failures

Wrap an existing error with a status code. The original error is kept as the
cause and stays reachable through errors.Is and errors.As:

	if err := store.Save(item); err != nil {
		return httperr.ServerErr(err)
	}

For calls returning a value, From captures both results:

	id, err := httperr.From(strconv.Atoi(raw)).ClientErr()
	if err != nil {
		return err
	}

	user, err := httperr.From(repo.Get(ctx, id)).WithErrMsg(http.StatusNotFound, func() string {
		return fmt.Sprintf("user %d not found", id)
	})

The message function only runs on failure.

# Recovering

Recover is called with whatever error a handler returned:

	resp, err := httperr.Recover(log, err)
	if err != nil {
		// not an HTTPError: hand it to the outer error handler
		return
	}
	resp.Write(w)

The log receives one line for the error and one "  -> " line per cause. The
response body is the message, or the status reason phrase, and never contains
cause text.

# Extracting Status Codes

	code := httperr.Code(err)
	// Returns the status if err contains an HTTPError
	// Returns http.StatusInternalServerError (500) if none is found
	// Returns http.StatusOK (200) if err is nil
*/
package httperr
