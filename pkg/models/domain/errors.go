package domain

import "fmt"

// ConfigError reports unusable local configuration: a missing or malformed
// account workbook, or no API credential in any source.
type ConfigError struct {
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("config: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("config: %s", e.Reason)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// APIError reports a failed vendor API call: non-success status, auth
// rejection, or a response body that does not match the documented schema.
type APIError struct {
	Endpoint string
	Status   int
	Err      error
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("api: %s", e.Endpoint)
	if e.Status != 0 {
		msg = fmt.Sprintf("%s: status %d", msg, e.Status)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *APIError) Unwrap() error { return e.Err }

// WriteError reports a report workbook that could not be created or saved.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write: %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
