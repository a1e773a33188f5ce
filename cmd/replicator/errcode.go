// cmd/replicator/errcode.go
package main

import (
	"errors"

	"github.com/goburrow/modbus"

	"github.com/tamzrod/modal-replicator/internal/modal"
	"github.com/tamzrod/modal-replicator/internal/status"
)

// errorCode maps a poll cycle error to the status last_error_code slot.
// Modbus exceptions pass through unchanged; anything unrecognized is generic.
func errorCode(err error) uint16 {
	if err == nil {
		return status.ErrCodeNone
	}

	var mbErr *modbus.ModbusError
	if errors.As(err, &mbErr) {
		return uint16(mbErr.ExceptionCode)
	}

	switch {
	case errors.Is(err, modal.ErrShortPayload):
		return status.ErrCodeShortPayload
	case errors.Is(err, modal.ErrTypeMismatch):
		return status.ErrCodeTypeMismatch
	case errors.Is(err, modal.ErrBlockMismatch):
		return status.ErrCodeBlockMismatch
	}

	return status.ErrCodeGeneric
}
