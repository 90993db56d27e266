// Package render writes the JSON envelopes printed by the CLI.
package render

import (
	"io"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type SuccessResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
	Meta    any  `json:"meta,omitempty"`
}

type ErrorResponse struct {
	Success bool              `json:"success"`
	Error   ErrorResponseBody `json:"error"`
}

type ErrorResponseBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Writer encodes envelopes to an output stream.
type Writer struct {
	out    io.Writer
	pretty bool
}

func NewWriter(out io.Writer, pretty bool) *Writer {
	return &Writer{out: out, pretty: pretty}
}

func (w *Writer) encode(v any) error {
	enc := json.NewEncoder(w.out)
	if w.pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

func (w *Writer) Success(data any, meta any) error {
	return w.encode(SuccessResponse{
		Success: true,
		Data:    data,
		Meta:    meta,
	})
}

func (w *Writer) Error(code, message string) error {
	return w.encode(ErrorResponse{
		Success: false,
		Error: ErrorResponseBody{
			Code:    code,
			Message: message,
		},
	})
}
