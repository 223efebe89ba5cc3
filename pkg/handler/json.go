package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// JSON adapts a typed function to Func. The body is decoded strictly into In:
// unknown fields and trailing content are rejected with 400. An empty body
// decodes as the zero In.
func JSON[In, Out any](fn func(ctx context.Context, in In) (Out, int, error)) Func {
	return func(ctx context.Context, body []byte) ([]byte, int, error) {
		var in In
		if len(bytes.TrimSpace(body)) > 0 {
			if err := decodeStrict(body, &in); err != nil {
				return nil, http.StatusBadRequest, err
			}
		}
		out, status, err := fn(ctx, in)
		if err != nil {
			return nil, status, err
		}
		b, err := encode(out)
		if err != nil {
			return nil, http.StatusInternalServerError, err
		}
		return b, status, nil
	}
}

func decodeStrict(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("json decode: %w", err)
	}
	if err := dec.Decode(new(json.RawMessage)); !errors.Is(err, io.EOF) {
		return errors.New("json trailing content")
	}
	return nil
}

func encode(v any) ([]byte, error) {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
