package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"flexiquote/service"
)

// writeJSON writes v as a JSON response with the given status
func writeJSON(w http.ResponseWriter, handler string, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("❌ %s: Error encoding response: %v", handler, err)
	}
}

// writeServiceError maps service errors to HTTP status codes
func writeServiceError(w http.ResponseWriter, handler string, err error) {
	log.Printf("❌ %s: %v", handler, err)
	switch {
	case errors.Is(err, service.ErrProductNotFound), errors.Is(err, service.ErrQuoteNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrInvalidQuantity):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, service.ErrExportDisabled):
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
	default:
		http.Error(w, fmt.Sprintf("Internal error: %v", err), http.StatusInternalServerError)
	}
}

// decodeBody decodes a JSON request body keeping attribute numbers exact
func decodeBody(body io.Reader, v any) error {
	dec := json.NewDecoder(body)
	dec.UseNumber()
	return dec.Decode(v)
}

// quoteIDFromPath extracts the id from /quotes/{id}{suffix}
func quoteIDFromPath(path, suffix string) (int64, error) {
	rest := strings.TrimPrefix(path, "/quotes/")
	if rest == path {
		return 0, fmt.Errorf("invalid path format")
	}
	idStr := strings.TrimSuffix(rest, suffix)
	if suffix != "" && idStr == rest {
		return 0, fmt.Errorf("invalid path format")
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid quote id parameter")
	}
	return id, nil
}
