package service

import (
	"encoding/json"
	"fmt"

	"github.com/inkpress/erp-gateway/internal/core"
)

// toDocument converts a DTO into a document via its JSON shape.
func toDocument(v any) (core.Document, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}
	var doc core.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("reshape document: %w", err)
	}
	return doc, nil
}

// fromDocument decodes a document into the given DTO pointer.
func fromDocument(doc core.Document, out any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode document: %w", err)
	}
	return nil
}
