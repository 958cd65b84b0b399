// SPDX-FileCopyrightText: Copyright 2026 Skillmesh, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package metadata builds and validates the off-chain description document
// minted alongside a skill. The registry itself only stores the document's
// URI; this package produces a content-addressed placeholder URI until a
// real pinning service is wired in.
package metadata

import (
	"fmt"
	"net/url"
	"time"

	json "github.com/goccy/go-json"
	"github.com/opencontainers/go-digest"
	"github.com/xeipuuv/gojsonschema"
)

// Document is the off-chain metadata for one skill.
type Document struct {
	// Name is the skill name, matching the on-chain record.
	Name string `json:"name"`
	// Description is the human-readable description of the skill.
	Description string `json:"description"`
	// Category is the marketplace category the creator picked at mint time.
	Category string `json:"category"`
	// Creator is the identity that minted the skill.
	Creator string `json:"creator"`
	// CreatedAt is the mint wall-clock time in Unix milliseconds.
	CreatedAt int64 `json:"createdAt"`
	// Image is a display image URL derived from the skill name.
	Image string `json:"image,omitempty"`
}

// schema is the JSON schema every document must satisfy before minting.
const schema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["name", "description", "category", "creator", "createdAt"],
	"properties": {
		"name": {"type": "string", "minLength": 1},
		"description": {"type": "string", "minLength": 1},
		"category": {"type": "string", "minLength": 1},
		"creator": {"type": "string", "minLength": 1},
		"createdAt": {"type": "integer", "minimum": 0},
		"image": {"type": "string"}
	},
	"additionalProperties": false
}`

// New assembles a document for a mint, stamping the creation time and a
// deterministic placeholder image derived from the skill name.
func New(name, description, category, creator string, now time.Time) Document {
	return Document{
		Name:        name,
		Description: description,
		Category:    category,
		Creator:     creator,
		CreatedAt:   now.UnixMilli(),
		Image:       "https://api.dicebear.com/7.x/shapes/svg?seed=" + url.QueryEscape(name),
	}
}

// Encode serializes the document to JSON.
func (d Document) Encode() ([]byte, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("encoding metadata: %w", err)
	}
	return data, nil
}

// Decode parses a metadata document from JSON.
func Decode(data []byte) (Document, error) {
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return Document{}, fmt.Errorf("decoding metadata: %w", err)
	}
	return d, nil
}

// Validate checks an encoded document against the metadata schema.
func Validate(data []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("validating metadata: %w", err)
	}

	if !result.Valid() {
		errs := result.Errors()
		if len(errs) > 0 {
			return fmt.Errorf("invalid metadata: %s", errs[0])
		}
		return fmt.Errorf("invalid metadata")
	}
	return nil
}

// URI encodes the document and derives its content-addressed URI.
// The same document always maps to the same URI, which lets a re-mint of
// identical metadata be recognized downstream.
func (d Document) URI() (string, []byte, error) {
	data, err := d.Encode()
	if err != nil {
		return "", nil, err
	}
	if err := Validate(data); err != nil {
		return "", nil, err
	}
	return "ipfs://" + digest.FromBytes(data).Encoded(), data, nil
}
