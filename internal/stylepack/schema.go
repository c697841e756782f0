// Package stylepack loads and validates style-pack configuration documents.
package stylepack

// Schema is the JSON Schema every style-pack document must satisfy.
// The canonical copy published for external tooling lives at
// schemas/stylepack.schema.json; a test keeps the two in sync.
const Schema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "StylePack",
  "description": "Brand style rules for linting generated content",
  "type": "object",
  "properties": {
    "brand_voice": {
      "type": "string",
      "description": "Advisory free-text voice descriptor, not machine-enforced"
    },
    "reading_level": {
      "type": "string",
      "description": "Target reading band label, e.g. 'Grade 8-10'"
    },
    "must_use": {
      "type": "array",
      "items": {
        "type": "string",
        "minLength": 1
      },
      "description": "Terms or phrases compliant text should contain"
    },
    "must_avoid": {
      "type": "array",
      "items": {
        "type": "string",
        "minLength": 1
      },
      "description": "Banned terms or phrases"
    },
    "terminology": {
      "type": "object",
      "additionalProperties": {
        "type": "string",
        "minLength": 1
      },
      "description": "Disfavored term to preferred replacement"
    }
  },
  "additionalProperties": true
}`
