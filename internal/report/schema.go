package report

// Schema is the JSON Schema (Draft 2020-12) for the statistics JSON
// output. It documents the structure returned by WriteJSON.
const Schema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "https://github.com/jmorales/jsonfmt/stats-report.schema.json",
  "title": "jsonfmt Statistics Report",
  "description": "Output schema for jsonfmt stats --format=json",
  "type": "object",
  "required": ["version", "reports"],
  "properties": {
    "version": {
      "type": "string",
      "description": "Report format version (semver)"
    },
    "reports": {
      "type": "array",
      "items": { "$ref": "#/$defs/Entry" }
    }
  },
  "$defs": {
    "Entry": {
      "type": "object",
      "required": [
        "size_bytes", "max_depth", "counts",
        "total_keys", "unique_keys", "top_keys"
      ],
      "properties": {
        "file": {
          "type": "string",
          "description": "Source path; absent for stdin"
        },
        "size_bytes": {
          "type": "integer",
          "minimum": 0,
          "description": "Encoded document size in bytes"
        },
        "max_depth": {
          "type": "integer",
          "minimum": 0,
          "description": "Deepest nesting level; the root is depth 1"
        },
        "counts": { "$ref": "#/$defs/TypeCounts" },
        "total_keys": {
          "type": "integer",
          "minimum": 0,
          "description": "Every (object, key) pair in the document"
        },
        "unique_keys": {
          "type": "integer",
          "minimum": 0,
          "description": "Distinct key strings"
        },
        "top_keys": {
          "type": "array",
          "items": { "$ref": "#/$defs/KeyCount" },
          "description": "Most frequent keys, descending by count"
        },
        "arrays": { "$ref": "#/$defs/LengthSummary" },
        "strings": { "$ref": "#/$defs/LengthSummary" }
      }
    },
    "TypeCounts": {
      "type": "object",
      "required": [
        "objects", "arrays", "strings", "numbers", "booleans", "nulls"
      ],
      "properties": {
        "objects": { "type": "integer", "minimum": 0 },
        "arrays": { "type": "integer", "minimum": 0 },
        "strings": { "type": "integer", "minimum": 0 },
        "numbers": { "type": "integer", "minimum": 0 },
        "booleans": { "type": "integer", "minimum": 0 },
        "nulls": { "type": "integer", "minimum": 0 }
      }
    },
    "KeyCount": {
      "type": "object",
      "required": ["key", "count"],
      "properties": {
        "key": { "type": "string" },
        "count": { "type": "integer", "minimum": 1 }
      }
    },
    "LengthSummary": {
      "type": "object",
      "required": ["count", "mean", "min", "max"],
      "properties": {
        "count": { "type": "integer", "minimum": 1 },
        "mean": { "type": "number", "minimum": 0 },
        "min": { "type": "integer", "minimum": 0 },
        "max": { "type": "integer", "minimum": 0 }
      }
    }
  }
}`
