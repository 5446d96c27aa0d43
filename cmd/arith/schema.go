package main

// Schema is the JSON Schema (Draft 2020-12) for --format=json output.
const Schema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "https://github.com/alexshd/arith/report.schema.json",
  "title": "arith report",
  "description": "Output schema for arith --format=json",
  "type": "object",
  "required": ["version", "command"],
  "properties": {
    "version": { "type": "string" },
    "command": {
      "type": "string",
      "enum": ["sum", "square", "add", "names", "laws"]
    },
    "sum": { "$ref": "#/$defs/Sum" },
    "square": { "$ref": "#/$defs/Square" },
    "addition": { "$ref": "#/$defs/Addition" },
    "names": { "$ref": "#/$defs/Names" },
    "laws": {
      "type": "array",
      "items": { "$ref": "#/$defs/LawReport" }
    }
  },
  "$defs": {
    "Int32": {
      "type": "integer",
      "minimum": -2147483648,
      "maximum": 2147483647
    },
    "Sum": {
      "type": "object",
      "required": ["x", "y", "result", "stored", "overflow"],
      "properties": {
        "x": { "$ref": "#/$defs/Int32" },
        "y": { "$ref": "#/$defs/Int32" },
        "result": { "$ref": "#/$defs/Int32" },
        "stored": { "$ref": "#/$defs/Int32" },
        "checked": { "$ref": "#/$defs/Int32" },
        "overflow": { "type": "boolean" }
      },
      "additionalProperties": false
    },
    "Square": {
      "type": "object",
      "required": ["x", "ok"],
      "properties": {
        "x": { "$ref": "#/$defs/Int32" },
        "ok": { "type": "boolean" },
        "square": { "$ref": "#/$defs/Int32" }
      },
      "additionalProperties": false
    },
    "Addition": {
      "type": "object",
      "required": ["x", "y", "sum", "copy_sum"],
      "properties": {
        "x": { "$ref": "#/$defs/Int32" },
        "y": { "$ref": "#/$defs/Int32" },
        "sum": { "$ref": "#/$defs/Int32" },
        "copy_sum": { "$ref": "#/$defs/Int32" }
      },
      "additionalProperties": false
    },
    "Names": {
      "type": "object",
      "required": ["names"],
      "properties": {
        "names": {
          "type": "array",
          "items": { "type": "string" }
        },
        "checks": {
          "type": "array",
          "items": {
            "type": "object",
            "required": ["name", "member"],
            "properties": {
              "name": { "type": "string" },
              "member": { "type": "boolean" }
            }
          }
        }
      }
    },
    "LawReport": {
      "type": "object",
      "required": ["op", "laws", "samples", "checked_at"],
      "properties": {
        "op": { "type": "string" },
        "laws": {
          "type": ["array", "null"],
          "items": {
            "type": "string",
            "enum": ["Commutative", "Associative", "Identity"]
          }
        },
        "failures": {
          "type": "array",
          "items": {
            "type": "object",
            "required": ["law", "operands", "left", "right"],
            "properties": {
              "law": { "type": "string" },
              "operands": {
                "type": "array",
                "items": { "type": "integer" }
              },
              "left": { "type": "integer" },
              "right": { "type": "integer" }
            }
          }
        },
        "samples": { "type": "integer", "minimum": 1 },
        "checked_at": { "type": "string" }
      }
    }
  }
}`
