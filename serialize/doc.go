// Package serialize implements the v1.0 wire format of spec §6: a
// Document carrying metadata, entities, constraints, and optional named
// parameters, marshalable to JSON (the normative form) and to YAML via
// gopkg.in/yaml.v3 (every field carries matching json and yaml tags,
// following the teacher pack's gazed-vu/load pattern of one struct serving both a
// human-edited text format and the program's internal model).
//
// FromSystem and ToSystem convert between a Document and a live
// constraint.System; round-tripping through either is required to
// satisfy the solver's Round-trip testable property (spec §8).
package serialize
