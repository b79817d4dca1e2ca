// Package project writes a solved variable assignment back onto entities
// (spec §4.4): one small pure function per geom.Kind, plus Entity, a
// dispatch wrapper keyed on the entity's Kind. Every function reads only
// the global ids belonging to its entity out of the results map and
// leaves any entity whose global id is absent untouched — there are no
// error paths, mirroring geom.UpdateEntityGeometry's own contract.
package project
