// Package model declares record types as data rather than Go structs. A
// Definition lists the fields a record carries, which of them may be left
// empty, and the validator and cleaner hooks bound to each field. Instances
// created from a definition hold one value per field and support three
// operations: Clean normalises values through their cleaners, Validate
// enforces the allow-empty policy and runs every validator while collecting
// all failures into a single ValidationError (Valid is the boolean form), and
// Serialize produces an ordered Record in which nested models and sequences
// of models are expanded into plain values.
//
// Serialization substitutes the raw value whenever a nested value serializes
// to an empty result, so an empty slice of models is returned as the original
// slice rather than an empty []any.
//
// Definitions compose by extension:
//
//	base := model.MustDefine("Person",
//		model.WithFields("name", "email"),
//		model.WithAllowEmpty("email"),
//		model.WithCleaner("name", cleaners.TrimSpace()),
//	)
//	employee := base.MustExtend("Employee", model.WithFields("team"))
package model
