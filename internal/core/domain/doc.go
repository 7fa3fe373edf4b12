// Package domain contains the core business entities for pillziy.
//
// The domain layer has no dependencies on adapters or infrastructure.
// It defines the Medication record, frequency presets, the intake draft
// produced by the scan pipeline, and the sentinel errors shared across
// services and adapters.
package domain
