// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - BlobStore: durable storage for the serialized medication collection
//
// # Optional Interfaces
//
// The intake pipeline degrades gracefully when these fail:
//
//   - Camera: produces still captures of prescription labels
//   - TextRecognizer: converts upright pixels into text lines
//   - ConfigStore: application configuration; defaults apply when nil
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: any adapter package
package driven
