// Package driving defines the interfaces through which the outside
// world drives the core.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// The CLI and the intake confirmation form call these interfaces; core
// services implement them.
//
//   - MedicationRepository: the medication collection and its mutations
//   - IntakeService: the scan -> recognize -> confirm -> commit flow
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: any adapter or service package
package driving
