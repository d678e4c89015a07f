// Package inspect resolves type references and prints inspection reports.
//
// Key types:
//   - Resolver: turns a type name, reflect.Type, handle or live value into
//     an introspect.Handle
//   - Inspector: prints type reports (InspectType) and package surveys
//     (SurveyPackage)
//   - NotFoundError: a reference that names no loadable type
package inspect
