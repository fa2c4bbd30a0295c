// Package document defines the contracts the editing engine uses to observe
// the host application's document model.
//
// The engine never owns live document objects. It sees them through two
// narrow capabilities:
//
//   - [Item]: a stable, comparable identity for one mutable document object,
//     able to name its logical parent and to produce an owned deep copy of
//     its current state.
//   - [Screen]: an opaque handle for the logical container an item lives in,
//     such as one sheet or one open view of a shared sub-document.
//
// Implementations live in the application layer. The engine only compares
// identities, asks for parents, and requests clones; it never mutates items
// or screens and must not outlive them within one edit transaction.
package document
