// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/todolist, domain/todoitem).
// This root package holds sentinel errors, validation types, and the
// pagination window shared by both list endpoints.
package domain
