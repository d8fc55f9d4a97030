// Package linkkeep implements a small multi-user bookmark service:
// account signup and signin backed by argon2id password hashes and
// signed bearer tokens, plus per-user bookmark CRUD stored through bun.
//
// The package exposes the domain pieces (models, repositories, the
// authentication flow, the token service and the HTTP controllers);
// cmd/linkkeepd wires them into a running fiber application.
package linkkeep
